package dom

import "github.com/loom-ui/loom/pkg/vdom"

// Dispatch fires the listener bound for the named event on the
// target, handing the opaque platform event to the binding's
// translator. A missing binding is deliberately a no-op rather than
// an error: listener lifecycles belong to the snapshot producer, and
// an event racing a removal must not fail the host.
//
// A translation failure from the binding is returned to the caller;
// it is a boundary error and never corrupts the live tree.
func Dispatch(target vdom.LiveNode, name string, raw vdom.Event) error {
	if target == nil {
		return nil
	}
	n, err := asNode(target)
	if err != nil {
		return err
	}
	return n.listeners[name].Emit(raw)
}

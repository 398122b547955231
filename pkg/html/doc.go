// Package html is the snapshot-building DSL for Loom.
//
// It provides HTML element constructors, attribute helpers, and typed
// event helpers, all producing the immutable snapshot nodes the diff
// engine consumes:
//
//	view := html.Div(
//	    html.Class("counter"),
//	    html.H1(html.Textf("Count: %d", n)),
//	    html.Button(html.OnClick(increment), html.Text("+1")),
//	)
//
// Event helpers pair each event name with the translator that coerces
// the opaque platform event into its typed payload. The generic On
// constructor covers event names the table does not know.
package html

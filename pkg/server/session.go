package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/vdom"
)

// App produces the current view from whatever state its closure holds.
// It is called once to mount a session and once after every dispatched
// event.
type App func() *vdom.Node

// Session owns one client's UI: the last rendered snapshot, the live
// tree mirroring it, and the connection patches are sent over. All
// methods are called from the session's read loop; there is no
// concurrent access to the trees.
type Session struct {
	id       uint64
	app      App
	renderer dom.Renderer

	snapshot *vdom.Node
	live     *dom.Node

	conn    *websocket.Conn
	logger  *slog.Logger
	metrics *metrics
	tracer  trace.Tracer
	cfg     *Config
}

// newSession mounts the app and realizes its initial live tree.
func newSession(id uint64, app App, conn *websocket.Conn, cfg *Config, m *metrics, tracer trace.Tracer) *Session {
	s := &Session{
		id:       id,
		app:      app,
		conn:     conn,
		logger:   cfg.Logger.With("component", "session", "session_id", id),
		metrics:  m,
		tracer:   tracer,
		cfg:      cfg,
	}
	s.snapshot = app()
	s.live = s.renderer.CreateNode(s.snapshot).(*dom.Node)
	return s
}

// Live returns the session's live tree root.
func (s *Session) Live() *dom.Node {
	return s.live
}

// HandleEvent runs one full cycle: route the event to its listener,
// re-render, diff against the previous snapshot, and apply the patches
// to the live tree. The patches are returned so the caller can forward
// them to the client.
func (s *Session) HandleEvent(ctx context.Context, msg protocol.EventMessage) ([]vdom.Patch, error) {
	_, span := s.tracer.Start(ctx, "loom.cycle", trace.WithAttributes(
		attribute.String("event.name", msg.Name),
		attribute.Int("event.target", int(msg.Target)),
	))
	defer span.End()

	start := time.Now()
	s.metrics.cyclesTotal.Inc()

	target := vdom.NodeAt(s.live, msg.Target)
	if err := dom.Dispatch(target, msg.Name, msg.Payload); err != nil {
		s.metrics.cycleErrors.WithLabelValues("dispatch").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "dispatch failed")
		return nil, fmt.Errorf("dispatch %q at %d: %w", msg.Name, msg.Target, err)
	}

	next := s.app()
	patches := vdom.Diff(s.snapshot, next)
	if err := vdom.Apply(s.renderer, s.live, patches); err != nil {
		s.metrics.cycleErrors.WithLabelValues("apply").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "apply failed")
		return nil, fmt.Errorf("apply: %w", err)
	}
	s.snapshot = next

	s.metrics.cycleDuration.Observe(time.Since(start).Seconds())
	s.metrics.patchesSent.Add(float64(len(patches)))
	span.SetAttributes(attribute.Int("patches", len(patches)))
	return patches, nil
}

// encodePatchFrame serializes patches into a transmit-ready frame.
func encodePatchFrame(patches []vdom.Patch) ([]byte, error) {
	enc := protocol.NewEncoder()
	if err := protocol.EncodePatches(enc, patches); err != nil {
		return nil, err
	}
	return protocol.EncodeFrame(protocol.FramePatches, enc.Bytes())
}

// readLoop reads frames from the connection until it closes, running
// a cycle per event frame and echoing control pings. A heartbeat
// ticker pings the client so idle sessions outlive the read deadline;
// pongs extend it.
func (s *Session) readLoop(ctx context.Context) {
	s.conn.SetReadLimit(s.cfg.MaxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	})

	stop := make(chan struct{})
	defer close(stop)
	go s.heartbeat(stop)

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))

		frame, err := protocol.DecodeFrame(msg)
		if err != nil {
			s.logger.Error("frame decode error", "error", err)
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			if !s.handleEventFrame(ctx, frame.Payload) {
				s.closeWith(websocket.CloseInternalServerErr, "session terminated")
				return
			}

		case protocol.FrameControl:
			// Ping: echo the payload back.
			s.send(protocol.FrameControl, frame.Payload)

		default:
			s.logger.Warn("unexpected frame type", "type", frame.Type)
		}
	}
}

// heartbeat pings the client every HeartbeatInterval until stop closes.
// WriteControl is safe to call concurrently with the read loop's writes.
func (s *Session) heartbeat(stop <-chan struct{}) {
	ticker := time.NewTicker(s.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			deadline := time.Now().Add(s.cfg.WriteTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		case <-stop:
			return
		}
	}
}

// handleEventFrame runs one cycle for a client event. It reports
// whether the session can continue: once HandleEvent has advanced the
// snapshot, a patch list the client will never receive (encode
// failure) or a partially patched live tree (structural mismatch)
// leaves the client permanently behind, so the session must end.
func (s *Session) handleEventFrame(ctx context.Context, payload []byte) bool {
	msg, err := protocol.DecodeEvent(protocol.NewDecoder(payload))
	if err != nil {
		s.logger.Error("event decode error", "error", err)
		s.send(protocol.FrameError, []byte("invalid event"))
		return true
	}

	patches, err := s.HandleEvent(ctx, msg)
	if err != nil {
		s.logger.Error("cycle failed", "event", msg.Name, "error", err)
		s.send(protocol.FrameError, []byte("cycle failed"))
		return !errors.Is(err, vdom.ErrStructuralMismatch)
	}
	if len(patches) == 0 {
		return true
	}

	buf, err := encodePatchFrame(patches)
	if err != nil {
		s.logger.Error("patch encode error", "error", err, "patches", len(patches))
		s.send(protocol.FrameError, []byte("patch frame too large"))
		return false
	}
	s.metrics.patchBytes.Add(float64(len(buf)))
	s.send(0, buf)
	return true
}

// closeWith sends a close frame before the connection is torn down.
func (s *Session) closeWith(code int, reason string) {
	if s.conn == nil {
		return
	}
	msg := websocket.FormatCloseMessage(code, reason)
	s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(s.cfg.WriteTimeout))
}

// send writes a frame to the connection. A zero frame type means buf
// is already a complete frame.
func (s *Session) send(t protocol.FrameType, buf []byte) {
	if s.conn == nil {
		return
	}
	if t != 0 {
		framed, err := protocol.EncodeFrame(t, buf)
		if err != nil {
			s.logger.Error("frame encode error", "error", err)
			return
		}
		buf = framed
	}
	s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.BinaryMessage, buf); err != nil {
		s.logger.Error("write error", "error", err)
	}
}

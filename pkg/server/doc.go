// Package server runs Loom apps over HTTP and WebSocket.
//
// Each WebSocket connection gets its own session: a fresh app
// instance, its rendered snapshot, and a live tree mirroring it.
// Incoming event frames are dispatched to listener bindings on the
// live tree; the app re-renders, the two snapshots are diffed, the
// patches are applied locally and streamed to the client.
//
// "/" serves the initial page render, "/healthz" a liveness check,
// and "/metrics" the Prometheus registry when one is configured.
package server

// Package http implements the local control API of the notesync daemon.
//
// It exposes route wiring, request handlers and middleware used to trigger,
// cancel and inspect vault syncs, to feed local note edits into the sync
// engine and to manage vault configurations. Cross-cutting concerns such as
// request tracing and access logging are handled in this package before
// requests are delegated to the service layer.
package http

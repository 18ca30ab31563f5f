// Package server runs the daemon: the control API HTTP server together with
// the background workers.
//
// It handles startup, signal handling, and graceful shutdown. On SIGTERM,
// SIGINT or SIGQUIT the HTTP server stops accepting requests first and the
// workers are stopped after it.
package server

// Package server runs the control API over HTTP.
//
// The server lives as long as the context passed to Run and shuts down
// gracefully when it is cancelled.
package server

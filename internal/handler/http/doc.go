// Package http implements the local control API of the sync engine.
//
// The API lets an operator wake the account worker's push wait, read the
// state of the running sessions, request a resync of one collection and
// download an attachment. Every request is tagged with a trace id and
// access-logged before it reaches a handler.
package http

// Package utils holds small helpers shared by the transport and control API
// layers: the resty-based HTTP client used to reach the mail server and JSON
// response writing for the control API.
package utils

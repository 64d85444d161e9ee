// Package http implements the HTTP transport layer of the journal server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Every response, including errors, unknown routes and recovered
// panics, is a JSON envelope {success, data, message}. Cross-cutting
// concerns such as request tracing, access logging, panic recovery and body
// size limits are handled in this package before requests are delegated to
// the service layer.
package http

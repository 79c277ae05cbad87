// Package http implements the HTTP transport layer of asset-keeper.
//
// It exposes the route table of the asset API, the request handlers, and the
// middleware wrapped around them: request tracing, access logging, metrics,
// response compression, and panic recovery. Handlers decode requests, call the
// service layer, and map service errors to HTTP status codes.
package http

// Package server exposes the conversion pipeline over HTTP.
//
// # Routes
//
//	GET  /healthz   liveness and build version
//	POST /convert   body: SBGN-ML; query: to, from, no_render, no_annotations, no_notes, refresh
//	POST /check     body: SBGN-ML; answers the detected schema generation
//	POST /inspect   body: SBGN-ML; query: format (json, yaml, msgpack)
//	POST /preview   body: SBGN-ML; query: format (dot, svg, pdf, png), detailed, scale
//
// Documents travel as raw request bodies. Failures are answered with a JSON
// body {"code", "message", "details"} and the status derived from the error
// code, see [errors.HTTPStatus].
//
// Responses that went through the cache carry an X-Cache header of "hit" or
// "miss".
package server

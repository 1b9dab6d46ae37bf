// Package middleware contains HTTP middleware for the Fiber application.
//
//   - auth: api-key validation for the read-only API.
//   - rayid: a unique request id injected into the context and response
//     headers for tracing.
package middleware

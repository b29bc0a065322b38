// Package api is the HTTP gateway to the remote learning service.
//
// Every remote call in the application passes through Client. The client
// attaches the current bearer token (read from the token store on each
// request), throttles proactively, classifies every failure into a stable
// taxonomy (Unauthorized, NotFound, Validation, Network, ServerError,
// Unknown) and never retries automatically.
package api

// Package http implements the HTTP transport layer of the application.
//
// It serves two surfaces over the same services: server-rendered HTML pages
// authenticated by a session cookie, and a JSON API authenticated by a bearer
// token. Cross-cutting concerns such as request tracing, access logging,
// response compression and request timeouts are handled here before requests
// are delegated to the service layer.
package http

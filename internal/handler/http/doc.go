// Package http implements the HTTP transport layer of phishguard: the six
// HTML page routes with their cookie-session login gate, the JSON API used
// by the terminal client, and the middleware handling tracing, logging,
// and authentication before requests reach the service layer.
package http

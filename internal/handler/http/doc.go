// Package http implements the REST API of the qr-keeper server.
//
// Routes cover scanning (classify and store), payload generation with PNG
// rendering, and the scan history with its CSV and JSON exports. Request
// tracing, access logging and response compression are applied as chi
// middleware before requests reach the service layer.
package http

// Package server exposes a Host over HTTP.
//
// Routes:
//
//	GET  /                      full page, with the live client when enabled
//	GET  /live                  live preview websocket
//	GET  /metrics               Prometheus metrics
//	GET  /healthz               liveness
//	GET  /toasts                active toasts as JSON
//	POST /toasts                show a toast: {"message":"...","type":"success"}
//	POST /toasts/{id}/dismiss   dismiss a toast
//	POST /exchange              run an exchange against the upstream
//
// Errors are returned as JSON-encoded *errors.Error values.
package server

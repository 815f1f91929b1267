// Package live mirrors server-side page state into connected browsers over
// a WebSocket. The server publishes a snapshot of an element's inner HTML
// whenever it changes; ClientScript applies it by id.
package live

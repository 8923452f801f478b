// Package application wires the packing calculator, the preset catalog, the
// HTTP handlers and the server together so that cmd/server only has to parse
// flags and manage shutdown.
package application

// Package mcp provides an MCP (Model Context Protocol) server adapter for drivecaffeine.
// It lets AI assistants and other MCP clients inspect and control which
// drives are kept awake.
package mcp

import "errors"

// ErrMissingRegistry is returned when the keep-alive registry is not provided.
var ErrMissingRegistry = errors.New("mcp: keep-alive registry is required")

// ErrHistoryDisabled is returned by the history tool when no history
// service is wired.
var ErrHistoryDisabled = errors.New("mcp: probe history is disabled")

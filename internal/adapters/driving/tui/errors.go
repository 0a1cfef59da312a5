package tui

import "errors"

// ErrMissingRegistry is returned when the keep-alive registry is not provided.
var ErrMissingRegistry = errors.New("tui: keep-alive registry is required")

// ErrMissingDriveService is returned when the drive service is not provided.
var ErrMissingDriveService = errors.New("tui: drive service is required")

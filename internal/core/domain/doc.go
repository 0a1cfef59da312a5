// Package domain defines the core business entities for drivecaffeine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DriveID: The root path of a storage volume
//   - Interval: The closed set of delays between keep-alive probes
//   - ProbeResult: The outcome of one write-then-delete probe
//   - AppSettings: Startup configuration for the keep-alive registry
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

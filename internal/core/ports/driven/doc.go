// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Prober: Writes and deletes the probe file on a drive root
//   - DriveLister: Enumerates mounted volumes for menus
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ProbeRecorder: Observes probe outcomes (logging, history)
//   - ProbeStore: Probe history persistence (SQLite)
//   - ConfigWatcher: Hot reload of the configuration file
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

// Package services implements the driving port interfaces.
// The Registry owns one KeepAliveTask per enabled drive; the other
// services join it with driven ports for drive listing, settings and
// probe history.
//
// Services are pure Go with no CGO or external dependencies.
package services

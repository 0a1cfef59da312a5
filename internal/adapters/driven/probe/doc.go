// Package probe implements the keep-alive write against a real filesystem
// and a recorder that logs probe outcomes.
//
// FSProber creates "<uuid>.caffeine" in the drive root, writes the uuid
// into it and deletes it again. The file lives for a few milliseconds at
// most; a leftover file means the delete failed and is reported as such.
package probe

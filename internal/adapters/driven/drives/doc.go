// Package drives enumerates mounted volumes for the drive menu.
//
// On Linux the mount table is read from /proc/mounts, labels from
// /dev/disk/by-label and the removable flag from sysfs. On Windows the
// logical drive letters are queried through golang.org/x/sys/windows.
// Other platforms list the entries under /Volumes.
//
// Enumeration is advisory: the keep-alive registry accepts any root path,
// mounted or not.
package drives

package drives

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
)

// Ensure MountLister implements the interface.
var _ driven.DriveLister = (*MountLister)(nil)

// ignoredFilesystems are pseudo or network filesystems that never make
// sense as keep-alive targets.
var ignoredFilesystems = map[string]struct{}{
	"proc":        {},
	"sysfs":       {},
	"devtmpfs":    {},
	"devpts":      {},
	"cgroup":      {},
	"cgroup2":     {},
	"securityfs":  {},
	"debugfs":     {},
	"tracefs":     {},
	"pstore":      {},
	"bpf":         {},
	"mqueue":      {},
	"hugetlbfs":   {},
	"configfs":    {},
	"fusectl":     {},
	"binfmt_misc": {},
	"tmpfs":       {},
	"ramfs":       {},
	"nfs":         {},
	"nfs4":        {},
	"cifs":        {},
	"autofs":      {},
	"fuse":        {},
	"overlay":     {},
	"squashfs":    {},
	"nsfs":        {},
}

// mountEntry is one line of a mount table.
type mountEntry struct {
	Device     string
	Mountpoint string
	FSType     string
}

// MountLister lists drives from a Linux-style mount table.
type MountLister struct {
	mountsPath string // e.g. /proc/mounts
	byLabelDir string // e.g. /dev/disk/by-label
	sysBlock   string // e.g. /sys/class/block
}

// NewMountLister creates a lister reading the given locations.
// Empty paths fall back to the Linux defaults.
func NewMountLister(mountsPath, byLabelDir, sysBlock string) *MountLister {
	if mountsPath == "" {
		mountsPath = "/proc/mounts"
	}
	if byLabelDir == "" {
		byLabelDir = "/dev/disk/by-label"
	}
	if sysBlock == "" {
		sysBlock = "/sys/class/block"
	}
	return &MountLister{
		mountsPath: mountsPath,
		byLabelDir: byLabelDir,
		sysBlock:   sysBlock,
	}
}

// List returns every mounted block-device filesystem.
func (l *MountLister) List(ctx context.Context) ([]domain.Drive, error) {
	f, err := os.Open(l.mountsPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mounts, err := parseMountsFrom(f)
	if err != nil {
		return nil, err
	}

	labels := l.labels()

	drives := make([]domain.Drive, 0, len(mounts))
	seen := make(map[string]bool, len(mounts))
	for _, m := range mounts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Bind mounts repeat the same mountpoint.
		if seen[m.Mountpoint] {
			continue
		}
		seen[m.Mountpoint] = true

		drives = append(drives, domain.Drive{
			ID:        domain.DriveID(m.Mountpoint),
			Label:     labelFor(m, labels),
			Device:    m.Device,
			FSType:    m.FSType,
			Removable: l.removable(m.Device),
		})
	}
	return drives, nil
}

// labels maps a resolved device path to its filesystem label.
func (l *MountLister) labels() map[string]string {
	entries, err := os.ReadDir(l.byLabelDir)
	if err != nil {
		return nil
	}

	labels := make(map[string]string, len(entries))
	for _, e := range entries {
		target, err := filepath.EvalSymlinks(filepath.Join(l.byLabelDir, e.Name()))
		if err != nil {
			continue
		}
		labels[target] = decodeLabel(e.Name())
	}
	return labels
}

// removable reads the sysfs removable flag of the device, or of its
// parent disk when the device is a partition.
func (l *MountLister) removable(device string) bool {
	if !strings.HasPrefix(device, "/dev/") {
		return false
	}
	name := filepath.Base(device)

	dir, err := filepath.EvalSymlinks(filepath.Join(l.sysBlock, name))
	if err != nil {
		return false
	}
	if _, err := os.Stat(filepath.Join(dir, "partition")); err == nil {
		dir = filepath.Dir(dir)
	}

	data, err := os.ReadFile(filepath.Join(dir, "removable"))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "1"
}

func labelFor(m mountEntry, labels map[string]string) string {
	if label, ok := labels[m.Device]; ok {
		return label
	}
	if resolved, err := filepath.EvalSymlinks(m.Device); err == nil {
		if label, ok := labels[resolved]; ok {
			return label
		}
	}
	if m.Mountpoint == "/" {
		return "root"
	}
	return filepath.Base(m.Mountpoint)
}

func parseMountsFrom(r io.Reader) ([]mountEntry, error) {
	var mounts []mountEntry
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}

		m := mountEntry{
			Device:     fields[0],
			Mountpoint: decodeMountPath(fields[1]),
			FSType:     fields[2],
		}

		if shouldIgnore(m) {
			continue
		}

		mounts = append(mounts, m)
	}

	return mounts, scanner.Err()
}

func shouldIgnore(m mountEntry) bool {
	_, isFSTypeIgnored := ignoredFilesystems[m.FSType]

	return isFSTypeIgnored || strings.HasPrefix(m.FSType, "fuse.") ||
		strings.HasPrefix(m.Device, "/dev/loop") ||
		strings.HasPrefix(m.Mountpoint, "/mnt/wsl/") ||
		strings.HasPrefix(m.Mountpoint, "/Docker/") ||
		strings.HasPrefix(m.Mountpoint, "/snap/")
}

// decodeMountPath replaces common octal escapes in /proc/mounts.
func decodeMountPath(s string) string {
	s = strings.ReplaceAll(s, `\040`, " ")
	s = strings.ReplaceAll(s, `\011`, "\t")
	s = strings.ReplaceAll(s, `\134`, `\`)
	return s
}

// decodeLabel undoes udev's \xNN escaping in /dev/disk/by-label names.
func decodeLabel(s string) string {
	if !strings.Contains(s, `\x`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i+3 < len(s) && s[i] == '\\' && s[i+1] == 'x' {
			if v, err := strconv.ParseUint(s[i+2:i+4], 16, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

package probe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
)

// Ensure FSProber implements the interface.
var _ driven.Prober = (*FSProber)(nil)

// FSProber writes probe files with the os package.
type FSProber struct {
	// newToken returns the probe file's name stem and content.
	newToken func() string
}

// NewFSProber creates a prober that names files with random UUIDs.
func NewFSProber() *FSProber {
	return &FSProber{newToken: uuid.NewString}
}

// Reachable reports whether root exists and is a directory.
func (p *FSProber) Reachable(root domain.DriveID) bool {
	if root.IsZero() {
		return false
	}
	info, err := os.Stat(root.String())
	return err == nil && info.IsDir()
}

// Probe creates a uniquely named file in root, writes its token and deletes it.
// A failed write still attempts the delete, so a partially created file
// does not linger.
func (p *FSProber) Probe(root domain.DriveID) error {
	token := p.newToken()
	path := filepath.Join(root.String(), token+domain.ProbeExtension)

	writeErr := os.WriteFile(path, []byte(token), 0o600)
	if writeErr != nil {
		writeErr = fmt.Errorf("write probe: %w", writeErr)
	}

	removeErr := os.Remove(path)
	switch {
	case removeErr == nil:
	case writeErr != nil && errors.Is(removeErr, os.ErrNotExist):
		// Nothing was created.
		removeErr = nil
	default:
		removeErr = fmt.Errorf("remove probe: %w", removeErr)
	}

	return errors.Join(writeErr, removeErr)
}

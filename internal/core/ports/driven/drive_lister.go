package driven

import (
	"context"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
)

// DriveLister enumerates the volumes currently mounted on this machine.
type DriveLister interface {
	List(ctx context.Context) ([]domain.Drive, error)
}

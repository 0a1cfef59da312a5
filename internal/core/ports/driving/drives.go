package driving

import (
	"context"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
)

// DriveService lists drives for menus, annotated with keep-alive state.
type DriveService interface {
	// List returns mounted drives plus any enabled drives that are
	// currently absent, so they can still be disabled.
	List(ctx context.Context) ([]domain.DriveStatus, error)
}

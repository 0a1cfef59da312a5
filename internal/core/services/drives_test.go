package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
)

// mockDriveLister implements driven.DriveLister for testing.
type mockDriveLister struct {
	drives []domain.Drive
	err    error
}

var _ driven.DriveLister = (*mockDriveLister)(nil)

func (m *mockDriveLister) List(_ context.Context) ([]domain.Drive, error) {
	return m.drives, m.err
}

func TestDriveService_List(t *testing.T) {
	lister := &mockDriveLister{drives: []domain.Drive{
		{ID: "F:\\", Label: "Backup"},
		{ID: "E:\\", Label: "Photos", Removable: true},
	}}
	registry := NewRegistry(domain.Interval3m, newMockProber(), nil)
	defer shutdown(t, registry)
	require.NoError(t, registry.Enable("F:\\"))

	service := NewDriveService(lister, registry)
	statuses, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, statuses, 2)

	assert.Equal(t, domain.DriveID("E:\\"), statuses[0].Drive.ID)
	assert.Equal(t, "Photos", statuses[0].Drive.Label)
	assert.False(t, statuses[0].Enabled)
	assert.True(t, statuses[0].Mounted)

	assert.Equal(t, domain.DriveID("F:\\"), statuses[1].Drive.ID)
	assert.True(t, statuses[1].Enabled)
	assert.True(t, statuses[1].Mounted)
}

func TestDriveService_List_IncludesAbsentEnabledDrives(t *testing.T) {
	lister := &mockDriveLister{drives: []domain.Drive{{ID: "E:\\"}}}
	registry := NewRegistry(domain.Interval3m, newMockProber(), nil)
	defer shutdown(t, registry)
	require.NoError(t, registry.Enable("G:\\"))

	statuses, err := NewDriveService(lister, registry).List(context.Background())

	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, domain.DriveID("G:\\"), statuses[1].Drive.ID)
	assert.True(t, statuses[1].Enabled)
	assert.False(t, statuses[1].Mounted)
}

func TestDriveService_List_DeduplicatesLister(t *testing.T) {
	lister := &mockDriveLister{drives: []domain.Drive{{ID: "E:\\"}, {ID: "E:\\"}}}
	registry := NewRegistry(domain.Interval3m, newMockProber(), nil)
	defer shutdown(t, registry)

	statuses, err := NewDriveService(lister, registry).List(context.Background())

	require.NoError(t, err)
	assert.Len(t, statuses, 1)
}

func TestDriveService_List_ListerError(t *testing.T) {
	lister := &mockDriveLister{err: errors.New("permission denied")}
	registry := NewRegistry(domain.Interval3m, newMockProber(), nil)
	defer shutdown(t, registry)

	_, err := NewDriveService(lister, registry).List(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

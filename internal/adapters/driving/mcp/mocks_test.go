package mcp

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driving"
)

// mockRegistry is a mock implementation of driving.Registry.
type mockRegistry struct {
	mu       sync.Mutex
	drives   []domain.DriveID
	interval domain.Interval
	err      error
}

var _ driving.Registry = (*mockRegistry)(nil)

func newMockRegistry(drives ...domain.DriveID) *mockRegistry {
	return &mockRegistry{drives: drives, interval: domain.DefaultInterval}
}

func (m *mockRegistry) Enable(drive domain.DriveID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if !slices.Contains(m.drives, drive) {
		m.drives = append(m.drives, drive)
		slices.Sort(m.drives)
	}
	return nil
}

func (m *mockRegistry) Disable(drive domain.DriveID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.drives = slices.DeleteFunc(m.drives, func(d domain.DriveID) bool { return d == drive })
	return nil
}

func (m *mockRegistry) Toggle(drive domain.DriveID) (bool, error) {
	if drive.IsZero() {
		return false, domain.ErrInvalidInput
	}
	m.mu.Lock()
	enabled := slices.Contains(m.drives, drive)
	m.mu.Unlock()
	if enabled {
		return false, m.Disable(drive)
	}
	return true, m.Enable(drive)
}

func (m *mockRegistry) SetInterval(interval domain.Interval) error {
	if !interval.IsValid() {
		return domain.ErrInvalidInterval
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interval = interval
	return nil
}

func (m *mockRegistry) ActiveDrives() []domain.DriveID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.drives)
}

func (m *mockRegistry) CurrentInterval() domain.Interval {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}

func (m *mockRegistry) Status() domain.KeepAliveStatus {
	return domain.KeepAliveStatus{
		Interval:     m.CurrentInterval(),
		ActiveDrives: m.ActiveDrives(),
	}
}

func (m *mockRegistry) Shutdown(_ context.Context) error {
	return nil
}

// mockDriveService is a mock implementation of driving.DriveService.
type mockDriveService struct {
	drives []domain.DriveStatus
	err    error
}

var _ driving.DriveService = (*mockDriveService)(nil)

func (m *mockDriveService) List(_ context.Context) ([]domain.DriveStatus, error) {
	return m.drives, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	results   []domain.ProbeResult
	err       error
	lastDrive domain.DriveID
	lastLimit int
}

var _ driving.HistoryService = (*mockHistoryService)(nil)

func (m *mockHistoryService) Recent(_ context.Context, drive domain.DriveID, limit int) ([]domain.ProbeResult, error) {
	m.lastDrive = drive
	m.lastLimit = limit
	return m.results, m.err
}

func (m *mockHistoryService) Last(_ context.Context, _ domain.DriveID) (*domain.ProbeResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.results) == 0 {
		return nil, nil
	}
	return &m.results[0], nil
}

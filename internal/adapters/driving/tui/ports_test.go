package tui

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driving"
)

// MockRegistry implements driving.Registry for testing.
type MockRegistry struct {
	mu           sync.Mutex
	active       []domain.DriveID
	interval     domain.Interval
	shutdowns    int
	ShutdownFunc func(ctx context.Context) error
}

var _ driving.Registry = (*MockRegistry)(nil)

func (m *MockRegistry) Enable(d domain.DriveID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !slices.Contains(m.active, d) {
		m.active = append(m.active, d)
	}
	return nil
}

func (m *MockRegistry) Disable(d domain.DriveID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = slices.DeleteFunc(m.active, func(x domain.DriveID) bool { return x == d })
	return nil
}

func (m *MockRegistry) Toggle(d domain.DriveID) (bool, error) {
	m.mu.Lock()
	on := slices.Contains(m.active, d)
	m.mu.Unlock()
	if on {
		return false, m.Disable(d)
	}
	return true, m.Enable(d)
}

func (m *MockRegistry) SetInterval(i domain.Interval) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interval = i
	return nil
}

func (m *MockRegistry) ActiveDrives() []domain.DriveID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.active)
}

func (m *MockRegistry) CurrentInterval() domain.Interval {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.interval == "" {
		return domain.DefaultInterval
	}
	return m.interval
}

func (m *MockRegistry) Status() domain.KeepAliveStatus {
	return domain.KeepAliveStatus{Interval: m.CurrentInterval(), ActiveDrives: m.ActiveDrives()}
}

func (m *MockRegistry) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	m.shutdowns++
	m.active = nil
	m.mu.Unlock()
	if m.ShutdownFunc != nil {
		return m.ShutdownFunc(ctx)
	}
	return nil
}

// MockDriveService implements driving.DriveService for testing.
type MockDriveService struct {
	ListFunc func(ctx context.Context) ([]domain.DriveStatus, error)
}

var _ driving.DriveService = (*MockDriveService)(nil)

func (m *MockDriveService) List(ctx context.Context) ([]domain.DriveStatus, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// MockHistoryService implements driving.HistoryService for testing.
type MockHistoryService struct {
	RecentFunc func(ctx context.Context, drive domain.DriveID, limit int) ([]domain.ProbeResult, error)
}

var _ driving.HistoryService = (*MockHistoryService)(nil)

func (m *MockHistoryService) Recent(ctx context.Context, drive domain.DriveID, limit int) ([]domain.ProbeResult, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, drive, limit)
	}
	return nil, nil
}

func (m *MockHistoryService) Last(_ context.Context, _ domain.DriveID) (*domain.ProbeResult, error) {
	return nil, nil
}

func TestNewPorts(t *testing.T) {
	registry := &MockRegistry{}
	drives := &MockDriveService{}

	ports := NewPorts(registry, drives)

	assert.Equal(t, registry, ports.Registry)
	assert.Equal(t, drives, ports.Drives)
	assert.Nil(t, ports.History)
	assert.Nil(t, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{
			name:    "all required ports",
			ports:   NewPorts(&MockRegistry{}, &MockDriveService{}),
			wantErr: nil,
		},
		{
			name:    "missing registry",
			ports:   &Ports{Drives: &MockDriveService{}},
			wantErr: ErrMissingRegistry,
		},
		{
			name:    "missing drive service",
			ports:   &Ports{Registry: &MockRegistry{}},
			wantErr: ErrMissingDriveService,
		},
		{
			name: "optional ports set",
			ports: &Ports{
				Registry: &MockRegistry{},
				Drives:   &MockDriveService{},
				History:  &MockHistoryService{},
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driving"
)

// Ensure Registry implements the interface.
var _ driving.Registry = (*Registry)(nil)

// Registry owns the set of running keep-alive tasks, at most one per drive,
// and the single interval they all share.
type Registry struct {
	prober   driven.Prober
	recorder driven.ProbeRecorder

	// durationOf converts an interval to the sleep a task uses.
	durationOf func(domain.Interval) time.Duration

	mu    sync.Mutex
	tasks map[domain.DriveID]*KeepAliveTask
	// stopping holds disabled tasks whose loop may still be inside a probe.
	stopping map[domain.DriveID]*KeepAliveTask
	interval domain.Interval
	closed   bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewRegistry creates an empty registry using interval for new tasks.
// An invalid interval falls back to the default. recorder may be nil.
func NewRegistry(
	interval domain.Interval,
	prober driven.Prober,
	recorder driven.ProbeRecorder,
) *Registry {
	if !interval.IsValid() {
		interval = domain.DefaultInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Registry{
		prober:     prober,
		recorder:   recorder,
		durationOf: domain.Interval.Duration,
		tasks:      make(map[domain.DriveID]*KeepAliveTask),
		stopping:   make(map[domain.DriveID]*KeepAliveTask),
		interval:   interval,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Enable starts keeping drive awake. Enabling an already enabled drive
// does nothing, as does an empty drive. If a disabled task for the drive
// is still finishing a probe, the new task waits for it before probing.
func (r *Registry) Enable(drive domain.DriveID) error {
	drive = domain.NewDriveID(string(drive))
	if drive.IsZero() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return domain.ErrRegistryClosed
	}

	if _, exists := r.tasks[drive]; exists {
		return nil
	}

	r.enableLocked(drive)
	return nil
}

// Disable stops keeping drive awake. It cancels the task and returns
// without waiting for a probe in progress to finish.
// Disabling a drive that is not enabled does nothing.
func (r *Registry) Disable(drive domain.DriveID) error {
	drive = domain.NewDriveID(string(drive))

	r.mu.Lock()
	defer r.mu.Unlock()

	if task, exists := r.tasks[drive]; exists {
		r.disableLocked(drive, task)
	}
	return nil
}

// Toggle enables drive if it is disabled and disables it otherwise.
// Returns whether the drive is enabled afterwards.
func (r *Registry) Toggle(drive domain.DriveID) (bool, error) {
	drive = domain.NewDriveID(string(drive))
	if drive.IsZero() {
		return false, fmt.Errorf("toggle: %w", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if task, enabled := r.tasks[drive]; enabled {
		r.disableLocked(drive, task)
		return false, nil
	}
	if r.closed {
		return false, domain.ErrRegistryClosed
	}
	r.enableLocked(drive)
	return true, nil
}

// enableLocked starts a task for drive. r.mu must be held.
func (r *Registry) enableLocked(drive domain.DriveID) {
	task := NewKeepAliveTask(r.ctx, drive, r.durationOf(r.interval), r.prober, r.recorder)
	if prev, ok := r.stopping[drive]; ok {
		delete(r.stopping, drive)
		task.after = prev.Done()
	}
	r.tasks[drive] = task
	task.Start()
}

// disableLocked cancels task and tracks it until its loop exits.
// r.mu must be held.
func (r *Registry) disableLocked(drive domain.DriveID, task *KeepAliveTask) {
	delete(r.tasks, drive)
	task.Cancel()
	r.stopping[drive] = task

	go func() {
		<-task.Done()
		r.mu.Lock()
		if r.stopping[drive] == task {
			delete(r.stopping, drive)
		}
		r.mu.Unlock()
	}()
}

// SetInterval changes the interval for every current and future task.
// Running tasks pick it up after their current sleep.
func (r *Registry) SetInterval(interval domain.Interval) error {
	if !interval.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidInterval, interval)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.interval = interval
	d := r.durationOf(interval)
	for _, task := range r.tasks {
		task.SetInterval(d)
	}

	return nil
}

// ActiveDrives returns the enabled drives in sorted order.
func (r *Registry) ActiveDrives() []domain.DriveID {
	r.mu.Lock()
	drives := make([]domain.DriveID, 0, len(r.tasks))
	for drive := range r.tasks {
		drives = append(drives, drive)
	}
	r.mu.Unlock()

	slices.Sort(drives)
	return drives
}

// CurrentInterval returns the interval used by all tasks.
func (r *Registry) CurrentInterval() domain.Interval {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.interval
}

// Status returns a snapshot of the interval and the enabled drives.
func (r *Registry) Status() domain.KeepAliveStatus {
	return domain.KeepAliveStatus{
		Interval:     r.CurrentInterval(),
		ActiveDrives: r.ActiveDrives(),
	}
}

// Shutdown cancels every task and waits for their loops to exit, including
// those of recently disabled tasks, or for ctx to end. After Shutdown, Enable fails with ErrRegistryClosed.
// Calling Shutdown again does nothing.
func (r *Registry) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	tasks := make([]*KeepAliveTask, 0, len(r.tasks)+len(r.stopping))
	for _, task := range r.tasks {
		tasks = append(tasks, task)
	}
	for _, task := range r.stopping {
		tasks = append(tasks, task)
	}
	clear(r.tasks)
	clear(r.stopping)
	r.mu.Unlock()

	r.cancel()

	for _, task := range tasks {
		task.Cancel()
	}

	for _, task := range tasks {
		select {
		case <-task.Done():
		case <-ctx.Done():
			return fmt.Errorf("shutdown: %w", ctx.Err())
		}
	}

	return nil
}

package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
)

// KeepAliveTask repeatedly probes one drive until cancelled.
//
// A task is Running from Start until Cancel; Cancelled is terminal.
// Probe failures and unreachable roots never stop the loop: a removed drive
// may come back at any time, so it is simply tried again next cycle.
type KeepAliveTask struct {
	drive    domain.DriveID
	prober   driven.Prober
	recorder driven.ProbeRecorder

	// interval holds a time.Duration. The registry writes it, the loop reads
	// it before every sleep.
	interval atomic.Int64

	// after, when set, delays the first probe until a previous task for
	// the same drive has exited.
	after <-chan struct{}

	ctx       context.Context
	cancel    context.CancelFunc
	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

// NewKeepAliveTask creates a task bound to drive. The task does not run
// until Start is called. Cancelling parent cancels the task.
// recorder may be nil.
func NewKeepAliveTask(
	parent context.Context,
	drive domain.DriveID,
	interval time.Duration,
	prober driven.Prober,
	recorder driven.ProbeRecorder,
) *KeepAliveTask {
	ctx, cancel := context.WithCancel(parent)
	t := &KeepAliveTask{
		drive:    drive,
		prober:   prober,
		recorder: recorder,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	t.interval.Store(int64(interval))
	return t
}

// Start launches the task's loop. Subsequent calls do nothing.
func (t *KeepAliveTask) Start() {
	t.startOnce.Do(func() {
		go t.run()
	})
}

// Drive returns the bound drive.
func (t *KeepAliveTask) Drive() domain.DriveID {
	return t.drive
}

// Interval returns the delay the task will use for its next sleep.
func (t *KeepAliveTask) Interval() time.Duration {
	return time.Duration(t.interval.Load())
}

// SetInterval changes the delay used from the next sleep onwards.
// A sleep already in progress keeps its original deadline.
// Non-positive values are ignored.
func (t *KeepAliveTask) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	t.interval.Store(int64(d))
}

// Cancel signals the loop to stop. Safe to call more than once and from
// any goroutine.
func (t *KeepAliveTask) Cancel() {
	t.stopOnce.Do(t.cancel)
}

// Done is closed once the loop has exited, together with the loop of any
// task this one replaced. A task that was never started is finished as
// soon as it is cancelled.
func (t *KeepAliveTask) Done() <-chan struct{} {
	return t.done
}

// Running reports whether the task has not been cancelled.
func (t *KeepAliveTask) Running() bool {
	return t.ctx.Err() == nil
}

// stop cancels the task and waits for its loop to exit.
func (t *KeepAliveTask) stop() {
	t.Cancel()
	t.startOnce.Do(func() {
		close(t.done)
	})
	<-t.done
}

// run is the keep-alive loop.
func (t *KeepAliveTask) run() {
	defer close(t.done)

	if t.after != nil {
		<-t.after
	}

	for {
		if t.ctx.Err() != nil {
			return
		}

		t.probeOnce()

		if !t.sleep(t.Interval()) {
			return
		}
	}
}

// sleep waits for d or until the task is cancelled.
// Returns false if the task was cancelled.
func (t *KeepAliveTask) sleep(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-t.ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// probeOnce runs one iteration and reports it to the recorder.
func (t *KeepAliveTask) probeOnce() {
	result := &domain.ProbeResult{
		DriveID:   t.drive,
		StartedAt: time.Now(),
	}
	result.Outcome, result.Error = t.attempt()
	result.EndedAt = time.Now()

	t.report(result)
}

// attempt checks reachability and writes the probe.
// Failures are returned as an outcome, never propagated.
func (t *KeepAliveTask) attempt() (outcome domain.ProbeOutcome, errMsg string) {
	defer func() {
		if r := recover(); r != nil {
			outcome = domain.ProbeFailed
			errMsg = fmt.Sprintf("probe panicked: %v", r)
		}
	}()

	if !t.prober.Reachable(t.drive) {
		return domain.ProbeSkipped, ""
	}

	// Cancellation may have landed while checking the root.
	if t.ctx.Err() != nil {
		return domain.ProbeSkipped, ""
	}

	if err := t.prober.Probe(t.drive); err != nil {
		return domain.ProbeFailed, err.Error()
	}
	return domain.ProbeWritten, ""
}

// report hands the result to the recorder. The recorder's error is
// discarded on purpose: probe outcomes are observations, not failures.
func (t *KeepAliveTask) report(result *domain.ProbeResult) {
	if t.recorder == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	_ = t.recorder.Record(context.WithoutCancel(t.ctx), result)
}

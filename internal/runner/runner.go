package runner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nba-update-service/internal/logging"
	"nba-update-service/internal/updater"
)

const defaultInterval = 15 * time.Minute

// Invoker executes one update invocation and returns its terminal result.
type Invoker interface {
	Run(ctx context.Context) updater.Result
}

// Runner triggers the update pipeline on an interval, standing in for an
// external scheduler. Each invocation is independent; a failed run is recorded
// and the next tick proceeds as usual.
type Runner struct {
	invoker  Invoker
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the runner loop.
type Status struct {
	ConsecutiveFailures int
	LastStatusCode      int
	LastBody            string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the runner has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Runner with sane defaults.
func New(invoker Invoker, logger *slog.Logger, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Runner{
		invoker:  invoker,
		logger:   logger,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins running until the context is cancelled or Stop is called.
func (r *Runner) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		logging.Info(r.logger, "runner started", slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		// Initial run on boot so the first update is not one full interval away.
		r.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "runner stopped")
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "runner stopped")
				return
			case <-r.ticker.C:
				r.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the run loop.
func (r *Runner) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

func (r *Runner) runOnce(ctx context.Context) {
	start := time.Now()
	at := r.now()
	res := r.invoker.Run(ctx)

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		r.recordSuccess(res, at)
		logging.Info(r.logger, "run complete",
			slog.Int(logging.FieldStatusCode, res.StatusCode),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return
	}

	r.recordFailure(res, at)
	logging.Warn(r.logger, "run failed",
		slog.Int(logging.FieldStatusCode, res.StatusCode),
		slog.String("body", res.Body),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (r *Runner) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Runner) recordSuccess(res updater.Result, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastStatusCode = res.StatusCode
	r.status.LastBody = res.Body
	r.status.LastAttempt = at
	r.status.LastSuccess = at
}

func (r *Runner) recordFailure(res updater.Result, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	r.status.LastStatusCode = res.StatusCode
	r.status.LastBody = res.Body
	r.status.LastAttempt = at
}

// Status returns a snapshot of the runner's recent health.
func (r *Runner) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}

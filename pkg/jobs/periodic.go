package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task is one run of a periodic job.
type Task func(context.Context) error

// PeriodicConfig configures scheduling and retry behaviour.
type PeriodicConfig struct {
	Interval   time.Duration
	MaxRetries int
	RetryDelay time.Duration
	Logger     *zap.Logger
}

// Periodic runs a task on a fixed interval in a single goroutine.
// A failed run is retried up to MaxRetries times before waiting for the next tick.
type Periodic struct {
	name       string
	task       Task
	interval   time.Duration
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

// NewPeriodic builds a periodic job.
func NewPeriodic(name string, task Task, cfg PeriodicConfig) *Periodic {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Periodic{
		name:       name,
		task:       task,
		interval:   cfg.Interval,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     cfg.Logger,
	}
}

// Start launches the loop. The first run happens immediately. Safe to call once.
func (p *Periodic) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.wg.Add(1)
	go p.loop(ctx)
	p.started = true
	p.logger.Info("periodic job started", zap.String("job", p.name), zap.Duration("interval", p.interval))
}

// Stop cancels the loop and waits for the current run to return.
func (p *Periodic) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.cancel()
	p.mu.Unlock()
	p.wg.Wait()
	p.logger.Info("periodic job stopped", zap.String("job", p.name))
}

// RunOnce executes the task with retries and returns the last error.
func (p *Periodic) RunOnce(ctx context.Context) error {
	var err error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if err = p.task(ctx); err == nil {
			return nil
		}
		if attempt == p.maxRetries {
			break
		}
		p.logger.Warn("periodic job failed, retrying",
			zap.String("job", p.name), zap.Int("attempt", attempt+1), zap.Error(err))

		timer := time.NewTimer(p.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	p.logger.Error("periodic job exceeded retries", zap.String("job", p.name), zap.Error(err))
	return err
}

func (p *Periodic) loop(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		_ = p.RunOnce(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

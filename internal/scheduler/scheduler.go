// Package scheduler decides when collection workers run.
//
// Requests from the Ping loop, the control API and the periodic
// reconciliation end up in one deduplicated queue. [Scheduler.Run] drains
// the queue through a rate limiter and runs one collection worker per
// request on a bounded errgroup.
package scheduler

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/service"
	"github.com/MKhiriev/go-eas-sync/internal/store"
)

const (
	DefaultReconcileInterval = time.Minute
	DefaultMaxParallel       = 4
)

// Runner executes collection workers.
type Runner interface {
	// SyncCollection runs a collection worker to completion.
	SyncCollection(ctx context.Context, collectionID int64) error
	// RequestSync forwards a request to the collection's running worker and
	// reports whether one was running.
	RequestSync(collectionID int64) bool
}

// Config tunes a [Scheduler].
type Config struct {
	// Rate is how many collection workers may start per second.
	Rate float64
	// Burst is how many may start at once.
	Burst int
	// ReconcileInterval is how often push collections without a baseline
	// are looked for.
	ReconcileInterval time.Duration
	// MaxParallel bounds the number of concurrently running workers.
	MaxParallel int
}

// Scheduler implements service.Scheduler for one account.
type Scheduler struct {
	accountID   int64
	collections store.CollectionRepository
	limiter     *rate.Limiter
	interval    time.Duration
	maxParallel int
	logger      *logger.Logger

	mu      sync.Mutex
	runner  Runner
	queue   []int64
	queued  map[int64]struct{}
	running map[int64]struct{}
	paused  map[int64]struct{}
	kicked  chan struct{}
	wake    chan struct{}
}

// New returns a scheduler for the collections of accountID.
func New(accountID int64, collections store.CollectionRepository, cfg Config, log *logger.Logger) *Scheduler {
	if cfg.ReconcileInterval <= 0 {
		cfg.ReconcileInterval = DefaultReconcileInterval
	}
	if cfg.MaxParallel <= 0 {
		cfg.MaxParallel = DefaultMaxParallel
	}
	limit := rate.Limit(cfg.Rate)
	if cfg.Rate <= 0 {
		limit = rate.Inf
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	return &Scheduler{
		accountID:   accountID,
		collections: collections,
		limiter:     rate.NewLimiter(limit, cfg.Burst),
		interval:    cfg.ReconcileInterval,
		maxParallel: cfg.MaxParallel,
		logger:      log,
		queued:      make(map[int64]struct{}),
		running:     make(map[int64]struct{}),
		paused:      make(map[int64]struct{}),
		kicked:      make(chan struct{}),
		wake:        make(chan struct{}, 1),
	}
}

// CanSync reports whether the collection is neither running, queued nor
// paused.
func (s *Scheduler) CanSync(collectionID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.idle(collectionID)
}

func (s *Scheduler) idle(collectionID int64) bool {
	_, running := s.running[collectionID]
	_, queued := s.queued[collectionID]
	_, paused := s.paused[collectionID]
	return !running && !queued && !paused
}

// StartManualSync queues a sync of the collection. A collection that is
// already queued is not queued twice; a running one is asked to sync again
// once its current pass ends.
func (s *Scheduler) StartManualSync(ctx context.Context, collectionID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, running := s.running[collectionID]; running && s.runner != nil {
		if s.runner.RequestSync(collectionID) {
			return nil
		}
	}
	s.enqueue(collectionID)
	return ctx.Err()
}

// enqueue must be called with mu held.
func (s *Scheduler) enqueue(collectionID int64) {
	if _, ok := s.queued[collectionID]; ok {
		return
	}
	s.queued[collectionID] = struct{}{}
	s.queue = append(s.queue, collectionID)

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Pause keeps the collection from being scheduled until Resume.
func (s *Scheduler) Pause(collectionID int64) {
	s.mu.Lock()
	s.paused[collectionID] = struct{}{}
	s.mu.Unlock()
}

// Resume undoes Pause.
func (s *Scheduler) Resume(collectionID int64) {
	s.mu.Lock()
	delete(s.paused, collectionID)
	s.mu.Unlock()
}

// Kick wakes everyone waiting on Kicked and makes Run reconcile at once.
func (s *Scheduler) Kick() {
	s.mu.Lock()
	close(s.kicked)
	s.kicked = make(chan struct{})
	s.mu.Unlock()
}

// Kicked returns a channel that is closed by the next Kick.
func (s *Scheduler) Kicked() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kicked
}

// Run consumes sync requests until ctx is done and waits for the workers it
// started.
func (s *Scheduler) Run(ctx context.Context, runner Runner) error {
	s.mu.Lock()
	s.runner = runner
	s.mu.Unlock()

	g := new(errgroup.Group)
	g.SetLimit(s.maxParallel)
	defer g.Wait()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.reconcile(ctx)
	for {
		if s.dispatch(ctx, g, runner) != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-s.wake:
		case <-s.Kicked():
			s.reconcile(ctx)
		case <-ticker.C:
			s.reconcile(ctx)
		}
	}
}

// reconcile queues push collections the server has no state for yet.
func (s *Scheduler) reconcile(ctx context.Context) {
	collections, err := s.collections.ListPushCollections(ctx, s.accountID)
	if err != nil {
		s.logger.Err(err).Str("func", "Scheduler.reconcile").Msg("error listing push collections")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range collections {
		if c.HasBaseline() || !s.idle(c.ID) {
			continue
		}
		s.logger.Debug().Int64("collection_id", c.ID).Str("server_id", c.ServerID).Msg("scheduling initial sync")
		s.enqueue(c.ID)
	}
}

// dispatch starts a worker for every queued request. It only fails when ctx
// is done.
func (s *Scheduler) dispatch(ctx context.Context, g *errgroup.Group, runner Runner) error {
	for {
		id, ok := s.next()
		if !ok {
			return nil
		}

		if err := s.limiter.Wait(ctx); err != nil {
			s.finish(id)
			return err
		}
		s.logger.Debug().Int64("collection_id", id).Msg("starting collection worker")

		g.Go(func() error {
			defer s.finish(id)

			log := s.logger.With().Int64("collection_id", id).Logger()
			if err := runner.SyncCollection(ctx, id); err != nil {
				log.Err(err).Str("exit_status", service.ExitStatusFor(err).String()).Msg("collection sync ended with error")
			}
			return nil
		})
	}
}

// next moves the first queued collection that is not running to running.
// Paused collections are dropped from the queue; running ones stay queued
// until their worker finishes.
func (s *Scheduler) next() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < len(s.queue); {
		id := s.queue[i]
		if _, paused := s.paused[id]; paused {
			s.dequeue(i)
			continue
		}
		if _, running := s.running[id]; running {
			i++
			continue
		}
		s.dequeue(i)
		s.running[id] = struct{}{}
		return id, true
	}
	return 0, false
}

// dequeue must be called with mu held.
func (s *Scheduler) dequeue(i int) {
	delete(s.queued, s.queue[i])
	s.queue = append(s.queue[:i], s.queue[i+1:]...)
}

func (s *Scheduler) finish(collectionID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.running, collectionID)
	if _, queued := s.queued[collectionID]; queued {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
}

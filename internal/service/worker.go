package service

import (
	"context"
	"sync"
)

// Worker drives one session on its own goroutine. The account mailbox runs
// the FolderSync/Ping loop; any other mailbox runs the collection Sync
// loop, repeated while user requests keep arriving during a sync.
type Worker struct {
	sess *Session
	run  func(ctx context.Context, sess *Session) error

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	lastErr error
}

func newWorker(sess *Session, run func(ctx context.Context, sess *Session) error) *Worker {
	return &Worker{sess: sess, run: run}
}

// Session returns the session the worker drives.
func (w *Worker) Session() *Session {
	return w.sess
}

// Run drives the session on the calling goroutine and records the exit
// status derived from the terminal error.
func (w *Worker) Run(ctx context.Context) error {
	log := w.sess.Logger()
	log.Info().Msg("worker started")

	err := w.run(ctx, w.sess)
	status := ExitStatusFor(err)
	w.sess.SetExitStatus(status)
	w.sess.setState(StateStopped)

	event := log.Info()
	if err != nil {
		event = log.Error().Err(err)
	}
	event.Str("exit_status", w.sess.ExitStatus().String()).Msg("worker finished")

	w.mu.Lock()
	w.lastErr = err
	w.mu.Unlock()
	return err
}

// Start launches Run in the background. A worker already running is
// stopped first. Cancelling ctx aborts in-flight requests; use Stop for a
// cooperative shutdown.
func (w *Worker) Start(ctx context.Context) {
	w.cancelRunning()
	w.wg.Wait()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		defer cancel()
		_ = w.Run(runCtx)
	}()
}

// Stop sets the session's stop flag and wakes it. The worker exits at its
// next loop boundary; an outstanding request is not aborted.
func (w *Worker) Stop() {
	w.sess.Stop()
	w.sess.Ping()
}

// Kill cancels the context of a background run and waits for it to exit.
func (w *Worker) Kill() {
	w.cancelRunning()
	w.wg.Wait()
}

func (w *Worker) cancelRunning() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Wait blocks until a background run has exited and returns its error.
func (w *Worker) Wait() error {
	w.wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Ping wakes the session's push wait.
func (w *Worker) Ping() {
	w.sess.Ping()
}

// RequestSync asks a running collection worker to sync once more after the
// current pass.
func (w *Worker) RequestSync() {
	w.sess.RequestSync()
}

// collectionLoop runs sync passes until no user request arrived during the
// last one.
func collectionLoop(syncer *CollectionSyncer) func(ctx context.Context, sess *Session) error {
	return func(ctx context.Context, sess *Session) error {
		for {
			if err := syncer.Sync(ctx, sess); err != nil {
				return err
			}
			if sess.Stopped() || !sess.takeRequest() {
				return nil
			}
			sess.Logger().Debug().Msg("sync requested during pass, running again")
		}
	}
}

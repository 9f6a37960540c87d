package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/models"
)

// SessionState is the current step of a session's state machine.
type SessionState int

const (
	StateIdle SessionState = iota
	StateNegotiatingVersion
	StateSyncingFolders
	StateWaitingForPush
	StateSyncingCollection
	StateFetchingAttachment
	StateStopped
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateNegotiatingVersion:
		return "negotiating_version"
	case StateSyncingFolders:
		return "syncing_folders"
	case StateWaitingForPush:
		return "waiting_for_push"
	case StateSyncingCollection:
		return "syncing_collection"
	case StateFetchingAttachment:
		return "fetching_attachment"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// PingStats is the data of the WaitingForPush state.
type PingStats struct {
	Pushable int       `json:"pushable"`
	Ready    int       `json:"ready"`
	Sent     int       `json:"sent"`
	Changes  int       `json:"changes"`
	LastPing time.Time `json:"last_ping,omitempty"`
}

// SessionSnapshot is a point-in-time copy of a session for status reports.
type SessionSnapshot struct {
	AccountID       int64     `json:"account_id"`
	Mailbox         string    `json:"mailbox"`
	State           string    `json:"state"`
	ProtocolVersion string    `json:"protocol_version"`
	ExitStatus      string    `json:"exit_status"`
	Ping            PingStats `json:"ping"`
}

// Session is the transient state of one running worker.
//
// Stop is a cooperative cancellation token: loops check it at iteration
// boundaries and in-flight requests are never aborted by it. The wake
// channel holds at most one pending notification and interrupts waits only.
type Session struct {
	account  *models.Account
	mailbox  *models.Collection
	identity models.SessionIdentity

	mu              sync.Mutex
	state           SessionState
	ping            PingStats
	protocolVersion string
	exitStatus      models.ExitStatus

	stopOnce       sync.Once
	stop           chan struct{}
	wake           chan struct{}
	requestPending atomic.Bool
	folderStale    atomic.Bool

	logger *logger.Logger
}

// NewSession creates a session for mailbox of account. The account
// mailbox (see [models.AccountMailbox]) selects the FolderSync loop.
func NewSession(
	account *models.Account,
	mailbox *models.Collection,
	identity models.SessionIdentity,
	log *logger.Logger,
) *Session {
	return &Session{
		account:         account,
		mailbox:         mailbox,
		identity:        identity,
		protocolVersion: PinnedProtocolVersion,
		stop:            make(chan struct{}),
		wake:            make(chan struct{}, 1),
		logger:          log.ForSession(account.ID, mailbox.ServerID),
	}
}

func (s *Session) Account() *models.Account {
	return s.account
}

func (s *Session) Mailbox() *models.Collection {
	return s.mailbox
}

func (s *Session) Identity() models.SessionIdentity {
	return s.identity
}

func (s *Session) Logger() *logger.Logger {
	return s.logger
}

func (s *Session) ProtocolVersion() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.protocolVersion
}

// SetProtocolVersion records the version negotiated for this session.
func (s *Session) SetProtocolVersion(version string) {
	s.mu.Lock()
	s.protocolVersion = version
	s.mu.Unlock()
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(state SessionState) {
	s.mu.Lock()
	prev := s.state
	s.state = state
	if state != StateWaitingForPush {
		s.ping = PingStats{}
	}
	s.mu.Unlock()

	if prev != state {
		s.logger.Debug().Str("state", state.String()).Msg("session state changed")
	}
}

func (s *Session) updatePing(fn func(stats *PingStats)) {
	s.mu.Lock()
	fn(&s.ping)
	s.mu.Unlock()
}

func (s *Session) ExitStatus() models.ExitStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exitStatus
}

// SetExitStatus records the exit status. A login failure is sticky.
func (s *Session) SetExitStatus(status models.ExitStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exitStatus == models.ExitLoginFailure {
		return
	}
	s.exitStatus = status
}

// Stop sets the stop flag. It is safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// Stopped reports whether Stop was called.
func (s *Session) Stopped() bool {
	select {
	case <-s.stop:
		return true
	default:
		return false
	}
}

// Done is closed when Stop is called.
func (s *Session) Done() <-chan struct{} {
	return s.stop
}

// Ping wakes a wait in progress, or the next one if none is running.
func (s *Session) Ping() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// RequestSync marks that a user asked for a sync and wakes the session.
func (s *Session) RequestSync() {
	s.requestPending.Store(true)
	s.Ping()
}

// takeRequest reports and clears the pending user request.
func (s *Session) takeRequest() bool {
	return s.requestPending.Swap(false)
}

// MarkFolderListStale records that another session saw a stale folder
// hierarchy and wakes this one. The Ping loop picks it up at its next
// boundary and hands control back to FolderSync.
func (s *Session) MarkFolderListStale() {
	s.folderStale.Store(true)
	s.Ping()
}

func (s *Session) takeFolderListStale() bool {
	return s.folderStale.Swap(false)
}

// Wait blocks for d, or until the session is woken or stopped. It returns
// ctx.Err() if ctx ends first and nil otherwise.
func (s *Session) Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-s.wake:
		s.logger.Debug().Msg("woken")
		return nil
	case <-s.stop:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns a copy of the session for status reporting.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionSnapshot{
		AccountID:       s.account.ID,
		Mailbox:         s.mailbox.ServerID,
		State:           s.state.String(),
		ProtocolVersion: s.protocolVersion,
		ExitStatus:      s.exitStatus.String(),
		Ping:            s.ping,
	}
}

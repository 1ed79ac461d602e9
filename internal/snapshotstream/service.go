// Package snapshotstream periodically refreshes the snapshot of every
// watched wallet and streams the results to the consumer over a channel.
package snapshotstream

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/suitrack/internal/pkg/logger"
	"github.com/gabapcia/suitrack/internal/pkg/x/chflow"
	"github.com/gabapcia/suitrack/internal/walletregistry"
	"github.com/gabapcia/suitrack/internal/walletview"
)

// ErrServiceAlreadyStarted is returned when Start is called on a running
// service.
var ErrServiceAlreadyStarted = errors.New("service already started")

const (
	// snapshotUpdateChannelBufferSize bounds how many refreshed snapshots can
	// wait for a slow consumer before the refresh loop blocks.
	snapshotUpdateChannelBufferSize = 10

	// defaultRefreshInterval is the pause between refresh rounds when the
	// caller does not configure one.
	defaultRefreshInterval = time.Minute
)

// SnapshotUpdate pairs a watched wallet with its freshly aggregated snapshot.
type SnapshotUpdate struct {
	Wallet   walletregistry.WatchedWallet
	Snapshot walletview.WalletSnapshot
}

// Service drives the periodic refresh loop.
type Service interface {
	// Start launches the refresh loop and returns the channel updates are
	// delivered on. One round runs immediately, then every refresh interval.
	// The channel is closed once the loop stops.
	//
	// It fails with ErrServiceAlreadyStarted if the service is running.
	Start(ctx context.Context) (<-chan SnapshotUpdate, error)

	// Close stops the refresh loop and waits for it to finish. Closing a
	// stopped service is a no-op.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	registry  walletregistry.Service
	snapshots walletview.Service

	refreshInterval time.Duration
}

// Compile-time check that *service implements the Service interface.
var _ Service = (*service)(nil)

// refreshAll aggregates one snapshot per watched wallet and delivers each to
// the update channel. A wallet whose snapshot fails is logged and skipped so
// one bad address cannot stall the rest of the round.
func (s *service) refreshAll(ctx context.Context, updateCh chan<- SnapshotUpdate) {
	wallets, err := s.registry.List(ctx)
	if err != nil {
		logger.Error(ctx, "failed to list watched wallets", "error", err)
		return
	}

	for _, wallet := range wallets {
		snapshot, err := s.snapshots.Snapshot(ctx, wallet.Address.String())
		if err != nil {
			logger.Error(ctx, "failed to refresh wallet snapshot",
				"wallet.id", wallet.ID,
				"wallet.address", wallet.Address.Short(),
				"error", err,
			)
			continue
		}

		update := SnapshotUpdate{
			Wallet:   wallet,
			Snapshot: snapshot,
		}
		if ok := chflow.Send(ctx, updateCh, update); !ok {
			return
		}
	}
}

func (s *service) Start(ctx context.Context) (<-chan SnapshotUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var (
		updateCh = make(chan SnapshotUpdate, snapshotUpdateChannelBufferSize)
		done     = make(chan struct{})
	)

	s.closeFunc = func() {
		cancel()
		<-done
	}

	go func() {
		defer close(done)
		defer close(updateCh)

		ticker := time.NewTicker(s.refreshInterval)
		defer ticker.Stop()

		s.refreshAll(ctx, updateCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.refreshAll(ctx, updateCh)
			}
		}
	}()

	s.isStarted = true
	return updateCh, nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

type config struct {
	refreshInterval time.Duration
}

// Option customizes the service during construction.
type Option func(*config)

// WithRefreshInterval overrides the pause between refresh rounds.
func WithRefreshInterval(interval time.Duration) Option {
	return func(c *config) {
		c.refreshInterval = interval
	}
}

// New creates a snapshotstream service over the given wallet registry and
// snapshot aggregator.
func New(registry walletregistry.Service, snapshots walletview.Service, opts ...Option) *service {
	cfg := config{
		refreshInterval: defaultRefreshInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		registry:        registry,
		snapshots:       snapshots,
		refreshInterval: cfg.refreshInterval,
	}
}

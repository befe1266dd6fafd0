package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	domprint "example.com/denine-prints/internal/domain/print"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// View is a point-in-time copy of the catalog state.
type View struct {
	Status   Status
	Prints   []domprint.Print
	Err      error
	LoadedAt time.Time
}

// Service holds the storefront's view of the external catalog. Each fetch is
// tagged with a sequence number and a response older than the one already
// applied is dropped, so overlapping refreshes cannot roll the view back.
type Service struct {
	provider domprint.Provider
	gateway  domprint.Gateway
	timeout  time.Duration
	logger   *zap.Logger
	now      func() time.Time

	mu      sync.RWMutex
	view    View
	issued  uint64
	applied uint64
}

type Option func(*Service)

func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.timeout = d
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(provider domprint.Provider, gateway domprint.Gateway, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		gateway:  gateway,
		timeout:  10 * time.Second,
		logger:   zap.NewNop(),
		now:      time.Now,
		view:     View{Status: StatusLoading},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh fetches the full catalog and applies it unless a newer fetch has
// already been applied. A fetch that fails or times out moves the view to
// StatusFailed under the same rule, keeping the last good prints.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.logger.Debug("catalog refresh started", zap.Uint64("seq", seq))
	prints, err := s.provider.ListPrints(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.applied {
		s.logger.Info("discarding stale catalog response", zap.Uint64("seq", seq), zap.Uint64("applied", s.applied))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}
		return nil
	}
	s.applied = seq

	if err != nil {
		s.logger.Warn("catalog refresh failed", zap.Uint64("seq", seq), zap.Error(err))
		s.view.Status = StatusFailed
		s.view.Err = err
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	s.view = View{
		Status:   StatusReady,
		Prints:   clonePrints(prints),
		LoadedAt: s.now(),
	}
	s.logger.Info("catalog refreshed", zap.Uint64("seq", seq), zap.Int("prints", len(prints)))
	return nil
}

// RefreshAsync starts a refresh in the background. The returned channel
// receives its result once.
func (s *Service) RefreshAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- s.Refresh(ctx)
	}()
	return done
}

func (s *Service) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v := s.view
	v.Prints = clonePrints(s.view.Prints)
	return v
}

// Prints lists the catalog once it is ready.
func (s *Service) Prints() ([]domprint.Print, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readyErr(); err != nil {
		return nil, err
	}
	return clonePrints(s.view.Prints), nil
}

// Print resolves one print. Cart mutations go through here, so nothing can
// be added before the catalog has resolved.
func (s *Service) Print(id string) (domprint.Print, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readyErr(); err != nil {
		return domprint.Print{}, err
	}
	for _, p := range s.view.Prints {
		if p.ID == id {
			return clonePrint(p), nil
		}
	}
	return domprint.Print{}, domprint.ErrPrintNotFound
}

// CreatePrint sends d to the catalog gateway and reloads the whole catalog
// on success. A rejected write leaves the current view untouched.
func (s *Service) CreatePrint(ctx context.Context, d domprint.Draft) (*domprint.Print, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	created, err := s.gateway.Create(ctx, d)
	if err != nil {
		s.logger.Error("create print", zap.String("print_id", d.ID), zap.Error(err))
		return nil, err
	}
	s.refreshAfterWrite(ctx)
	return created, nil
}

func (s *Service) UpdatePrint(ctx context.Context, id string, u domprint.Update) (*domprint.Print, error) {
	if id == "" {
		return nil, domprint.ErrInvalidPrintID
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.gateway.Update(ctx, id, u)
	if err != nil {
		s.logger.Error("update print", zap.String("print_id", id), zap.Error(err))
		return nil, err
	}
	s.refreshAfterWrite(ctx)
	return updated, nil
}

// The write already succeeded upstream; a failed reload shows up in the view.
func (s *Service) refreshAfterWrite(ctx context.Context) {
	_ = s.Refresh(ctx)
}

func (s *Service) readyErr() error {
	switch s.view.Status {
	case StatusReady:
		return nil
	case StatusFailed:
		if len(s.view.Prints) > 0 {
			return nil
		}
		return ErrCatalogUnavailable
	default:
		return ErrCatalogLoading
	}
}

func clonePrints(in []domprint.Print) []domprint.Print {
	if in == nil {
		return nil
	}
	out := make([]domprint.Print, len(in))
	for i, p := range in {
		out[i] = clonePrint(p)
	}
	return out
}

func clonePrint(p domprint.Print) domprint.Print {
	p.Variants = append([]domprint.Variant(nil), p.Variants...)
	return p
}

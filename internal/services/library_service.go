package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nstapp/content-library/internal/contentkey"
	"github.com/nstapp/content-library/internal/library"
	"github.com/nstapp/content-library/internal/models"
	"go.uber.org/zap"
)

type libraryService struct {
	mu       sync.RWMutex
	sessions map[string]*library.Session
	deps     library.Dependencies
	ttl      time.Duration
	now      func() time.Time
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.Logger
}

// NewLibraryService creates a new library session registry.
//
// Sessions idle for longer than ttl are removed by EvictIdle; a zero ttl keeps them until deleted.
func NewLibraryService(deps library.Dependencies, ttl time.Duration, logger *zap.Logger) *libraryService {
	ctx, cancel := context.WithCancel(context.Background())
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = logger
	}

	return &libraryService{
		sessions: make(map[string]*library.Session),
		deps:     deps,
		ttl:      ttl,
		now:      now,
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
	}
}

// Create opens a new library session and renders it for user
func (s *libraryService) Create(ctx context.Context, kind, mode string, user models.User) (models.LibraryView, error) {
	id := uuid.NewString()
	session, err := library.NewSession(s.ctx, id, models.LibraryKind(kind), contentkey.Mode(mode), s.deps)
	if err != nil {
		return models.LibraryView{}, err
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	s.logger.Info("library session created", zap.String("session_id", id), zap.String("kind", kind))
	return session.Render(user, ""), nil
}

// View renders a session for user, filtering chapters by query
func (s *libraryService) View(ctx context.Context, id string, user models.User, query string) (models.LibraryView, error) {
	session, err := s.get(id)
	if err != nil {
		return models.LibraryView{}, err
	}
	return session.Render(user, query), nil
}

// SelectSubject selects a subject in a session
func (s *libraryService) SelectSubject(ctx context.Context, id string, user models.User, subjectID string) (models.LibraryView, error) {
	session, err := s.get(id)
	if err != nil {
		return models.LibraryView{}, err
	}
	return session.SelectSubject(ctx, user, subjectID)
}

// TapChapter taps a chapter in a session
func (s *libraryService) TapChapter(ctx context.Context, id string, user models.User, chapterID string) (models.LibraryView, error) {
	session, err := s.get(id)
	if err != nil {
		return models.LibraryView{}, err
	}
	return session.TapChapter(ctx, user, chapterID)
}

// ConfirmPurchase confirms the pending purchase of a session
func (s *libraryService) ConfirmPurchase(ctx context.Context, id string, user models.User) (models.LibraryView, error) {
	session, err := s.get(id)
	if err != nil {
		return models.LibraryView{}, err
	}
	return session.ConfirmPurchase(ctx, user)
}

// CancelPurchase cancels the pending purchase of a session
func (s *libraryService) CancelPurchase(ctx context.Context, id string, user models.User) (models.LibraryView, error) {
	session, err := s.get(id)
	if err != nil {
		return models.LibraryView{}, err
	}
	return session.CancelPurchase(user)
}

// Answer answers the current quiz question of a session
func (s *libraryService) Answer(ctx context.Context, id string, user models.User, option int) (models.LibraryView, error) {
	session, err := s.get(id)
	if err != nil {
		return models.LibraryView{}, err
	}
	return session.Answer(user, option)
}

// Next advances the quiz of a session
func (s *libraryService) Next(ctx context.Context, id string, user models.User) (models.LibraryView, error) {
	session, err := s.get(id)
	if err != nil {
		return models.LibraryView{}, err
	}
	return session.Next(user)
}

// Back navigates one level back in a session
func (s *libraryService) Back(ctx context.Context, id string, user models.User) (models.LibraryView, error) {
	session, err := s.get(id)
	if err != nil {
		return models.LibraryView{}, err
	}
	return session.Back(user)
}

// Delete closes a session
func (s *libraryService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", models.ErrSessionNotFound, id)
	}
	delete(s.sessions, id)
	return nil
}

// EvictIdle removes sessions idle for longer than the configured ttl and returns how many were removed
func (s *libraryService) EvictIdle() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.RLock()
	sessions := make(map[string]*library.Session, len(s.sessions))
	for id, session := range s.sessions {
		sessions[id] = session
	}
	s.mu.RUnlock()

	// LastActive waits for the session lock, so idleness is checked outside the registry lock
	idle := make([]string, 0)
	for id, session := range sessions {
		if session.LastActive().Before(cutoff) {
			idle = append(idle, id)
		}
	}

	s.mu.Lock()
	evicted := 0
	for _, id := range idle {
		if s.sessions[id] == sessions[id] {
			delete(s.sessions, id)
			evicted++
		}
	}
	s.mu.Unlock()

	if evicted > 0 {
		s.logger.Info("evicted idle library sessions", zap.Int("count", evicted))
	}
	return evicted
}

// Count returns the number of open sessions
func (s *libraryService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close cancels in-flight fetches of all sessions and drops them
func (s *libraryService) Close() {
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*library.Session)
}

func (s *libraryService) get(id string) (*library.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrSessionNotFound, id)
	}
	return session, nil
}

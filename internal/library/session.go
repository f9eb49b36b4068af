package library

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/nstapp/content-library/internal/catalog"
	"github.com/nstapp/content-library/internal/contentkey"
	"github.com/nstapp/content-library/internal/ledger"
	"github.com/nstapp/content-library/internal/models"
	"github.com/nstapp/content-library/internal/purchase"
	"github.com/nstapp/content-library/internal/unlock"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Session is one open library.
//
// All actions are serialized. Asynchronous fetches are spawned through Dependencies.Spawn and
// their results are applied only while the subject (and chapter) they were started for is
// still the active one.
type Session struct {
	mu      sync.Mutex
	ctx     context.Context
	id      string
	deps    Dependencies
	variant variant
	logger  *zap.Logger

	state      models.ViewState
	subject    *models.Subject
	profile    models.Profile
	chapters   []models.Chapter
	records    map[string]chapterRecord
	loading    bool
	generation uint64
	opening    string
	notice     string

	flow    *purchase.Flow
	pending *models.Chapter

	quiz  *quiz
	pdf   *models.PDFDocument
	video *models.VideoContent

	lastActive time.Time
}

// NewSession creates a library session in SUBJECT_SELECT.
//
// ctx bounds the asynchronous fetches of the session. An empty mode selects the library's
// default (FREE for the PDF library).
func NewSession(ctx context.Context, id string, kind models.LibraryKind, mode contentkey.Mode, deps Dependencies) (*Session, error) {
	v, err := newVariant(kind, mode)
	if err != nil {
		return nil, err
	}
	deps = deps.withDefaults()

	return &Session{
		ctx:        ctx,
		id:         id,
		deps:       deps,
		variant:    v,
		logger:     deps.Logger.With(zap.String("session_id", id), zap.String("library", string(kind))),
		state:      models.ViewStateSubjectSelect,
		flow:       purchase.NewFlow(),
		lastActive: deps.Now(),
	}, nil
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// LastActive returns the time of the last action
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Render returns the view for user, with chapters filtered by query when it is not empty
func (s *Session) Render(user models.User, query string) models.LibraryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = s.deps.Now()
	return s.render(user, query)
}

// SelectSubject opens the chapter list of a subject and starts the chapter fetch
func (s *Session) SelectSubject(ctx context.Context, user models.User, subjectID string) (models.LibraryView, error) {
	return s.act(user, func() (func(), error) {
		if s.state != models.ViewStateSubjectSelect {
			return nil, fmt.Errorf("%w: subject already selected", models.ErrInvalidAction)
		}

		profile := user.Profile(s.deps.Defaults)
		subject, ok := catalog.Find(profile.ClassLevel, profile.Stream, subjectID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown subject %q", models.ErrInvalidAction, subjectID)
		}

		s.generation++
		gen := s.generation
		s.subject = &subject
		s.profile = profile
		s.chapters = nil
		s.records = nil
		s.loading = true
		s.state = models.ViewStateChapterList

		return func() {
			s.loadChapters(gen, profile, subject)
		}, nil
	})
}

// TapChapter opens a chapter, or starts a purchase when it is locked for user
func (s *Session) TapChapter(ctx context.Context, user models.User, chapterID string) (models.LibraryView, error) {
	return s.act(user, func() (func(), error) {
		if s.state != models.ViewStateChapterList {
			return nil, fmt.Errorf("%w: no chapter list shown", models.ErrInvalidAction)
		}
		if _, ok := s.flow.Active(); ok {
			return nil, fmt.Errorf("%w: purchase pending", models.ErrInvalidAction)
		}

		chapter, ok := lo.Find(s.chapters, func(c models.Chapter) bool {
			return c.ID == chapterID
		})
		if !ok {
			return nil, fmt.Errorf("%w: unknown chapter %q", models.ErrInvalidAction, chapterID)
		}

		return s.tap(ctx, user, chapter, false)
	})
}

// ConfirmPurchase sends the pending unlock request and, once accepted, opens the chapter.
//
// The ledger call runs without the session lock; while it is in flight the flow is CONFIRMED,
// so no other purchase can be opened or confirmed.
func (s *Session) ConfirmPurchase(ctx context.Context, user models.User) (models.LibraryView, error) {
	s.mu.Lock()
	s.lastActive = s.deps.Now()
	req, err := s.flow.Begin(user.Credits)
	if err != nil {
		s.mu.Unlock()
		return models.LibraryView{}, err
	}
	chapter := s.pending
	s.pending = nil
	gen := s.generation
	s.mu.Unlock()

	unlockErr := s.deps.Unlocker.Unlock(ctx, unlock.Request{
		UserID:    user.ID,
		Cost:      req.Price,
		ContentID: req.ContentID,
	})

	return s.act(user, func() (func(), error) {
		s.flow.Complete()
		if unlockErr != nil {
			s.logger.Error("failed to request unlock", zap.String("content_id", req.ContentID), zap.Error(unlockErr))
			s.notice = NoticeUnlockFailed
			return nil, fmt.Errorf("%w: %v", models.ErrUnlockFailed, unlockErr)
		}

		s.logger.Info("unlock requested", zap.String("content_id", req.ContentID), zap.Int("price", req.Price))
		s.notice = NoticeUnlocked
		if chapter == nil || gen != s.generation || s.state != models.ViewStateChapterList {
			return nil, nil
		}

		return s.tap(ctx, user, *chapter, true)
	})
}

// CancelPurchase discards the pending purchase
func (s *Session) CancelPurchase(user models.User) (models.LibraryView, error) {
	return s.act(user, func() (func(), error) {
		if err := s.flow.Cancel(); err != nil {
			return nil, err
		}
		s.pending = nil
		return nil, nil
	})
}

// Answer selects an option of the current MCQ question
func (s *Session) Answer(user models.User, option int) (models.LibraryView, error) {
	return s.act(user, func() (func(), error) {
		if s.quiz == nil {
			return nil, fmt.Errorf("%w: no quiz in progress", models.ErrInvalidAction)
		}
		return nil, s.quiz.answer(option)
	})
}

// Next advances the MCQ quiz, finishing it after the last question
func (s *Session) Next(user models.User) (models.LibraryView, error) {
	return s.act(user, func() (func(), error) {
		if s.quiz == nil {
			return nil, fmt.Errorf("%w: no quiz in progress", models.ErrInvalidAction)
		}
		return nil, s.quiz.next()
	})
}

// Back pops one navigation level and drops everything owned by the level left.
// With a purchase pending it dismisses the purchase instead.
func (s *Session) Back(user models.User) (models.LibraryView, error) {
	return s.act(user, func() (func(), error) {
		if _, ok := s.flow.Active(); ok {
			s.pending = nil
			return nil, s.flow.Cancel()
		}

		switch s.state {
		case models.ViewStateContentActive:
			s.closeContent()
			s.state = models.ViewStateChapterList
		case models.ViewStateChapterList:
			s.generation++
			s.subject = nil
			s.profile = models.Profile{}
			s.chapters = nil
			s.records = nil
			s.loading = false
			s.opening = ""
			s.flow.Reset()
			s.pending = nil
			s.state = models.ViewStateSubjectSelect
		default:
			return nil, fmt.Errorf("%w: already at subject selection", models.ErrInvalidAction)
		}
		return nil, nil
	})
}

// act runs fn under the session lock, spawns the job it returns and renders the result
func (s *Session) act(user models.User, fn func() (func(), error)) (models.LibraryView, error) {
	s.mu.Lock()
	s.lastActive = s.deps.Now()
	job, err := fn()
	s.mu.Unlock()

	if err != nil {
		return models.LibraryView{}, err
	}
	if job != nil {
		s.deps.Spawn(job)
	}
	return s.Render(user, ""), nil
}

func (s *Session) tap(ctx context.Context, user models.User, chapter models.Chapter, force bool) (func(), error) {
	rec := s.records[chapter.ID]
	if notice := s.variant.unavailable(rec); notice != "" {
		s.notice = notice
		return nil, nil
	}

	req := models.PurchaseRequest{
		Title:     s.variant.purchaseTitle(chapter.Title),
		Price:     rec.price(),
		ContentID: contentkey.DeriveContentID(chapter.ID, s.variant.mode()),
	}
	if !force && ledger.IsPriceLocked(req.Price, user, req.ContentID) {
		if err := s.flow.Request(req); err != nil {
			return nil, err
		}
		// a video still loading for another chapter must not open behind the prompt
		s.generation++
		s.opening = ""
		s.loading = false
		s.pending = &chapter
		return nil, nil
	}

	s.closeContent()
	return s.variant.open(ctx, s, chapter), nil
}

func (s *Session) loadChapters(gen uint64, profile models.Profile, subject models.Subject) {
	chapters, err := s.deps.Chapters.FetchChapters(s.ctx, profile, subject, s.deps.Language)

	var records map[string]chapterRecord
	if err == nil {
		records = make(map[string]chapterRecord, len(chapters))
		for _, c := range chapters {
			records[c.ID] = s.readRecord(s.ctx, recordKey(profile, subject, c.ID))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.relevant(gen, subject.ID) {
		s.logger.Debug("discarding stale chapter list", zap.String("subject", subject.Name))
		return
	}
	s.loading = false

	if err != nil {
		s.logger.Warn("failed to load chapters", zap.String("subject", subject.Name), zap.Error(err))
		s.notice = NoticeChaptersError
		return
	}

	s.chapters = chapters
	s.records = records
}

// relevant reports whether an async result started at generation gen for subjectID may be applied
func (s *Session) relevant(gen uint64, subjectID string) bool {
	return gen == s.generation && s.subject != nil && s.subject.ID == subjectID
}

func (s *Session) readRecord(ctx context.Context, key string) chapterRecord {
	record, err := s.deps.Content.Get(ctx, key)
	return chapterRecord{record: record, err: err}
}

func (s *Session) recordKey(chapterID string) string {
	return recordKey(s.profile, *s.subject, chapterID)
}

func recordKey(profile models.Profile, subject models.Subject, chapterID string) string {
	return contentkey.DeriveKey(profile.Board, profile.ClassLevel, profile.Stream, subject.Name, chapterID)
}

func (s *Session) closeContent() {
	s.quiz = nil
	s.pdf = nil
	s.video = nil
}

func (s *Session) render(user models.User, query string) models.LibraryView {
	view := models.LibraryView{
		SessionID: s.id,
		Kind:      s.variant.kind(),
		Mode:      s.variant.mode(),
		Heading:   s.variant.heading(),
		State:     s.state,
		Loading:   s.loading,
		Notice:    s.notice,
	}
	s.notice = ""

	if s.state == models.ViewStateSubjectSelect {
		profile := user.Profile(s.deps.Defaults)
		view.Subjects = catalog.Subjects(profile.ClassLevel, profile.Stream)
		return view
	}

	subject := *s.subject
	view.Subject = &subject
	view.Chapters = s.entries(user, query)
	view.Purchase = s.flow.Prompt(user.Credits)

	if s.state == models.ViewStateContentActive {
		if s.quiz != nil {
			view.Quiz = s.quiz.view()
		}
		if s.pdf != nil {
			pdf := *s.pdf
			view.PDF = &pdf
		}
		if s.video != nil {
			video := *s.video
			view.Video = &video
		}
	}
	return view
}

func (s *Session) entries(user models.User, query string) []models.ChapterEntry {
	entries := make([]models.ChapterEntry, 0, len(s.chapters))
	for i, chapter := range s.chapters {
		if query != "" && !fuzzy.MatchFold(query, chapter.Title) {
			continue
		}
		entries = append(entries, s.entry(i, chapter, user))
	}
	return entries
}

func (s *Session) entry(i int, chapter models.Chapter, user models.User) models.ChapterEntry {
	rec := s.records[chapter.ID]
	entry := models.ChapterEntry{
		Number:    i + 1,
		ID:        chapter.ID,
		Title:     chapter.Title,
		Price:     rec.price(),
		Available: s.variant.unavailable(rec) == "",
	}
	entry.Locked = ledger.IsPriceLocked(entry.Price, user, contentkey.DeriveContentID(chapter.ID, s.variant.mode()))

	switch {
	case !entry.Available:
		entry.Status = models.ChapterStatusComingSoon
	case entry.Locked:
		entry.Status = models.ChapterStatusLocked
	default:
		entry.Status = models.ChapterStatusUnlocked
	}
	entry.Label = s.variant.label(entry)
	return entry
}

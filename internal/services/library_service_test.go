package services

import (
	"context"
	"testing"
	"time"

	"github.com/nstapp/content-library/internal/library"
	"github.com/nstapp/content-library/internal/models"
	"github.com/nstapp/content-library/internal/repositories"
	"github.com/nstapp/content-library/internal/unlock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockChapterFetcher is a mock implementation of library.ChapterFetcher
type mockChapterFetcher struct {
	chapters []models.Chapter
	err      error
}

func (m *mockChapterFetcher) FetchChapters(ctx context.Context, profile models.Profile, subject models.Subject, language string) ([]models.Chapter, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.chapters, nil
}

// mockDocumentFetcher is a mock implementation of library.DocumentFetcher
type mockDocumentFetcher struct {
	record *models.ContentRecord
}

func (m *mockDocumentFetcher) GetChapterData(ctx context.Context, key string) (*models.ContentRecord, error) {
	return m.record, nil
}

// mockUnlocker is a mock implementation of library.Unlocker.
// With release set, Unlock signals entered and waits until release is closed.
type mockUnlocker struct {
	requests []unlock.Request
	entered  chan struct{}
	release  chan struct{}
}

func (m *mockUnlocker) Unlock(ctx context.Context, req unlock.Request) error {
	m.requests = append(m.requests, req)
	if m.release != nil {
		close(m.entered)
		<-m.release
	}
	return nil
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func setupLibraryService(t *testing.T, ttl time.Duration) (*libraryService, *testClock, *mockUnlocker) {
	t.Helper()

	clock := &testClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	store := repositories.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "nst_content_CBSE_10_Mathematics_m1",
		`{"price":30,"manualMcqData":[{"question":"2+2?","options":["3","4"],"correctAnswer":1}]}`))

	unlocker := &mockUnlocker{}
	deps := library.Dependencies{
		Chapters:  &mockChapterFetcher{chapters: []models.Chapter{{ID: "m1", Title: "Real Numbers"}}},
		Documents: &mockDocumentFetcher{},
		Content:   repositories.NewContentRepository(store, zap.NewNop()),
		Unlocker:  unlocker,
		Defaults:  models.ProfileDefaults{Board: "CBSE", ClassLevel: "10", Stream: "Science"},
		Spawn:     func(f func()) { f() },
		Now:       clock.Now,
	}

	svc := NewLibraryService(deps, ttl, zap.NewNop())
	t.Cleanup(svc.Close)
	return svc, clock, unlocker
}

func TestLibraryService_Create(t *testing.T) {
	tests := []struct {
		name          string
		kind          string
		mode          string
		expectedError error
	}{
		{name: "mcq", kind: "mcq"},
		{name: "premium pdf", kind: "pdf", mode: "PREMIUM"},
		{name: "video", kind: "video"},
		{name: "unknown kind", kind: "audio", expectedError: models.ErrInvalidLibrary},
		{name: "bad pdf mode", kind: "pdf", mode: "MCQ", expectedError: models.ErrInvalidLibrary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := setupLibraryService(t, time.Hour)

			view, err := svc.Create(context.Background(), tt.kind, tt.mode, models.User{})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Equal(t, 0, svc.Count())
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, view.SessionID)
			assert.Equal(t, models.ViewStateSubjectSelect, view.State)
			assert.Equal(t, 1, svc.Count())
		})
	}
}

func TestLibraryService_UnknownSession(t *testing.T) {
	svc, _, _ := setupLibraryService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.View(ctx, "missing", models.User{}, "")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	_, err = svc.SelectSubject(ctx, "missing", models.User{}, "math")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	_, err = svc.TapChapter(ctx, "missing", models.User{}, "m1")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	_, err = svc.ConfirmPurchase(ctx, "missing", models.User{})
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	_, err = svc.CancelPurchase(ctx, "missing", models.User{})
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	_, err = svc.Answer(ctx, "missing", models.User{}, 0)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	_, err = svc.Next(ctx, "missing", models.User{})
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	_, err = svc.Back(ctx, "missing", models.User{})
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), models.ErrSessionNotFound)
}

func TestLibraryService_PurchaseAndPractice(t *testing.T) {
	svc, _, unlocker := setupLibraryService(t, time.Hour)
	ctx := context.Background()
	user := models.User{ID: "u1", Credits: 100}

	view, err := svc.Create(ctx, "mcq", "", user)
	require.NoError(t, err)
	id := view.SessionID

	view, err = svc.SelectSubject(ctx, id, user, "math")
	require.NoError(t, err)
	require.Len(t, view.Chapters, 1)
	assert.True(t, view.Chapters[0].Locked)

	view, err = svc.TapChapter(ctx, id, user, "m1")
	require.NoError(t, err)
	require.NotNil(t, view.Purchase)

	view, err = svc.ConfirmPurchase(ctx, id, user)
	require.NoError(t, err)
	assert.Equal(t, []unlock.Request{{UserID: "u1", Cost: 30, ContentID: "m1_MCQ"}}, unlocker.requests)
	require.NotNil(t, view.Quiz)

	view, err = svc.Answer(ctx, id, user, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Quiz.Score)

	view, err = svc.Next(ctx, id, user)
	require.NoError(t, err)
	assert.True(t, view.Quiz.Finished)

	view, err = svc.Back(ctx, id, user)
	require.NoError(t, err)
	assert.Equal(t, models.ViewStateChapterList, view.State)

	view, err = svc.View(ctx, id, models.User{PurchasedContent: []string{"m1_MCQ"}}, "")
	require.NoError(t, err)
	assert.False(t, view.Chapters[0].Locked)

	require.NoError(t, svc.Delete(ctx, id))
	assert.Equal(t, 0, svc.Count())
}

func TestLibraryService_CancelPurchase(t *testing.T) {
	svc, _, unlocker := setupLibraryService(t, time.Hour)
	ctx := context.Background()
	user := models.User{Credits: 10}

	view, err := svc.Create(ctx, "mcq", "", user)
	require.NoError(t, err)
	_, err = svc.SelectSubject(ctx, view.SessionID, user, "math")
	require.NoError(t, err)
	_, err = svc.TapChapter(ctx, view.SessionID, user, "m1")
	require.NoError(t, err)

	_, err = svc.ConfirmPurchase(ctx, view.SessionID, user)
	assert.ErrorIs(t, err, models.ErrInsufficientCredits)

	view, err = svc.CancelPurchase(ctx, view.SessionID, user)
	require.NoError(t, err)
	assert.Nil(t, view.Purchase)
	assert.Empty(t, unlocker.requests)
}

func TestLibraryService_EvictIdle(t *testing.T) {
	t.Run("evicts sessions past ttl", func(t *testing.T) {
		svc, clock, _ := setupLibraryService(t, time.Hour)
		ctx := context.Background()

		stale, err := svc.Create(ctx, "mcq", "", models.User{})
		require.NoError(t, err)
		clock.now = clock.now.Add(50 * time.Minute)
		fresh, err := svc.Create(ctx, "video", "", models.User{})
		require.NoError(t, err)
		clock.now = clock.now.Add(20 * time.Minute)

		assert.Equal(t, 1, svc.EvictIdle())

		_, err = svc.View(ctx, stale.SessionID, models.User{}, "")
		assert.ErrorIs(t, err, models.ErrSessionNotFound)
		_, err = svc.View(ctx, fresh.SessionID, models.User{}, "")
		assert.NoError(t, err)
	})

	t.Run("zero ttl keeps sessions", func(t *testing.T) {
		svc, clock, _ := setupLibraryService(t, 0)

		_, err := svc.Create(context.Background(), "mcq", "", models.User{})
		require.NoError(t, err)
		clock.now = clock.now.Add(48 * time.Hour)

		assert.Equal(t, 0, svc.EvictIdle())
		assert.Equal(t, 1, svc.Count())
	})
}

func TestLibraryService_PendingUnlockDoesNotBlockOtherSessions(t *testing.T) {
	svc, _, unlocker := setupLibraryService(t, time.Hour)
	unlocker.entered = make(chan struct{})
	unlocker.release = make(chan struct{})
	ctx := context.Background()
	user := models.User{ID: "u1", Credits: 100}

	buying, err := svc.Create(ctx, "mcq", "", user)
	require.NoError(t, err)
	other, err := svc.Create(ctx, "pdf", "", user)
	require.NoError(t, err)
	_, err = svc.SelectSubject(ctx, buying.SessionID, user, "math")
	require.NoError(t, err)
	_, err = svc.TapChapter(ctx, buying.SessionID, user, "m1")
	require.NoError(t, err)

	confirmed := make(chan error, 1)
	go func() {
		_, err := svc.ConfirmPurchase(ctx, buying.SessionID, user)
		confirmed <- err
	}()
	<-unlocker.entered

	swept := make(chan int, 1)
	go func() { swept <- svc.EvictIdle() }()
	viewed := make(chan error, 1)
	go func() {
		_, err := svc.View(ctx, other.SessionID, user, "")
		viewed <- err
	}()

	select {
	case err := <-viewed:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("view of another session blocked by a pending unlock")
	}
	select {
	case evicted := <-swept:
		assert.Equal(t, 0, evicted)
	case <-time.After(time.Second):
		t.Fatal("idle sweep blocked by a pending unlock")
	}

	close(unlocker.release)
	require.NoError(t, <-confirmed)
	assert.Len(t, unlocker.requests, 1)
	assert.Equal(t, 2, svc.Count())
}

package library

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nstapp/content-library/internal/contentkey"
	"github.com/nstapp/content-library/internal/models"
	"go.uber.org/zap"
)

type videoVariant struct{}

func (videoVariant) kind() models.LibraryKind { return models.LibraryKindVideo }

func (videoVariant) mode() contentkey.Mode { return contentkey.ModeVideo }

func (videoVariant) heading() string { return "Video Library" }

func (videoVariant) purchaseTitle(chapterTitle string) string {
	return chapterTitle + " (Video Class)"
}

// unavailable only rejects corrupted local records: whether a video exists is decided by the
// remote document read on play
func (videoVariant) unavailable(rec chapterRecord) string {
	if rec.invalid() {
		return NoticeComingSoon
	}
	return ""
}

func (videoVariant) label(entry models.ChapterEntry) string {
	switch {
	case !entry.Available:
		return comingSoonLabel
	case entry.Locked:
		return "Tap to Unlock"
	}
	return "Watch Video Lecture"
}

func (videoVariant) open(ctx context.Context, s *Session, chapter models.Chapter) func() {
	s.generation++
	gen := s.generation
	subject := *s.subject
	key := s.recordKey(chapter.ID)

	s.loading = true
	s.opening = chapter.ID

	return func() {
		s.loadVideo(gen, subject, chapter, key)
	}
}

func (s *Session) loadVideo(gen uint64, subject models.Subject, chapter models.Chapter, key string) {
	record, err := s.deps.Documents.GetChapterData(s.ctx, key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.relevant(gen, subject.ID) || s.opening != chapter.ID {
		s.logger.Debug("discarding stale video content", zap.String("chapter_id", chapter.ID))
		return
	}
	s.loading = false
	s.opening = ""

	if err != nil {
		s.logger.Error("failed to fetch video content", zap.String("key", key), zap.Error(err))
		s.notice = NoticeVideoError
		return
	}

	s.video = newVideoContent(uuid.NewString(), chapter, subject, record, s.deps.Now())
	s.state = models.ViewStateContentActive
}

// newVideoContent builds the player payload, or a coming-soon placeholder when record has no video
func newVideoContent(id string, chapter models.Chapter, subject models.Subject, record *models.ContentRecord, now time.Time) *models.VideoContent {
	content := &models.VideoContent{
		ID:          id,
		ChapterID:   chapter.ID,
		Title:       chapter.Title,
		Subtitle:    "Video Lecture",
		SubjectName: subject.Name,
		CreatedAt:   now,
	}
	if !record.HasVideo() {
		content.ComingSoon = true
		return content
	}

	content.URL = record.VideoURL()
	content.Playlist = append([]models.PlaylistItem(nil), record.VideoPlaylist...)
	return content
}

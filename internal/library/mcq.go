package library

import (
	"context"
	"fmt"

	"github.com/nstapp/content-library/internal/contentkey"
	"github.com/nstapp/content-library/internal/models"
)

type mcqVariant struct{}

func (mcqVariant) kind() models.LibraryKind { return models.LibraryKindMCQ }

func (mcqVariant) mode() contentkey.Mode { return contentkey.ModeMCQ }

func (mcqVariant) heading() string { return "MCQ Practice" }

func (mcqVariant) purchaseTitle(chapterTitle string) string {
	return chapterTitle + " (MCQ Practice)"
}

func (mcqVariant) unavailable(rec chapterRecord) string {
	switch {
	case rec.invalid():
		return NoticeMCQError
	case rec.record == nil:
		return NoticeNoContent
	case len(rec.record.ManualMcqData) == 0:
		return NoticeNoMCQs
	}
	return ""
}

func (mcqVariant) label(entry models.ChapterEntry) string {
	switch {
	case !entry.Available:
		return comingSoonLabel
	case entry.Locked:
		return fmt.Sprintf("%d Coins", entry.Price)
	}
	return "Start Practice"
}

// open re-reads the question set so edits made since the chapter list was loaded are picked up
func (v mcqVariant) open(ctx context.Context, s *Session, chapter models.Chapter) func() {
	rec := s.readRecord(ctx, s.recordKey(chapter.ID))
	if notice := v.unavailable(rec); notice != "" {
		s.notice = notice
		return nil
	}

	s.quiz = newQuiz(chapter, rec.record.ManualMcqData)
	s.state = models.ViewStateContentActive
	return nil
}

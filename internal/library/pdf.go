package library

import (
	"context"
	"fmt"

	"github.com/nstapp/content-library/internal/contentkey"
	"github.com/nstapp/content-library/internal/models"
)

type pdfVariant struct {
	pdfMode contentkey.Mode
}

func (pdfVariant) kind() models.LibraryKind { return models.LibraryKindPDF }

func (v pdfVariant) mode() contentkey.Mode { return v.pdfMode }

func (v pdfVariant) heading() string {
	switch v.pdfMode {
	case contentkey.ModePremium:
		return "Premium PDFs"
	case contentkey.ModeUltra:
		return "Ultra PDF Collection"
	}
	return "Free Notes"
}

func (v pdfVariant) purchaseTitle(chapterTitle string) string {
	switch v.pdfMode {
	case contentkey.ModePremium:
		return chapterTitle + " (Premium PDF)"
	case contentkey.ModeUltra:
		return chapterTitle + " (Ultra PDF)"
	}
	return chapterTitle + " (Notes)"
}

func (v pdfVariant) unavailable(rec chapterRecord) string {
	if rec.record.PDFLink(v.pdfMode) == "" {
		return NoticeComingSoon
	}
	return ""
}

func (pdfVariant) label(entry models.ChapterEntry) string {
	switch {
	case !entry.Available:
		return comingSoonLabel
	case entry.Locked:
		return fmt.Sprintf("Unlock for %d Coins", entry.Price)
	}
	return "Tap to view PDF"
}

func (v pdfVariant) open(ctx context.Context, s *Session, chapter models.Chapter) func() {
	rec := s.readRecord(ctx, s.recordKey(chapter.ID))
	link := rec.record.PDFLink(v.pdfMode)
	if link == "" {
		s.notice = NoticeComingSoon
		return nil
	}

	s.pdf = &models.PDFDocument{
		ChapterID: chapter.ID,
		Title:     chapter.Title,
		URL:       link,
	}
	s.state = models.ViewStateContentActive
	return nil
}

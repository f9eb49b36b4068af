package library

import (
	"context"
	"errors"
	"fmt"

	"github.com/nstapp/content-library/internal/contentkey"
	"github.com/nstapp/content-library/internal/models"
)

// chapterRecord is the outcome of reading one chapter's content record
type chapterRecord struct {
	record *models.ContentRecord
	err    error
}

func (r chapterRecord) price() int {
	if r.record == nil {
		return 0
	}
	return r.record.Price
}

func (r chapterRecord) invalid() bool {
	return errors.Is(r.err, models.ErrContentInvalid)
}

// variant is the library specific part of a session
type variant interface {
	kind() models.LibraryKind
	mode() contentkey.Mode
	heading() string
	purchaseTitle(chapterTitle string) string
	// unavailable returns the notice shown when the chapter cannot be opened, or "" if it can
	unavailable(rec chapterRecord) string
	label(entry models.ChapterEntry) string
	// open resolves the chapter payload. Called with the session lock held; a returned job
	// is spawned after the lock is released.
	open(ctx context.Context, s *Session, chapter models.Chapter) func()
}

func newVariant(kind models.LibraryKind, mode contentkey.Mode) (variant, error) {
	switch kind {
	case models.LibraryKindMCQ:
		if mode != "" && mode != contentkey.ModeMCQ {
			return nil, fmt.Errorf("%w: mode %q for %s library", models.ErrInvalidLibrary, mode, kind)
		}
		return mcqVariant{}, nil
	case models.LibraryKindPDF:
		if mode == "" {
			mode = contentkey.ModeFree
		}
		if !mode.IsPDF() {
			return nil, fmt.Errorf("%w: mode %q for %s library", models.ErrInvalidLibrary, mode, kind)
		}
		return pdfVariant{pdfMode: mode}, nil
	case models.LibraryKindVideo:
		if mode != "" && mode != contentkey.ModeVideo {
			return nil, fmt.Errorf("%w: mode %q for %s library", models.ErrInvalidLibrary, mode, kind)
		}
		return videoVariant{}, nil
	}
	return nil, fmt.Errorf("%w: kind %q", models.ErrInvalidLibrary, kind)
}

const comingSoonLabel = "Coming Soon"

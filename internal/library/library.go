// Package library implements the MCQ, PDF and video library sessions.
//
// A session walks SUBJECT_SELECT -> CHAPTER_LIST -> CONTENT_ACTIVE and puts a purchase flow in
// front of any locked chapter. Sessions never keep purchase state of their own: every action
// receives the host's current user and lock indicators are recomputed from it.
package library

import (
	"context"
	"time"

	"github.com/nstapp/content-library/internal/models"
	"github.com/nstapp/content-library/internal/unlock"
	"go.uber.org/zap"
)

// ChapterFetcher is the interface that wraps the chapter catalog fetch.
type ChapterFetcher interface {
	// Method FetchChapters retrieve the ordered chapter list of "subject" for a curriculum profile.
	//
	// Any error is logged by the session and rendered as an empty chapter list.
	FetchChapters(ctx context.Context, profile models.Profile, subject models.Subject, language string) ([]models.Chapter, error)
}

// DocumentFetcher is the interface that wraps the remote chapter document read used by video playback.
type DocumentFetcher interface {
	// Method GetChapterData retrieve the remote content record stored under "key".
	//
	// A nil record with a nil error means nothing is published for the chapter.
	GetChapterData(ctx context.Context, key string) (*models.ContentRecord, error)
}

// ContentReader is the interface that wraps typed access to the local content store.
type ContentReader interface {
	// Method Get retrieve the content record stored under "key".
	//
	// models.ErrContentNotFound and models.ErrContentInvalid are both treated as "no record".
	Get(ctx context.Context, key string) (*models.ContentRecord, error)
}

// Unlocker is the interface that wraps delivery of unlock requests to the credit ledger.
type Unlocker interface {
	// Method Unlock hand over a request to debit "req.Cost" credits and grant "req.ContentID".
	//
	// A nil error means the request was accepted.
	Unlock(ctx context.Context, req unlock.Request) error
}

// Notices shown to the user. A notice is rendered once.
const (
	NoticeNoContent     = "No content data found."
	NoticeNoMCQs        = "No MCQs added for this chapter yet."
	NoticeMCQError      = "Error loading MCQ data."
	NoticeComingSoon    = "Coming soon"
	NoticeVideoError    = "Unable to load video content."
	NoticeChaptersError = "Unable to load chapters."
	NoticeUnlocked      = "Content unlocked."
	NoticeUnlockFailed  = "Unlock failed. Please try again."
)

// Dependencies are the collaborators shared by all sessions.
//
// Spawn runs asynchronous fetches and defaults to starting a goroutine. Now defaults to time.Now.
type Dependencies struct {
	Chapters  ChapterFetcher
	Documents DocumentFetcher
	Content   ContentReader
	Unlocker  Unlocker
	Defaults  models.ProfileDefaults
	Language  string
	Logger    *zap.Logger
	Spawn     func(func())
	Now       func() time.Time
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Spawn == nil {
		d.Spawn = func(f func()) { go f() }
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Language == "" {
		d.Language = "English"
	}
	return d
}

package models

import (
	"time"

	"github.com/nstapp/content-library/internal/contentkey"
)

// LibraryKind identifies one of the content libraries
type LibraryKind string

const (
	LibraryKindMCQ   LibraryKind = "mcq"
	LibraryKindPDF   LibraryKind = "pdf"
	LibraryKindVideo LibraryKind = "video"
)

// ViewState is the navigation level of a library session
type ViewState string

const (
	ViewStateSubjectSelect ViewState = "SUBJECT_SELECT"
	ViewStateChapterList   ViewState = "CHAPTER_LIST"
	ViewStateContentActive ViewState = "CONTENT_ACTIVE"
)

// ChapterStatus describes how a chapter row is presented
type ChapterStatus string

const (
	ChapterStatusUnlocked   ChapterStatus = "unlocked"
	ChapterStatusLocked     ChapterStatus = "locked"
	ChapterStatusComingSoon ChapterStatus = "coming_soon"
)

// LibraryView is a render of a library session for one user
type LibraryView struct {
	SessionID string          `json:"sessionId"`
	Kind      LibraryKind     `json:"kind"`
	Mode      contentkey.Mode `json:"mode"`
	Heading   string          `json:"heading"`
	State     ViewState       `json:"state"`
	Loading   bool            `json:"loading"`
	Notice    string          `json:"notice,omitempty"`
	Subjects  []Subject       `json:"subjects,omitempty"`
	Subject   *Subject        `json:"subject,omitempty"`
	Chapters  []ChapterEntry  `json:"chapters,omitempty"`
	Purchase  *PurchasePrompt `json:"purchase,omitempty"`
	Quiz      *QuizView       `json:"quiz,omitempty"`
	PDF       *PDFDocument    `json:"pdf,omitempty"`
	Video     *VideoContent   `json:"video,omitempty"`
}

// ChapterEntry is one chapter row with its lock indicator
type ChapterEntry struct {
	Number    int           `json:"number"`
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Price     int           `json:"price"`
	Locked    bool          `json:"locked"`
	Available bool          `json:"available"`
	Status    ChapterStatus `json:"status"`
	Label     string        `json:"label"`
}

// QuizView is the rendered MCQ practice state
type QuizView struct {
	Index          int      `json:"index"`
	Total          int      `json:"total"`
	Score          int      `json:"score"`
	Finished       bool     `json:"finished"`
	Question       string   `json:"question,omitempty"`
	Options        []string `json:"options,omitempty"`
	Answered       bool     `json:"answered"`
	SelectedOption *int     `json:"selectedOption,omitempty"`
	CorrectAnswer  *int     `json:"correctAnswer,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
	NextEnabled    bool     `json:"nextEnabled"`
	NextLabel      string   `json:"nextLabel,omitempty"`
}

// PDFDocument is an opened PDF
type PDFDocument struct {
	ChapterID string `json:"chapterId"`
	Title     string `json:"title"`
	URL       string `json:"url"`
}

// VideoContent is an opened video lecture, or a coming-soon placeholder
type VideoContent struct {
	ID          string         `json:"id"`
	ChapterID   string         `json:"chapterId"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle"`
	URL         string         `json:"url"`
	Playlist    []PlaylistItem `json:"playlist,omitempty"`
	SubjectName string         `json:"subjectName"`
	ComingSoon  bool           `json:"comingSoon"`
	CreatedAt   time.Time      `json:"createdAt"`
}

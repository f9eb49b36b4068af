package models

import "github.com/nstapp/content-library/internal/contentkey"

// ContentRecord is the stored content bundle of one chapter.
//
// Price is shared by all delivery modes of the chapter; a zero price means free.
type ContentRecord struct {
	Price            int            `json:"price" validate:"min=0"`
	ManualMcqData    []MCQItem      `json:"manualMcqData,omitempty" validate:"omitempty,dive"`
	FreeLink         string         `json:"freeLink,omitempty"`
	PremiumLink      string         `json:"premiumLink,omitempty"`
	UltraLink        string         `json:"ultraLink,omitempty"`
	FreeVideoLink    string         `json:"freeVideoLink,omitempty"`
	PremiumVideoLink string         `json:"premiumVideoLink,omitempty"`
	VideoPlaylist    []PlaylistItem `json:"videoPlaylist,omitempty" validate:"omitempty,dive"`
}

// MCQItem is a single multiple-choice question. CorrectAnswer indexes into Options.
type MCQItem struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"min=1"`
	CorrectAnswer int      `json:"correctAnswer" validate:"min=0"`
	Explanation   string   `json:"explanation,omitempty"`
}

// PlaylistItem is one entry of a chapter video playlist
type PlaylistItem struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url" validate:"required"`
}

// PDFLink returns the link stored for the given PDF mode, or an empty string
func (r *ContentRecord) PDFLink(mode contentkey.Mode) string {
	if r == nil {
		return ""
	}
	switch mode {
	case contentkey.ModeFree:
		return r.FreeLink
	case contentkey.ModePremium:
		return r.PremiumLink
	case contentkey.ModeUltra:
		return r.UltraLink
	}
	return ""
}

// HasVideo reports whether the record carries any playable video
func (r *ContentRecord) HasVideo() bool {
	if r == nil {
		return false
	}
	return len(r.VideoPlaylist) > 0 || r.FreeVideoLink != "" || r.PremiumVideoLink != ""
}

// VideoURL returns the premium video link when present, otherwise the free one
func (r *ContentRecord) VideoURL() string {
	if r == nil {
		return ""
	}
	if r.PremiumVideoLink != "" {
		return r.PremiumVideoLink
	}
	return r.FreeVideoLink
}

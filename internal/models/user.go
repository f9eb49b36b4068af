package models

// User represents the learner as supplied by the hosting application.
//
// The library never mutates a User: it renders from whatever copy the host sends with each request.
type User struct {
	ID               string   `json:"id,omitempty"`
	Name             string   `json:"name,omitempty"`
	Board            string   `json:"board,omitempty"`
	ClassLevel       string   `json:"classLevel,omitempty"`
	Stream           string   `json:"stream,omitempty"`
	Credits          int      `json:"credits" validate:"min=0"`
	PurchasedContent []string `json:"purchasedContent,omitempty"`
}

// Profile holds the curriculum coordinates used for chapter fetches and key derivation
type Profile struct {
	Board      string `json:"board"`
	ClassLevel string `json:"classLevel"`
	Stream     string `json:"stream"`
}

// ProfileDefaults holds the values used when a user leaves board, class or stream empty
type ProfileDefaults struct {
	Board      string
	ClassLevel string
	Stream     string
}

// Profile resolves the user's curriculum coordinates, falling back to defaults for empty fields
func (u User) Profile(defaults ProfileDefaults) Profile {
	p := Profile{
		Board:      u.Board,
		ClassLevel: u.ClassLevel,
		Stream:     u.Stream,
	}
	if p.Board == "" {
		p.Board = defaults.Board
	}
	if p.ClassLevel == "" {
		p.ClassLevel = defaults.ClassLevel
	}
	if p.Stream == "" {
		p.Stream = defaults.Stream
	}
	return p
}

package models

// Subject represents a curriculum subject shown on the subject selection screen
type Subject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Chapter represents a curriculum unit within a subject
type Chapter struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

package models

// PurchaseRequest is the pending unlock captured when a locked chapter is tapped.
// It exists only until the purchase prompt is confirmed or cancelled.
type PurchaseRequest struct {
	Title     string `json:"title"`
	Price     int    `json:"price"`
	ContentID string `json:"contentId"`
}

// PurchasePrompt is the rendered purchase dialog for a given balance
type PurchasePrompt struct {
	Title          string `json:"title"`
	Price          int    `json:"price"`
	ContentID      string `json:"contentId"`
	Balance        int    `json:"balance"`
	CanAfford      bool   `json:"canAfford"`
	ConfirmEnabled bool   `json:"confirmEnabled"`
	Shortfall      int    `json:"shortfall,omitempty"`
	Message        string `json:"message,omitempty"`
}

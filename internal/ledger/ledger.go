// Package ledger decides lock state and affordability of purchasable content.
package ledger

import (
	"github.com/nstapp/content-library/internal/models"
	"github.com/samber/lo"
)

// IsLocked reports whether content stays hidden behind a purchase.
//
// A missing record or a non-positive price is never locked; otherwise the content is locked
// until contentID appears in the user's purchased set.
func IsLocked(record *models.ContentRecord, user models.User, contentID string) bool {
	if record == nil {
		return false
	}
	return IsPriceLocked(record.Price, user, contentID)
}

// IsPriceLocked is IsLocked for callers that only kept the record price
func IsPriceLocked(price int, user models.User, contentID string) bool {
	if price <= 0 {
		return false
	}
	return !IsPurchased(user, contentID)
}

// IsPurchased reports whether contentID is in the user's purchased set
func IsPurchased(user models.User, contentID string) bool {
	return lo.Contains(user.PurchasedContent, contentID)
}

// CanAfford reports whether balance covers price
func CanAfford(balance, price int) bool {
	return balance >= price
}

// Shortfall returns the credits missing to pay price, or 0 when affordable
func Shortfall(balance, price int) int {
	if CanAfford(balance, price) {
		return 0
	}
	return price - balance
}

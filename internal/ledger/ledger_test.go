package ledger

import (
	"testing"

	"github.com/nstapp/content-library/internal/contentkey"
	"github.com/nstapp/content-library/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestIsLocked(t *testing.T) {
	tests := []struct {
		name      string
		record    *models.ContentRecord
		user      models.User
		contentID string
		expected  bool
	}{
		{
			name:      "nil record is never locked",
			record:    nil,
			user:      models.User{},
			contentID: "ch1_MCQ",
			expected:  false,
		},
		{
			name:      "free record ignores purchases",
			record:    &models.ContentRecord{Price: 0},
			user:      models.User{PurchasedContent: []string{"other"}},
			contentID: "ch1_MCQ",
			expected:  false,
		},
		{
			name:      "free record with nil purchased set",
			record:    &models.ContentRecord{Price: 0},
			user:      models.User{PurchasedContent: nil},
			contentID: "ch1_MCQ",
			expected:  false,
		},
		{
			name:      "priced record not purchased",
			record:    &models.ContentRecord{Price: 30},
			user:      models.User{Credits: 100},
			contentID: "ch1_MCQ",
			expected:  true,
		},
		{
			name:      "priced record purchased",
			record:    &models.ContentRecord{Price: 30},
			user:      models.User{PurchasedContent: []string{"ch1_MCQ"}},
			contentID: "ch1_MCQ",
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLocked(tt.record, tt.user, tt.contentID))
		})
	}
}

func TestIsLocked_ModesGateIndependently(t *testing.T) {
	record := &models.ContentRecord{Price: 50}
	videoID := contentkey.DeriveContentID("ch1", contentkey.ModeVideo)
	pdfID := contentkey.DeriveContentID("ch1", contentkey.ModePremium)

	user := models.User{}
	assert.True(t, IsLocked(record, user, videoID))
	assert.True(t, IsLocked(record, user, pdfID))

	user.PurchasedContent = []string{videoID}
	assert.False(t, IsLocked(record, user, videoID))
	assert.True(t, IsLocked(record, user, pdfID))
}

func TestAffordability(t *testing.T) {
	tests := []struct {
		name      string
		balance   int
		price     int
		canAfford bool
		shortfall int
	}{
		{name: "exact balance", balance: 30, price: 30, canAfford: true, shortfall: 0},
		{name: "surplus", balance: 100, price: 30, canAfford: true, shortfall: 0},
		{name: "short by 30", balance: 50, price: 80, canAfford: false, shortfall: 30},
		{name: "empty wallet", balance: 0, price: 1, canAfford: false, shortfall: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canAfford, CanAfford(tt.balance, tt.price))
			assert.Equal(t, tt.shortfall, Shortfall(tt.balance, tt.price))
		})
	}
}

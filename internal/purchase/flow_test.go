package purchase

import (
	"context"
	"errors"
	"testing"

	"github.com/nstapp/content-library/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingUnlock returns an UnlockFunc that records calls and returns err
func recordingUnlock(calls *[]models.PurchaseRequest, err error) UnlockFunc {
	return func(ctx context.Context, req models.PurchaseRequest) error {
		*calls = append(*calls, req)
		return err
	}
}

func TestFlow_Request(t *testing.T) {
	f := NewFlow()
	assert.Equal(t, StateIdle, f.State())

	req := models.PurchaseRequest{Title: "Motion (MCQ Practice)", Price: 30, ContentID: "c1_MCQ"}
	require.NoError(t, f.Request(req))
	assert.Equal(t, StateRequested, f.State())

	active, ok := f.Active()
	assert.True(t, ok)
	assert.Equal(t, req, active)

	err := f.Request(models.PurchaseRequest{ContentID: "c2_MCQ"})
	assert.ErrorIs(t, err, models.ErrInvalidAction)
}

func TestFlow_Prompt(t *testing.T) {
	tests := []struct {
		name              string
		balance           int
		price             int
		expectedAfford    bool
		expectedShortfall int
		expectedMessage   string
	}{
		{name: "affordable", balance: 100, price: 30, expectedAfford: true},
		{name: "exact", balance: 30, price: 30, expectedAfford: true},
		{name: "short", balance: 50, price: 80, expectedAfford: false, expectedShortfall: 30, expectedMessage: "You need 30 more credits."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFlow()
			require.NoError(t, f.Request(models.PurchaseRequest{Title: "t", Price: tt.price, ContentID: "c_MCQ"}))

			prompt := f.Prompt(tt.balance)

			require.NotNil(t, prompt)
			assert.Equal(t, tt.expectedAfford, prompt.CanAfford)
			assert.Equal(t, tt.expectedAfford, prompt.ConfirmEnabled)
			assert.Equal(t, tt.expectedShortfall, prompt.Shortfall)
			assert.Equal(t, tt.expectedMessage, prompt.Message)
			assert.Equal(t, tt.balance, prompt.Balance)
		})
	}

	assert.Nil(t, NewFlow().Prompt(100))
}

func TestFlow_Confirm(t *testing.T) {
	t.Run("invokes unlock once and returns to idle", func(t *testing.T) {
		var calls []models.PurchaseRequest
		f := NewFlow()
		require.NoError(t, f.Request(models.PurchaseRequest{Price: 30, ContentID: "c1_MCQ"}))

		req, err := f.Confirm(context.Background(), 100, recordingUnlock(&calls, nil))

		require.NoError(t, err)
		assert.Equal(t, "c1_MCQ", req.ContentID)
		require.Len(t, calls, 1)
		assert.Equal(t, 30, calls[0].Price)
		assert.Equal(t, StateIdle, f.State())
		assert.Equal(t, StateConfirmed, f.Outcome())

		_, err = f.Confirm(context.Background(), 100, recordingUnlock(&calls, nil))
		assert.ErrorIs(t, err, models.ErrNoActivePurchase)
		assert.Len(t, calls, 1)
	})

	t.Run("insufficient credits keeps request pending", func(t *testing.T) {
		var calls []models.PurchaseRequest
		f := NewFlow()
		require.NoError(t, f.Request(models.PurchaseRequest{Price: 80, ContentID: "c1_MCQ"}))

		_, err := f.Confirm(context.Background(), 50, recordingUnlock(&calls, nil))

		assert.ErrorIs(t, err, models.ErrInsufficientCredits)
		assert.Empty(t, calls)
		assert.Equal(t, StateRequested, f.State())
	})

	t.Run("unlock failure still resolves the request", func(t *testing.T) {
		var calls []models.PurchaseRequest
		f := NewFlow()
		require.NoError(t, f.Request(models.PurchaseRequest{Price: 10, ContentID: "c1_VIDEO"}))

		_, err := f.Confirm(context.Background(), 10, recordingUnlock(&calls, errors.New("ledger down")))

		assert.ErrorIs(t, err, models.ErrUnlockFailed)
		assert.Len(t, calls, 1)
		assert.Equal(t, StateIdle, f.State())
	})
}

func TestFlow_BeginComplete(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.Request(models.PurchaseRequest{Price: 20, ContentID: "c1_PREMIUM"}))

	req, err := f.Begin(20)

	require.NoError(t, err)
	assert.Equal(t, "c1_PREMIUM", req.ContentID)
	assert.Equal(t, StateConfirmed, f.State())
	assert.Nil(t, f.Prompt(20))
	assert.ErrorIs(t, f.Request(models.PurchaseRequest{Price: 5, ContentID: "c2_PREMIUM"}), models.ErrInvalidAction)
	assert.ErrorIs(t, f.Cancel(), models.ErrNoActivePurchase)

	f.Complete()

	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, StateConfirmed, f.Outcome())

	t.Run("complete after reset keeps the new request", func(t *testing.T) {
		f := NewFlow()
		require.NoError(t, f.Request(models.PurchaseRequest{Price: 20, ContentID: "c1_ULTRA"}))
		_, err := f.Begin(50)
		require.NoError(t, err)

		f.Reset()
		require.NoError(t, f.Request(models.PurchaseRequest{Price: 5, ContentID: "c2_ULTRA"}))
		f.Complete()

		active, ok := f.Active()
		require.True(t, ok)
		assert.Equal(t, "c2_ULTRA", active.ContentID)
	})
}

func TestFlow_Cancel(t *testing.T) {
	f := NewFlow()
	assert.ErrorIs(t, f.Cancel(), models.ErrNoActivePurchase)

	require.NoError(t, f.Request(models.PurchaseRequest{Price: 10, ContentID: "c1_FREE"}))
	require.NoError(t, f.Cancel())

	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, StateCancelled, f.Outcome())
	_, ok := f.Active()
	assert.False(t, ok)
}

func TestFlow_Reset(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.Request(models.PurchaseRequest{Price: 10, ContentID: "c1_FREE"}))

	f.Reset()

	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, StateIdle, f.Outcome())
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/akshaymhatre/receiptly-api/internal/domain/entity"
	"github.com/akshaymhatre/receiptly-api/pkg/apperror"
	"github.com/akshaymhatre/receiptly-api/pkg/whatsapp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormService(names ...string) *FormService {
	engine := newEngine(0, names...)
	receipts := NewReceiptService(whatsapp.NewBuilder("", "", ""))
	return NewFormService(engine, receipts, time.Hour)
}

func TestCreate_DefaultsDateToToday(t *testing.T) {
	svc := newFormService()
	state := svc.Create(context.Background())

	assert.NotEqual(t, uuid.Nil, state.SessionID)
	assert.Equal(t, time.Now().Format("2006-01-02"), state.Draft.TransactionDate)
	assert.Empty(t, state.Draft.CustomerName)
	assert.Empty(t, state.Draft.Amount)
	assert.False(t, state.Suggestions.Visible)
}

func TestSetField_UnknownFieldRejected(t *testing.T) {
	svc := newFormService()
	ctx := context.Background()
	state := svc.Create(ctx)

	_, err := svc.SetField(ctx, state.SessionID, "nope", "x")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSetField_CustomerNameDrivesSuggestions(t *testing.T) {
	svc := newFormService("Ramesh Kumar", "Anita Sharma")
	ctx := context.Background()
	state := svc.Create(ctx)

	state, err := svc.SetField(ctx, state.SessionID, entity.FieldCustomerName, "ram")
	require.NoError(t, err)
	assert.True(t, state.Suggestions.Visible)
	require.Len(t, state.Suggestions.Candidates, 1)
	assert.Equal(t, "Ramesh Kumar", state.Suggestions.Candidates[0].Name)

	// Other fields leave the dropdown alone.
	state, err = svc.SetField(ctx, state.SessionID, entity.FieldAmount, "100")
	require.NoError(t, err)
	assert.True(t, state.Suggestions.Visible)
	assert.Len(t, state.Suggestions.Candidates, 1)
}

func TestDismissAndFocus(t *testing.T) {
	svc := newFormService("Ramesh Kumar")
	ctx := context.Background()
	state := svc.Create(ctx)

	_, err := svc.SetField(ctx, state.SessionID, entity.FieldCustomerName, "ram")
	require.NoError(t, err)

	state, err = svc.Dismiss(ctx, state.SessionID)
	require.NoError(t, err)
	assert.False(t, state.Suggestions.Visible)
	assert.Equal(t, "ram", state.Draft.CustomerName, "dismiss leaves the draft untouched")

	state, err = svc.Focus(ctx, state.SessionID)
	require.NoError(t, err)
	assert.True(t, state.Suggestions.Visible)
	assert.Len(t, state.Suggestions.Candidates, 1)
}

func TestChoose_AdoptsNameAndCloses(t *testing.T) {
	svc := newFormService("Ramesh Kumar")
	ctx := context.Background()
	state := svc.Create(ctx)
	_, err := svc.SetField(ctx, state.SessionID, entity.FieldCustomerName, "ram")
	require.NoError(t, err)

	state, err = svc.Choose(ctx, state.SessionID, "Ramesh Kumar")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar", state.Draft.CustomerName)
	assert.False(t, state.Suggestions.Visible)
	assert.Empty(t, state.Suggestions.Candidates)
}

func TestSubmit_ValidationFailureLeavesDraftUntouched(t *testing.T) {
	svc := newFormService()
	ctx := context.Background()
	state := svc.Create(ctx)
	_, err := svc.SetField(ctx, state.SessionID, entity.FieldAmount, "abc")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, state.SessionID)
	require.Error(t, err)
	assert.Equal(t, apperror.ReasonMissingCustomerName, apperror.GetAppError(err).Reason)

	after, err := svc.Get(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "abc", after.Draft.Amount)
}

func TestSubmit_Success(t *testing.T) {
	svc := newFormService()
	ctx := context.Background()
	state := svc.Create(ctx)

	for field, value := range map[string]string{
		entity.FieldCustomerName: "John Doe",
		entity.FieldAmount:       "500",
		entity.FieldMobileNumber: "9876543210",
	} {
		_, err := svc.SetField(ctx, state.SessionID, field, value)
		require.NoError(t, err)
	}

	link, err := svc.Submit(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Contains(t, link.URL, "https://wa.me/919876543210?text=")
}

func TestUnknownSession(t *testing.T) {
	svc := newFormService()
	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestExpiredSessionIsGone(t *testing.T) {
	svc := newFormService()
	ctx := context.Background()
	state := svc.Create(ctx)

	// Shift the clock past the TTL.
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err := svc.Get(ctx, state.SessionID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/checkout"
	"swiftdrop/internal/core/domain/model/draft"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

func testParty(name string) checkout.Party {
	return checkout.Party{
		Name:    name,
		Address: "1 Main St",
		City:    "Austin",
		Email:   "alice@example.com",
	}
}

// seedDraft puts a Quoted draft into the store and returns it with the
// checkout record its id points at.
func seedDraft(t *testing.T, store *memDraftStore) (*draft.Draft, *checkout.Checkout) {
	t.Helper()

	co, err := checkout.NewCheckout(kernel.NewUUID(), kernel.NewUUID(),
		"United States", "73301", "France", "75001")
	require.NoError(t, err)

	d, err := draft.NewDraft(kernel.NewTrackingID(), kernel.NewUUID(), co.ParcelID(), co.ID(),
		draft.QuoteSnapshot{Price: 0.4})
	require.NoError(t, err)
	require.NoError(t, store.Put(t.Context(), d))

	return d, co
}

func TestSubmitContactCommandHandler_Handle_CreatesContact(t *testing.T) {
	ctx := t.Context()
	store := newMemDraftStore()
	d, co := seedDraft(t, store)

	cmd, err := commands.NewSubmitContactCommand(d.ID(), testParty("Alice Sender"), testParty("Bob Receiver"), "DE123")
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.Parcels.On("DeleteProvisional", mock.Anything).Return(int64(3), nil).Once()
	uow.Checkouts.On("Get", mock.Anything, co.ID()).Return(co, nil).Once()
	uow.Checkouts.On("Update", mock.Anything, co).Return(nil).Once()
	uow.Contacts.On("GetByUserAndName", mock.Anything, d.SenderID(), "Alice Sender").
		Return(nil, errs.NewObjectNotFoundError("contact", "Alice Sender")).Once()
	uow.Contacts.On("Add", mock.Anything, mock.AnythingOfType("*checkout.Contact")).Return(nil).Once()

	h := commands.NewSubmitContactCommandHandler(fakeContactUoWFactory{uow: uow}, store, testLogger())

	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, co.IsComplete())
	assert.Equal(t, "DE123", co.VatTaxID())

	updated, err := store.Get(ctx, d.ID())
	require.NoError(t, err)
	assert.Equal(t, draft.ContactEntered, updated.Step())
	require.NotNil(t, updated.Contact())
	assert.Equal(t, "Alice Sender", updated.Contact().Sender.Name)

	uow.AssertExpectationsForAll(t)
}

func TestSubmitContactCommandHandler_Handle_RefreshesExistingContact(t *testing.T) {
	ctx := t.Context()
	store := newMemDraftStore()
	d, co := seedDraft(t, store)

	existing, err := checkout.NewContact(kernel.NewUUID(), d.SenderID(),
		testParty("Alice Sender"), "Germany", "10115")
	require.NoError(t, err)

	cmd, err := commands.NewSubmitContactCommand(d.ID(), testParty("Alice Sender"), testParty("Bob Receiver"), "")
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.Parcels.On("DeleteProvisional", mock.Anything).Return(int64(0), nil).Once()
	uow.Checkouts.On("Get", mock.Anything, co.ID()).Return(co, nil).Once()
	uow.Checkouts.On("Update", mock.Anything, co).Return(nil).Once()
	uow.Contacts.On("GetByUserAndName", mock.Anything, d.SenderID(), "Alice Sender").Return(existing, nil).Once()
	uow.Contacts.On("Update", mock.Anything, existing).Return(nil).Once()

	h := commands.NewSubmitContactCommandHandler(fakeContactUoWFactory{uow: uow}, store, testLogger())

	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "United States", existing.Country())
	assert.Equal(t, "73301", existing.ZipCode())
	uow.AssertExpectationsForAll(t)
}

func TestSubmitContactCommandHandler_Handle_UnknownDraft(t *testing.T) {
	ctx := t.Context()
	store := newMemDraftStore()

	cmd, err := commands.NewSubmitContactCommand(kernel.NewTrackingID(),
		testParty("Alice Sender"), testParty("Bob Receiver"), "")
	require.NoError(t, err)

	h := commands.NewSubmitContactCommandHandler(fakeContactUoWFactory{uow: NewMockUoW()}, store, testLogger())

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewSubmitContactCommand_RequiresPartyFields(t *testing.T) {
	incomplete := checkout.Party{Name: "Alice Sender"}

	_, err := commands.NewSubmitContactCommand(kernel.NewTrackingID(), incomplete, testParty("Bob Receiver"), "")

	require.Error(t, err)
}

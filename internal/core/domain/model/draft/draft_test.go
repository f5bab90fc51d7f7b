package draft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftdrop/internal/core/domain/model/checkout"
	"swiftdrop/internal/core/domain/model/draft"
	"swiftdrop/internal/core/domain/model/kernel"
)

func quotedDraft(t *testing.T) *draft.Draft {
	t.Helper()

	km := 7658.0
	hours := km / 800

	d, err := draft.NewDraft(kernel.NewTrackingID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		draft.QuoteSnapshot{Price: 766.2, DistanceKm: &km, TransitHours: &hours})
	require.NoError(t, err)
	return d
}

func contactPayload() draft.ContactPayload {
	party := checkout.Party{
		Name:    "Alice Sender",
		Address: "1 Main St",
		City:    "Austin",
		Email:   "alice@example.com",
	}
	return draft.ContactPayload{Sender: party, Receiver: party}
}

func packagingPayload() draft.PackagingPayload {
	return draft.PackagingPayload{Type: "box", Quantity: 1, WeightKg: 0.5, LengthCm: 30, WidthCm: 20, HeightCm: 10}
}

func paymentPayload(cvv string) draft.PaymentPayload {
	return draft.PaymentPayload{
		CardholderName: "Alice Sender",
		CardNumber:     "4111111111111111",
		ExpiryMonth:    12,
		ExpiryYear:     2027,
		CVV:            cvv,
	}
}

func TestNewDraft(t *testing.T) {
	t.Run("starts in the quoted step", func(t *testing.T) {
		d := quotedDraft(t)

		require.NoError(t, d.Validate())
		assert.Equal(t, draft.Quoted, d.Step())
		assert.Nil(t, d.Contact())
		assert.Nil(t, d.Packaging())
		assert.Nil(t, d.Payment())

		_, committed := d.CommittedShipmentID()
		assert.False(t, committed)
	})

	t.Run("rejects zero identifiers", func(t *testing.T) {
		_, err := draft.NewDraft(kernel.NewTrackingID(), kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			draft.QuoteSnapshot{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d draft.Draft

		require.ErrorIs(t, d.Validate(), draft.ErrDraftIsNotConstructed)
	})
}

func TestDraft_StepOrder(t *testing.T) {
	t.Run("packaging before contact fails naming the missing step", func(t *testing.T) {
		d := quotedDraft(t)

		err := d.EnterPackaging(packagingPayload())

		require.ErrorIs(t, err, draft.ErrMissingPrerequisite)
		var missing *draft.MissingPrerequisiteError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, draft.ContactEntered, missing.MissingStep)
	})

	t.Run("payment before packaging fails naming the missing step", func(t *testing.T) {
		d := quotedDraft(t)
		require.NoError(t, d.EnterContact(contactPayload()))

		err := d.EnterPayment(paymentPayload("123"))

		require.ErrorIs(t, err, draft.ErrMissingPrerequisite)
		var missing *draft.MissingPrerequisiteError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, draft.Packaged, missing.MissingStep)
	})

	t.Run("full walk reaches paid", func(t *testing.T) {
		d := quotedDraft(t)

		require.NoError(t, d.EnterContact(contactPayload()))
		assert.Equal(t, draft.ContactEntered, d.Step())

		require.NoError(t, d.EnterPackaging(packagingPayload()))
		assert.Equal(t, draft.Packaged, d.Step())

		require.NoError(t, d.EnterPayment(paymentPayload("123")))
		assert.Equal(t, draft.Paid, d.Step())
	})
}

func TestDraft_StepInvalidation(t *testing.T) {
	t.Run("re-entering contact resets packaging and payment", func(t *testing.T) {
		d := quotedDraft(t)
		require.NoError(t, d.EnterContact(contactPayload()))
		require.NoError(t, d.EnterPackaging(packagingPayload()))
		require.NoError(t, d.EnterPayment(paymentPayload("123")))

		edited := contactPayload()
		edited.VatTaxID = "DE999999999"
		require.NoError(t, d.EnterContact(edited))

		assert.Equal(t, draft.ContactEntered, d.Step())
		assert.Equal(t, "DE999999999", d.Contact().VatTaxID)
		assert.Nil(t, d.Packaging())
		assert.Nil(t, d.Payment())
	})

	t.Run("re-entering packaging resets payment only", func(t *testing.T) {
		d := quotedDraft(t)
		require.NoError(t, d.EnterContact(contactPayload()))
		require.NoError(t, d.EnterPackaging(packagingPayload()))
		require.NoError(t, d.EnterPayment(paymentPayload("123")))

		edited := packagingPayload()
		edited.Quantity = 3
		require.NoError(t, d.EnterPackaging(edited))

		assert.Equal(t, draft.Packaged, d.Step())
		assert.Equal(t, 3, d.Packaging().Quantity)
		assert.NotNil(t, d.Contact())
		assert.Nil(t, d.Payment())
	})
}

func TestDraft_Commit(t *testing.T) {
	paidDraft := func(t *testing.T) *draft.Draft {
		t.Helper()
		d := quotedDraft(t)
		require.NoError(t, d.EnterContact(contactPayload()))
		require.NoError(t, d.EnterPackaging(packagingPayload()))
		require.NoError(t, d.EnterPayment(paymentPayload("123")))
		return d
	}

	t.Run("mark committed records the shipment id", func(t *testing.T) {
		d := paidDraft(t)
		shipmentID := kernel.NewUUID()

		require.NoError(t, d.MarkCommitted(shipmentID))

		got, ok := d.CommittedShipmentID()
		require.True(t, ok)
		assert.True(t, got.IsEqual(shipmentID))
	})

	t.Run("mark committed is idempotent for the same shipment", func(t *testing.T) {
		d := paidDraft(t)
		shipmentID := kernel.NewUUID()
		require.NoError(t, d.MarkCommitted(shipmentID))

		require.NoError(t, d.MarkCommitted(shipmentID))
	})

	t.Run("mark committed rejects a different shipment", func(t *testing.T) {
		d := paidDraft(t)
		require.NoError(t, d.MarkCommitted(kernel.NewUUID()))

		require.Error(t, d.MarkCommitted(kernel.NewUUID()))
	})

	t.Run("committed draft freezes contact and packaging", func(t *testing.T) {
		d := paidDraft(t)
		require.NoError(t, d.MarkCommitted(kernel.NewUUID()))

		require.ErrorIs(t, d.EnterContact(contactPayload()), draft.ErrDraftAlreadyCommitted)
		require.ErrorIs(t, d.EnterPackaging(packagingPayload()), draft.ErrDraftAlreadyCommitted)
	})

	t.Run("payment retry is allowed after commit", func(t *testing.T) {
		d := paidDraft(t)
		require.NoError(t, d.MarkCommitted(kernel.NewUUID()))

		require.NoError(t, d.EnterPayment(paymentPayload("124")))
		assert.Equal(t, "124", d.Payment().CVV)
	})
}

func TestDraft_Confirm(t *testing.T) {
	t.Run("confirm requires the paid step", func(t *testing.T) {
		d := quotedDraft(t)

		require.ErrorIs(t, d.Confirm(), draft.ErrMissingPrerequisite)
	})

	t.Run("confirm requires a committed draft", func(t *testing.T) {
		d := quotedDraft(t)
		require.NoError(t, d.EnterContact(contactPayload()))
		require.NoError(t, d.EnterPackaging(packagingPayload()))
		require.NoError(t, d.EnterPayment(paymentPayload("123")))

		require.ErrorIs(t, d.Confirm(), draft.ErrDraftNotCommitted)
	})

	t.Run("confirmed draft accepts no further edits", func(t *testing.T) {
		d := quotedDraft(t)
		require.NoError(t, d.EnterContact(contactPayload()))
		require.NoError(t, d.EnterPackaging(packagingPayload()))
		require.NoError(t, d.EnterPayment(paymentPayload("123")))
		require.NoError(t, d.MarkCommitted(kernel.NewUUID()))
		require.NoError(t, d.Confirm())

		assert.Equal(t, draft.Confirmed, d.Step())
		require.ErrorIs(t, d.EnterContact(contactPayload()), draft.ErrDraftAlreadyConfirmed)
		require.ErrorIs(t, d.EnterPackaging(packagingPayload()), draft.ErrDraftAlreadyConfirmed)
		require.ErrorIs(t, d.EnterPayment(paymentPayload("123")), draft.ErrDraftAlreadyConfirmed)
		require.ErrorIs(t, d.Confirm(), draft.ErrDraftAlreadyConfirmed)
	})
}

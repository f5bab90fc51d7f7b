package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftdrop/internal/core/domain/model/checkout"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

func testParty(name string) checkout.Party {
	return checkout.Party{
		Name:        name,
		Address:     "1 Harbor Way",
		City:        "Baltimore",
		State:       "MD",
		Email:       name + "@example.com",
		PhoneType:   "mobile",
		PhoneCode:   "+1",
		PhoneNumber: "5550100",
	}
}

func partialCheckout(t *testing.T) *checkout.Checkout {
	t.Helper()

	c, err := checkout.NewCheckout(
		kernel.NewUUID(), kernel.NewUUID(),
		"United States", "21201", "France", "75001",
	)
	require.NoError(t, err)
	return c
}

func TestNewCheckout(t *testing.T) {
	t.Run("partial checkout carries routing only", func(t *testing.T) {
		c := partialCheckout(t)

		require.NoError(t, c.Validate())
		assert.False(t, c.IsComplete())
		assert.Equal(t, "United States", c.PickupCountry())
		assert.Equal(t, "75001", c.DeliveryZip())
		assert.True(t, c.Sender().IsZero())
	})

	t.Run("countries are required", func(t *testing.T) {
		_, err := checkout.NewCheckout(kernel.NewUUID(), kernel.NewUUID(), "", "21201", "France", "75001")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = checkout.NewCheckout(kernel.NewUUID(), kernel.NewUUID(), "United States", "21201", "", "75001")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c checkout.Checkout

		require.ErrorIs(t, c.Validate(), checkout.ErrCheckoutIsNotConstructed)
	})
}

func TestCheckout_Complete(t *testing.T) {
	t.Run("stores both parties", func(t *testing.T) {
		c := partialCheckout(t)

		err := c.Complete(testParty("alice"), testParty("bob"), "VAT-42")

		require.NoError(t, err)
		assert.True(t, c.IsComplete())
		assert.Equal(t, "alice", c.Sender().Name)
		assert.Equal(t, "bob", c.Receiver().Name)
		assert.Equal(t, "VAT-42", c.VatTaxID())
	})

	t.Run("re-completion overwrites previous details", func(t *testing.T) {
		c := partialCheckout(t)
		require.NoError(t, c.Complete(testParty("alice"), testParty("bob"), ""))

		require.NoError(t, c.Complete(testParty("carol"), testParty("bob"), ""))

		assert.Equal(t, "carol", c.Sender().Name)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		c := partialCheckout(t)
		sender := testParty("alice")
		sender.Email = ""

		err := c.Complete(sender, testParty("bob"), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.False(t, c.IsComplete())
	})
}

func TestParty_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*checkout.Party)
	}{
		{"missing name", func(p *checkout.Party) { p.Name = "" }},
		{"missing address", func(p *checkout.Party) { p.Address = "" }},
		{"missing city", func(p *checkout.Party) { p.City = "" }},
		{"missing email", func(p *checkout.Party) { p.Email = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParty("alice")
			tt.mutate(&p)

			require.ErrorIs(t, p.Validate("sender"), errs.ErrValueIsRequired)
		})
	}

	t.Run("optional fields may stay empty", func(t *testing.T) {
		p := testParty("alice")
		p.Company = ""
		p.Address2 = ""
		p.State = ""

		require.NoError(t, p.Validate("sender"))
	})
}

func TestContact(t *testing.T) {
	t.Run("new contact stores details", func(t *testing.T) {
		userID := kernel.NewUUID()
		c, err := checkout.NewContact(kernel.NewUUID(), userID, testParty("alice"), "United States", "21201")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.UserID().IsEqual(userID))
		assert.Equal(t, "alice", c.Details().Name)
	})

	t.Run("refresh overwrites the prefill cache", func(t *testing.T) {
		c, err := checkout.NewContact(kernel.NewUUID(), kernel.NewUUID(), testParty("alice"), "United States", "21201")
		require.NoError(t, err)

		c.Refresh(testParty("alice-updated"), "Canada", "H3A")

		assert.Equal(t, "alice-updated", c.Details().Name)
		assert.Equal(t, "Canada", c.Country())
		assert.Equal(t, "H3A", c.ZipCode())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c checkout.Contact

		require.ErrorIs(t, c.Validate(), checkout.ErrContactIsNotConstructed)
	})
}

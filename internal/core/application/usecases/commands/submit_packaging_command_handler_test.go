package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/draft"
	"swiftdrop/internal/core/domain/model/kernel"
)

func TestSubmitPackagingCommandHandler_Handle(t *testing.T) {
	t.Run("requires the contact step first", func(t *testing.T) {
		ctx := t.Context()
		store := newMemDraftStore()
		d, _ := seedDraft(t, store)

		cmd, err := commands.NewSubmitPackagingCommand(d.ID(), "box", 1, 0.5, 30, 20, 10)
		require.NoError(t, err)

		h := commands.NewSubmitPackagingCommandHandler(store)

		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, draft.ErrMissingPrerequisite)
	})

	t.Run("advances the draft to packaged", func(t *testing.T) {
		ctx := t.Context()
		store := newMemDraftStore()
		d, _ := seedDraft(t, store)
		require.NoError(t, d.EnterContact(draft.ContactPayload{
			Sender:   testParty("Alice Sender"),
			Receiver: testParty("Bob Receiver"),
		}))
		require.NoError(t, store.Update(ctx, d))

		cmd, err := commands.NewSubmitPackagingCommand(d.ID(), "box", 2, 0.5, 30, 20, 10)
		require.NoError(t, err)

		h := commands.NewSubmitPackagingCommandHandler(store)

		require.NoError(t, h.Handle(ctx, cmd))

		updated, err := store.Get(ctx, d.ID())
		require.NoError(t, err)
		assert.Equal(t, draft.Packaged, updated.Step())
		require.NotNil(t, updated.Packaging())
		assert.Equal(t, 2, updated.Packaging().Quantity)
	})

	t.Run("unknown draft", func(t *testing.T) {
		ctx := t.Context()
		store := newMemDraftStore()

		cmd, err := commands.NewSubmitPackagingCommand(kernel.NewTrackingID(), "box", 1, 0.5, 30, 20, 10)
		require.NoError(t, err)

		h := commands.NewSubmitPackagingCommandHandler(store)

		require.Error(t, h.Handle(ctx, cmd))
	})
}

func TestNewSubmitPackagingCommand_Validation(t *testing.T) {
	draftID := kernel.NewTrackingID()

	tests := []struct {
		name          string
		packagingType string
		quantity      int
		weight        float64
	}{
		{"missing type", "", 1, 0.5},
		{"zero quantity", "box", 0, 0.5},
		{"zero weight", "box", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewSubmitPackagingCommand(draftID, tt.packagingType, tt.quantity, tt.weight, 30, 20, 10)

			require.Error(t, err)
		})
	}
}

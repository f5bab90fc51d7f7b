package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"swiftdrop/internal/core/domain/model/draft"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/shipment"
	"swiftdrop/internal/core/ports"
)

// ErrPaymentDeclined is returned when the authorizer rejects the payment.
// The draft stays open so the customer can resubmit with different details.
var ErrPaymentDeclined = errors.New("payment was declined")

// SubmitPaymentResult carries the committed shipment back to the caller.
type SubmitPaymentResult struct {
	ShipmentID kernel.UUID
	TrackingID kernel.TrackingID
}

// SubmitPaymentCommandHandler runs the final checkout step: it records the
// payment payload, commits the draft to durable storage in one transaction,
// and asks the authorizer to approve the payment. An approval confirms the
// checkout; a decline leaves the shipment Pending for another attempt.
//
// Submissions for the same draft are serialized so a double-click cannot
// commit twice.
type SubmitPaymentCommandHandler struct {
	uowFactory CommitUoWFactory
	draftStore ports.DraftStore
	authorizer ports.PaymentAuthorizer
	logger     *slog.Logger

	mu     sync.Mutex
	inWork map[string]*draftLock
}

// draftLock serializes submissions for one draft. Entries are reference
// counted and removed from the map once the last submission releases them.
type draftLock struct {
	mu   sync.Mutex
	refs int
}

// NewSubmitPaymentCommandHandler creates a handler for the payment step.
func NewSubmitPaymentCommandHandler(
	uowFactory CommitUoWFactory,
	draftStore ports.DraftStore,
	authorizer ports.PaymentAuthorizer,
	logger *slog.Logger,
) *SubmitPaymentCommandHandler {
	return &SubmitPaymentCommandHandler{
		uowFactory: uowFactory,
		draftStore: draftStore,
		authorizer: authorizer,
		logger:     logger,
		inWork:     make(map[string]*draftLock),
	}
}

// Handle processes the payment step for a draft.
func (h *SubmitPaymentCommandHandler) Handle(ctx context.Context, cmd SubmitPaymentCommand) (SubmitPaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitPaymentResult{}, err
	}

	lock := h.acquireDraftLock(cmd.DraftID())
	defer h.releaseDraftLock(cmd.DraftID(), lock)

	d, err := h.draftStore.Get(ctx, cmd.DraftID())
	if err != nil {
		return SubmitPaymentResult{}, err
	}

	if err = d.EnterPayment(draft.PaymentPayload{
		CardholderName: cmd.CardholderName(),
		CardNumber:     cmd.CardNumber(),
		CardType:       cmd.CardType(),
		CardBrand:      cmd.CardBrand(),
		ExpiryMonth:    cmd.ExpiryMonth(),
		ExpiryYear:     cmd.ExpiryYear(),
		CVV:            cmd.CVV(),
	}); err != nil {
		return SubmitPaymentResult{}, err
	}

	s, err := h.commit(ctx, d)
	if err != nil {
		return SubmitPaymentResult{}, err
	}

	if err = h.draftStore.Update(ctx, d); err != nil {
		return SubmitPaymentResult{}, err
	}

	approved, err := h.authorizer.Authorize(ctx, s.Payment())
	if err != nil {
		return SubmitPaymentResult{}, err
	}
	if !approved {
		h.logger.InfoContext(ctx, "payment declined",
			slog.String("draftId", d.ID().String()))
		return SubmitPaymentResult{}, ErrPaymentDeclined
	}

	if err = h.confirm(ctx, d, s); err != nil {
		return SubmitPaymentResult{}, err
	}

	h.logger.InfoContext(ctx, "checkout confirmed, sending confirmation notification",
		slog.String("trackingId", d.ID().String()),
		slog.String("shipmentId", s.ID().String()))

	return SubmitPaymentResult{ShipmentID: s.ID(), TrackingID: d.ID()}, nil
}

// commit writes the draft's accumulated state to durable storage in one
// transaction. A draft that was already committed only refreshes its payment
// record; no second shipment is ever created.
func (h *SubmitPaymentCommandHandler) commit(ctx context.Context, d *draft.Draft) (*shipment.Shipment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var s *shipment.Shipment
	var err error

	if shipmentID, committed := d.CommittedShipmentID(); committed {
		s, err = h.refreshPayment(ctx, uow, d, shipmentID)
	} else {
		s, err = h.createShipment(ctx, uow, d)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = d.MarkCommitted(s.ID()); err != nil {
		return nil, err
	}

	return s, nil
}

func (h *SubmitPaymentCommandHandler) createShipment(
	ctx context.Context,
	uow CommitUoW,
	d *draft.Draft,
) (*shipment.Shipment, error) {
	p, err := uow.ParcelRepository().Get(ctx, d.ParcelID())
	if err != nil {
		return nil, err
	}

	co, err := uow.CheckoutRepository().Get(ctx, d.CheckoutID())
	if err != nil {
		return nil, err
	}

	s, err := shipment.NewShipment(
		kernel.NewUUID(), d.ParcelID(), d.CheckoutID(),
		co.PickupCountry(), co.DeliveryCountry(), p.WeightKg(),
	)
	if err != nil {
		return nil, err
	}

	packagingPayload := d.Packaging()
	if packagingPayload == nil {
		return nil, draft.NewMissingPrerequisiteError(draft.Packaged)
	}

	packaging, err := shipment.NewPackaging(
		kernel.NewUUID(), packagingPayload.Type, packagingPayload.Quantity,
		packagingPayload.WeightKg, packagingPayload.LengthCm,
		packagingPayload.WidthCm, packagingPayload.HeightCm,
	)
	if err != nil {
		return nil, err
	}
	if err = s.AttachPackaging(packaging); err != nil {
		return nil, err
	}

	payment, err := h.findOrBuildPayment(ctx, uow, d)
	if err != nil {
		return nil, err
	}
	if err = s.AttachPayment(payment); err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	return s, nil
}

// refreshPayment handles a resubmission after a decline: the shipment already
// exists, only its payment record changes.
func (h *SubmitPaymentCommandHandler) refreshPayment(
	ctx context.Context,
	uow CommitUoW,
	d *draft.Draft,
	shipmentID kernel.UUID,
) (*shipment.Shipment, error) {
	s, err := uow.ShipmentRepository().Get(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	payment, err := h.findOrBuildPayment(ctx, uow, d)
	if err != nil {
		return nil, err
	}
	if err = s.AttachPayment(payment); err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
		return nil, err
	}

	return s, nil
}

// findOrBuildPayment deduplicates payment rows: identical card details reuse
// the existing record instead of inserting a duplicate.
func (h *SubmitPaymentCommandHandler) findOrBuildPayment(
	ctx context.Context,
	uow CommitUoW,
	d *draft.Draft,
) (*shipment.Payment, error) {
	payload := d.Payment()
	if payload == nil {
		return nil, draft.NewMissingPrerequisiteError(draft.Paid)
	}

	candidate, err := shipment.NewPayment(
		kernel.NewUUID(), payload.CardholderName, payload.CardNumber,
		payload.CardType, payload.CardBrand,
		payload.ExpiryMonth, payload.ExpiryYear, payload.CVV,
	)
	if err != nil {
		return nil, err
	}

	existing, err := uow.ShipmentRepository().FindPaymentByFingerprint(ctx, candidate.Fingerprint())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return candidate, nil
}

// confirm marks the shipment successful and closes the draft after an
// approved authorization.
func (h *SubmitPaymentCommandHandler) confirm(ctx context.Context, d *draft.Draft, s *shipment.Shipment) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := s.MarkSuccessful(); err != nil {
		return err
	}
	if err := uow.ShipmentRepository().Update(ctx, s); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if err := d.Confirm(); err != nil {
		return err
	}

	return h.draftStore.Update(ctx, d)
}

func (h *SubmitPaymentCommandHandler) acquireDraftLock(id kernel.TrackingID) *draftLock {
	h.mu.Lock()
	lock, ok := h.inWork[id.String()]
	if !ok {
		lock = &draftLock{}
		h.inWork[id.String()] = lock
	}
	lock.refs++
	h.mu.Unlock()

	lock.mu.Lock()
	return lock
}

func (h *SubmitPaymentCommandHandler) releaseDraftLock(id kernel.TrackingID, lock *draftLock) {
	lock.mu.Unlock()

	h.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(h.inWork, id.String())
	}
	h.mu.Unlock()
}

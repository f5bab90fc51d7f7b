// Package http exposes the checkout and shipment workflow over a JSON API.
// Sender identity comes from the X-User-ID header; authentication itself is
// handled upstream.
package http

import (
	"errors"
	"net/http"
	"strings"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/model/draft"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/shipment"
	"swiftdrop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

const userIDHeader = "X-User-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	calculateQuoteHandler      commands.CalculateQuoteCommandHandler
	startCheckoutHandler       commands.StartCheckoutCommandHandler
	submitContactHandler       commands.SubmitContactCommandHandler
	submitPackagingHandler     commands.SubmitPackagingCommandHandler
	submitPaymentHandler       *commands.SubmitPaymentCommandHandler
	cancelShipmentHandler      commands.CancelShipmentCommandHandler
	editShipmentDetailsHandler commands.EditShipmentDetailsCommandHandler

	// Query handlers
	trackShipmentHandler queries.TrackShipmentQueryHandler
	getShipmentsHandler  queries.GetShipmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	calculateQuoteHandler commands.CalculateQuoteCommandHandler,
	startCheckoutHandler commands.StartCheckoutCommandHandler,
	submitContactHandler commands.SubmitContactCommandHandler,
	submitPackagingHandler commands.SubmitPackagingCommandHandler,
	submitPaymentHandler *commands.SubmitPaymentCommandHandler,
	cancelShipmentHandler commands.CancelShipmentCommandHandler,
	editShipmentDetailsHandler commands.EditShipmentDetailsCommandHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
	getShipmentsHandler queries.GetShipmentsQueryHandler,
) *Server {
	return &Server{
		calculateQuoteHandler:      calculateQuoteHandler,
		startCheckoutHandler:       startCheckoutHandler,
		submitContactHandler:       submitContactHandler,
		submitPackagingHandler:     submitPackagingHandler,
		submitPaymentHandler:       submitPaymentHandler,
		cancelShipmentHandler:      cancelShipmentHandler,
		editShipmentDetailsHandler: editShipmentDetailsHandler,
		trackShipmentHandler:       trackShipmentHandler,
		getShipmentsHandler:        getShipmentsHandler,
	}
}

// RegisterRoutes mounts every endpoint on the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/quotes", s.CalculateQuote)
	api.POST("/checkouts", s.StartCheckout)
	api.POST("/checkouts/:draftId/contact", s.SubmitContact)
	api.POST("/checkouts/:draftId/packaging", s.SubmitPackaging)
	api.POST("/checkouts/:draftId/payment", s.SubmitPayment)
	api.GET("/tracking/:trackingId", s.TrackShipment)
	api.GET("/shipments", s.GetShipments)
	api.PATCH("/shipments/:trackingId/details", s.EditShipmentDetails)
	api.POST("/shipments/:trackingId/cancel", s.CancelShipment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CalculateQuote handles POST /api/v1/quotes - prices a prospective shipment.
func (s *Server) CalculateQuote(ctx echo.Context) error {
	senderID, err := s.senderID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCalculateQuoteCommand(
		senderID,
		req.PickupCountry, req.DeliveryCountry,
		req.WeightKg, req.LengthCm, req.WidthCm, req.HeightCm,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.calculateQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, quoteResponseFromResult(result))
}

// StartCheckout handles POST /api/v1/checkouts - opens a checkout draft.
func (s *Server) StartCheckout(ctx echo.Context) error {
	senderID, err := s.senderID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartCheckoutCommand(
		senderID,
		req.PickupCountry, req.PickupZip,
		req.DeliveryCountry, req.DeliveryZip,
		req.WeightKg, req.LengthCm, req.WidthCm, req.HeightCm,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.startCheckoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, checkoutResponseFromResult(result))
}

// SubmitContact handles POST /api/v1/checkouts/:draftId/contact.
func (s *Server) SubmitContact(ctx echo.Context) error {
	draftID, err := s.draftID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req ContactStepRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitContactCommand(
		draftID,
		partyFromPayload(req.Sender),
		partyFromPayload(req.Receiver),
		req.VatTaxID,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.submitContactHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitPackaging handles POST /api/v1/checkouts/:draftId/packaging.
func (s *Server) SubmitPackaging(ctx echo.Context) error {
	draftID, err := s.draftID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req PackagingStepRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitPackagingCommand(
		draftID,
		req.Type, req.Quantity,
		req.WeightKg, req.LengthCm, req.WidthCm, req.HeightCm,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.submitPackagingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitPayment handles POST /api/v1/checkouts/:draftId/payment - the final
// step, committing the draft and authorizing the payment.
func (s *Server) SubmitPayment(ctx echo.Context) error {
	draftID, err := s.draftID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req PaymentStepRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitPaymentCommand(
		draftID,
		req.CardholderName, req.CardNumber,
		req.CardType, req.CardBrand,
		req.ExpiryMonth, req.ExpiryYear,
		req.CVV,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.submitPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PaymentResponse{
		ShipmentID: result.ShipmentID.String(),
		TrackingID: result.TrackingID.String(),
	})
}

// TrackShipment handles GET /api/v1/tracking/:trackingId.
func (s *Server) TrackShipment(ctx echo.Context) error {
	trackingID, err := s.trackingID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewTrackShipmentQuery(trackingID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingResponseFromQuery(resp))
}

// GetShipments handles GET /api/v1/shipments - lists the caller's shipments.
// The sender query parameter overrides the header identity.
func (s *Server) GetShipments(ctx echo.Context) error {
	var senderID kernel.UUID
	var err error
	if sender := ctx.QueryParam("sender"); sender != "" {
		senderID, err = kernel.UUIDFromString(sender)
	} else {
		senderID, err = s.senderID(ctx)
	}
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentsQuery(senderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	shipments, err := s.getShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, lo.Map(shipments,
		func(item queries.GetShipmentsQueryResponse, _ int) ShipmentSummary {
			return shipmentSummaryFromQuery(item)
		}))
}

// EditShipmentDetails handles PATCH /api/v1/shipments/:trackingId/details.
func (s *Server) EditShipmentDetails(ctx echo.Context) error {
	trackingID, err := s.trackingID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req ShipmentDetailsRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEditShipmentDetailsCommand(trackingID, customsFromRequest(req), req.ImageRef)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.editShipmentDetailsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelShipment handles POST /api/v1/shipments/:trackingId/cancel.
func (s *Server) CancelShipment(ctx echo.Context) error {
	trackingID, err := s.trackingID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCancelShipmentCommand(trackingID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	status, err := s.cancelShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CancelResponse{
		TrackingID: trackingID.String(),
		Status:     status.String(),
	})
}

// senderID reads the caller identity from the X-User-ID header.
func (s *Server) senderID(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get(userIDHeader)
	if header == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(userIDHeader + " header")
	}

	return kernel.UUIDFromString(header)
}

// draftID parses the :draftId path parameter.
func (s *Server) draftID(ctx echo.Context) (kernel.TrackingID, error) {
	return kernel.TrackingIDFromString(ctx.Param("draftId"))
}

// trackingID parses the :trackingId path parameter.
func (s *Server) trackingID(ctx echo.Context) (kernel.TrackingID, error) {
	return kernel.TrackingIDFromString(ctx.Param("trackingId"))
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP statuses: validation -> 400,
// not found -> 404, workflow conflicts -> 409, declined payment -> 402.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var missingStep *draft.MissingPrerequisiteError
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.Is(err, commands.ErrPaymentDeclined):
		return ctx.JSON(http.StatusPaymentRequired, ErrorResponse{
			Code:    http.StatusPaymentRequired,
			Message: err.Error(),
		})

	case errors.As(err, &missingStep):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: missingStep.Error(),
		})

	case errors.Is(err, draft.ErrDraftAlreadyCommitted),
		errors.Is(err, draft.ErrDraftAlreadyConfirmed),
		errors.Is(err, shipment.ErrShipmentNotEditable):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})

	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: notFound.Error(),
		})

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		// errors.Join renders one field error per line.
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:        http.StatusBadRequest,
			Message:     "Validation failed",
			FieldErrors: strings.Split(err.Error(), "\n"),
		})

	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

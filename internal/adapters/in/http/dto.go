package http

import (
	"time"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/model/checkout"
	"swiftdrop/internal/core/domain/model/shipment"
)

// ErrorResponse is the uniform error body returned by every endpoint.
// FieldErrors carries the per-field breakdown for validation failures.
type ErrorResponse struct {
	Code        int      `json:"code"`
	Message     string   `json:"message"`
	FieldErrors []string `json:"fieldErrors,omitempty"`
}

// QuoteRequest is the body of POST /api/v1/quotes.
type QuoteRequest struct {
	PickupCountry   string  `json:"pickupCountry"`
	DeliveryCountry string  `json:"deliveryCountry"`
	WeightKg        float64 `json:"weightKg"`
	LengthCm        float64 `json:"lengthCm"`
	WidthCm         float64 `json:"widthCm"`
	HeightCm        float64 `json:"heightCm"`
}

// QuoteResponse carries a priced quote. DistanceKm and TransitHours are
// omitted when the route could not be resolved.
type QuoteResponse struct {
	ParcelID     string   `json:"parcelId"`
	Price        float64  `json:"price"`
	DistanceKm   *float64 `json:"distanceKm,omitempty"`
	TransitHours *float64 `json:"transitHours,omitempty"`
}

// CheckoutRequest is the body of POST /api/v1/checkouts.
type CheckoutRequest struct {
	PickupCountry   string  `json:"pickupCountry"`
	PickupZip       string  `json:"pickupZip"`
	DeliveryCountry string  `json:"deliveryCountry"`
	DeliveryZip     string  `json:"deliveryZip"`
	WeightKg        float64 `json:"weightKg"`
	LengthCm        float64 `json:"lengthCm"`
	WidthCm         float64 `json:"widthCm"`
	HeightCm        float64 `json:"heightCm"`
}

// CheckoutResponse returns the draft id the client uses for the step
// endpoints, together with the quote the checkout was opened with.
type CheckoutResponse struct {
	DraftID      string   `json:"draftId"`
	Price        float64  `json:"price"`
	DistanceKm   *float64 `json:"distanceKm,omitempty"`
	TransitHours *float64 `json:"transitHours,omitempty"`
}

// PartyPayload carries one side's contact details.
type PartyPayload struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Address     string `json:"address"`
	Address2    string `json:"address2"`
	Address3    string `json:"address3"`
	City        string `json:"city"`
	State       string `json:"state"`
	Email       string `json:"email"`
	PhoneType   string `json:"phoneType"`
	PhoneCode   string `json:"phoneCode"`
	PhoneNumber string `json:"phoneNumber"`
}

// ContactStepRequest is the body of POST /api/v1/checkouts/:draftId/contact.
type ContactStepRequest struct {
	Sender   PartyPayload `json:"sender"`
	Receiver PartyPayload `json:"receiver"`
	VatTaxID string       `json:"vatTaxId"`
}

// PackagingStepRequest is the body of POST /api/v1/checkouts/:draftId/packaging.
type PackagingStepRequest struct {
	Type     string  `json:"type"`
	Quantity int     `json:"quantity"`
	WeightKg float64 `json:"weightKg"`
	LengthCm float64 `json:"lengthCm"`
	WidthCm  float64 `json:"widthCm"`
	HeightCm float64 `json:"heightCm"`
}

// PaymentStepRequest is the body of POST /api/v1/checkouts/:draftId/payment.
type PaymentStepRequest struct {
	CardholderName string `json:"cardholderName"`
	CardNumber     string `json:"cardNumber"`
	CardType       string `json:"cardType"`
	CardBrand      string `json:"cardBrand"`
	ExpiryMonth    int    `json:"expiryMonth"`
	ExpiryYear     int    `json:"expiryYear"`
	CVV            string `json:"cvv"`
}

// PaymentResponse confirms the committed shipment.
type PaymentResponse struct {
	ShipmentID string `json:"shipmentId"`
	TrackingID string `json:"trackingId"`
}

// ShipmentDetailsRequest is the body of PATCH /api/v1/shipments/:trackingId/details.
type ShipmentDetailsRequest struct {
	ShippingType    string  `json:"shippingType"`
	Description     string  `json:"description"`
	Value           float64 `json:"value"`
	ItemDescription string  `json:"itemDescription"`
	ManufacturerID  string  `json:"manufacturerId"`
	Quantity        int     `json:"quantity"`
	Units           string  `json:"units"`
	ItemValue       float64 `json:"itemValue"`
	CountryOfOrigin string  `json:"countryOfOrigin"`
	ScheduleB       string  `json:"scheduleB"`
	Reference       string  `json:"reference"`
	InvoiceValue    float64 `json:"invoiceValue"`
	ImageRef        string  `json:"imageRef"`
}

// CancelResponse reports the shipment status after a cancel request.
type CancelResponse struct {
	TrackingID string `json:"trackingId"`
	Status     string `json:"status"`
}

// TrackingResponse is the tracking-page view of a shipment.
type TrackingResponse struct {
	TrackingID  string    `json:"trackingId"`
	Status      string    `json:"status"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	WeightKg    float64   `json:"weightKg"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ShipmentSummary is one row of the manage-shipments listing.
type ShipmentSummary struct {
	ShipmentID  string    `json:"shipmentId"`
	TrackingID  string    `json:"trackingId"`
	Status      string    `json:"status"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	CreatedAt   time.Time `json:"createdAt"`
}

func partyFromPayload(p PartyPayload) checkout.Party {
	return checkout.Party{
		Name:        p.Name,
		Company:     p.Company,
		Address:     p.Address,
		Address2:    p.Address2,
		Address3:    p.Address3,
		City:        p.City,
		State:       p.State,
		Email:       p.Email,
		PhoneType:   p.PhoneType,
		PhoneCode:   p.PhoneCode,
		PhoneNumber: p.PhoneNumber,
	}
}

func customsFromRequest(r ShipmentDetailsRequest) shipment.CustomsDetails {
	return shipment.CustomsDetails{
		ShippingType:    r.ShippingType,
		Description:     r.Description,
		Value:           r.Value,
		ItemDescription: r.ItemDescription,
		ManufacturerID:  r.ManufacturerID,
		Quantity:        r.Quantity,
		Units:           r.Units,
		ItemValue:       r.ItemValue,
		CountryOfOrigin: r.CountryOfOrigin,
		ScheduleB:       r.ScheduleB,
		Reference:       r.Reference,
		InvoiceValue:    r.InvoiceValue,
	}
}

func quoteResponseFromResult(result commands.QuoteResult) QuoteResponse {
	return QuoteResponse{
		ParcelID:     result.ParcelID.String(),
		Price:        result.Price,
		DistanceKm:   result.DistanceKm,
		TransitHours: result.TransitHours,
	}
}

func checkoutResponseFromResult(result commands.StartCheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		DraftID:      result.DraftID.String(),
		Price:        result.Price,
		DistanceKm:   result.DistanceKm,
		TransitHours: result.TransitHours,
	}
}

func trackingResponseFromQuery(resp queries.TrackShipmentQueryResponse) TrackingResponse {
	return TrackingResponse{
		TrackingID:  resp.TrackingID,
		Status:      resp.Status,
		Origin:      resp.Origin,
		Destination: resp.Destination,
		WeightKg:    resp.WeightKg,
		CreatedAt:   resp.CreatedAt,
	}
}

func shipmentSummaryFromQuery(resp queries.GetShipmentsQueryResponse) ShipmentSummary {
	return ShipmentSummary{
		ShipmentID:  resp.ShipmentID.String(),
		TrackingID:  resp.TrackingID,
		Status:      resp.Status,
		Origin:      resp.Origin,
		Destination: resp.Destination,
		CreatedAt:   resp.CreatedAt,
	}
}

package edge

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// moneyPayload is the JSON shape of a Money value on the wire.
type moneyPayload struct {
	CurrencyCode string `json:"currencyCode" validate:"required,len=3"`
	AmountCents  int64  `json:"amountCents" validate:"gte=0"`
}

// checkoutItemPayload is one line item of a checkout request.
type checkoutItemPayload struct {
	ProductID string       `json:"productId" validate:"required"`
	Quantity  int32        `json:"quantity" validate:"required,gte=1"`
	UnitPrice moneyPayload `json:"unitPrice" validate:"required"`
	VendorID  string       `json:"vendorId" validate:"required"`
}

// checkoutRequestPayload is the POST /api/checkout request body.
type checkoutRequestPayload struct {
	CustomerID       string                `json:"customerId" validate:"required"`
	Items            []checkoutItemPayload `json:"items" validate:"required,min=1,dive"`
	ShippingAddress  string                `json:"shippingAddress" validate:"required"`
	PaymentMethodID  string                `json:"paymentMethodId" validate:"required"`
}

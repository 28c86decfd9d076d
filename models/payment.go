package models

// PaymentIntentRequest is the body of POST /create-payment-intent. Price may be
// a JSON number or a numeric string.
type PaymentIntentRequest struct {
	Price interface{} `json:"price"`
}

// PaymentIntent is what the client needs to confirm the charge.
type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}

// IntentParams describes the intent handed to the payment processor.
type IntentParams struct {
	Amount             int64
	Currency           string
	PaymentMethodTypes []string
	IdempotencyKey     string
}

// Payment defaults.
const (
	DefaultCurrency          = "usd"
	DefaultPaymentMethodType = "card"
)

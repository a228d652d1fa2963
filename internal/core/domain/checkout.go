package domain

import (
	"math"
	"strings"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentUPI, PaymentCOD:
		return true
	}
	return false
}

type CheckoutStage string

const (
	StageShipping CheckoutStage = "shipping"
	StagePayment  CheckoutStage = "payment"
	StageReview   CheckoutStage = "review"
)

type (
	ShippingInfo struct {
		FirstName string
		LastName  string
		Email     string
		Phone     string
		Address   string
		City      string
		State     string
		Pincode   string
	}

	// PaymentInfo card sub-fields are only meaningful for PaymentCard.
	PaymentInfo struct {
		Method     PaymentMethod
		CardNumber string
		ExpiryDate string
		CVV        string
		NameOnCard string
	}

	// CheckoutDraft is transient form state, discarded on order
	// placement or checkout abandonment.
	CheckoutDraft struct {
		Shipping ShippingInfo
		Payment  PaymentInfo
	}
)

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool { return len(e) == 0 }

// ValidateShipping checks every shipping field is non-blank after trimming.
func ValidateShipping(s ShippingInfo) FieldErrors {
	errs := FieldErrors{}
	requireField(errs, "firstName", s.FirstName, "First name is required")
	requireField(errs, "lastName", s.LastName, "Last name is required")
	requireField(errs, "email", s.Email, "Email is required")
	requireField(errs, "phone", s.Phone, "Phone number is required")
	requireField(errs, "address", s.Address, "Address is required")
	requireField(errs, "city", s.City, "City is required")
	requireField(errs, "state", s.State, "State is required")
	requireField(errs, "pincode", s.Pincode, "Pincode is required")
	return errs
}

// ValidatePayment checks the card sub-fields for the card method.
// UPI and COD pass unconditionally.
func ValidatePayment(p PaymentInfo) FieldErrors {
	errs := FieldErrors{}
	if p.Method != PaymentCard {
		return errs
	}
	requireField(errs, "cardNumber", p.CardNumber, "Card number is required")
	requireField(errs, "expiryDate", p.ExpiryDate, "Expiry date is required")
	requireField(errs, "cvv", p.CVV, "CVV is required")
	requireField(errs, "nameOnCard", p.NameOnCard, "Name on card is required")
	return errs
}

func requireField(errs FieldErrors, field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = msg
	}
}

const (
	FreeShippingThreshold = 999
	ShippingFee           = 99
	TaxRate               = 0.18
	CODSurcharge          = 50
)

type PriceBreakdown struct {
	Subtotal     float64
	Shipping     float64
	Tax          float64
	CODSurcharge float64
	GrandTotal   float64
}

// Breakdown derives the order price breakdown from the cart subtotal
// and the selected payment method.
func Breakdown(subtotal float64, method PaymentMethod) PriceBreakdown {
	b := PriceBreakdown{Subtotal: subtotal}
	if subtotal < FreeShippingThreshold {
		b.Shipping = ShippingFee
	}
	b.Tax = math.Round(subtotal * TaxRate)
	if method == PaymentCOD {
		b.CODSurcharge = CODSurcharge
	}
	b.GrandTotal = b.Subtotal + b.Shipping + b.Tax + b.CODSurcharge
	return b
}

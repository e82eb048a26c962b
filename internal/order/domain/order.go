package domain

import (
	"strings"
	"time"

	cartdomain "github.com/hungergenie/storefront/internal/cart/domain"
)

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "creditCard"
	PaymentDebitCard      PaymentMethod = "debitCard"
	PaymentPayPal         PaymentMethod = "paypal"
	PaymentCashOnDelivery PaymentMethod = "cashOnDelivery"
)

// Card tells whether the method carries card details.
func (m PaymentMethod) Card() bool {
	return m == PaymentCreditCard || m == PaymentDebitCard
}

type DeliveryInfo struct {
	FullName     string
	Phone        string
	Address      string
	City         string
	State        string
	ZipCode      string
	Instructions string

	// Destination coordinates for the tracking map. Zero values fall back
	// to the demo drop-off point at order build time.
	Lat float64
	Lng float64
}

// PaymentInfo is display-only. Card fields are opaque strings; nothing here
// is validated or charged.
type PaymentInfo struct {
	Method         PaymentMethod
	CardNumber     string
	ExpiryDate     string
	CVV            string
	CardholderName string
}

// CardLast4 returns the last four digits of the card number, or "" when the
// method has no card or the number is too short.
func (p PaymentInfo) CardLast4() string {
	if !p.Method.Card() {
		return ""
	}
	digits := strings.ReplaceAll(p.CardNumber, " ", "")
	if len(digits) < 4 {
		return ""
	}
	return digits[len(digits)-4:]
}

type Tracking struct {
	Status           string
	EstimatedArrival time.Time
}

// Order is the frozen result of a checkout. Items and totals are computed
// once at build time and never recomputed.
type Order struct {
	OrderID        string
	Items          []cartdomain.CartLine
	Subtotal       cartdomain.Money
	DeliveryCharge cartdomain.Money
	Total          cartdomain.Money
	OrderDate      time.Time
	Delivery       DeliveryInfo
	Payment        PaymentInfo
	Tracking       Tracking
}

// Package view projects an Order into display structures. It is pure: no
// store reads, no clock, no rendering surface.
package view

import (
	"fmt"

	"github.com/hungergenie/storefront/internal/order/domain"
)

const orderDateLayout = "Monday, January 2, 2006 03:04 PM"

type ItemRow struct {
	Name      string
	Quantity  int
	LineTotal string
}

type ConfirmationView struct {
	OrderID       string
	OrderDate     string
	PaymentMethod string

	FullName     string
	AddressLine  string
	CityLine     string
	Phone        string
	Instructions string

	Items []ItemRow

	Subtotal       string
	DeliveryCharge string
	Total          string
}

// Confirmation formats an order for the confirmation page.
func Confirmation(order domain.Order) ConfirmationView {
	v := ConfirmationView{
		OrderID:       order.OrderID,
		OrderDate:     order.OrderDate.Format(orderDateLayout),
		PaymentMethod: PaymentLabel(order.Payment),

		FullName:     order.Delivery.FullName,
		AddressLine:  order.Delivery.Address,
		CityLine:     fmt.Sprintf("%s, %s %s", order.Delivery.City, order.Delivery.State, order.Delivery.ZipCode),
		Phone:        order.Delivery.Phone,
		Instructions: order.Delivery.Instructions,

		Subtotal:       order.Subtotal.Display(),
		DeliveryCharge: order.DeliveryCharge.Display(),
		Total:          order.Total.Display(),
	}

	for _, it := range order.Items {
		v.Items = append(v.Items, ItemRow{
			Name:      it.Name,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal().Display(),
		})
	}

	return v
}

var methodNames = map[domain.PaymentMethod]string{
	domain.PaymentCreditCard:     "Credit Card",
	domain.PaymentDebitCard:      "Debit Card",
	domain.PaymentPayPal:         "PayPal",
	domain.PaymentCashOnDelivery: "Cash on Delivery",
}

// PaymentLabel renders the method name, with card methods suffixed by the
// last four digits when available, e.g. "Credit Card ending in 1111".
func PaymentLabel(p domain.PaymentInfo) string {
	label, ok := methodNames[p.Method]
	if !ok {
		label = string(p.Method)
	}

	if last4 := p.CardLast4(); last4 != "" {
		label += fmt.Sprintf(" ending in %s", last4)
	}
	return label
}

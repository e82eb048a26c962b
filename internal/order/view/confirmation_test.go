package view_test

import (
	"testing"
	"time"

	cartdomain "github.com/hungergenie/storefront/internal/cart/domain"
	"github.com/hungergenie/storefront/internal/order/domain"
	"github.com/hungergenie/storefront/internal/order/view"
	"github.com/stretchr/testify/assert"
)

func TestConfirmation(t *testing.T) {
	order := domain.Order{
		OrderID:   "ORD-1765049400000",
		OrderDate: time.Date(2025, time.December, 6, 19, 30, 0, 0, time.UTC),
		Items: []cartdomain.CartLine{
			{Name: "Burger", Price: cartdomain.USD("8.50"), Quantity: 2},
			{Name: "Fries", Price: cartdomain.USD("3.00"), Quantity: 1},
		},
		Subtotal:       cartdomain.USD("20.00"),
		DeliveryCharge: cartdomain.USD("2.00"),
		Total:          cartdomain.USD("22.00"),
		Delivery: domain.DeliveryInfo{
			FullName:     "Ada Lovelace",
			Phone:        "555-0100",
			Address:      "1 Analytical Way",
			City:         "New York",
			State:        "NY",
			ZipCode:      "10001",
			Instructions: "Ring twice",
		},
		Payment: domain.PaymentInfo{Method: domain.PaymentCashOnDelivery},
	}

	v := view.Confirmation(order)

	assert.Equal(t, "ORD-1765049400000", v.OrderID)
	assert.Equal(t, "Saturday, December 6, 2025 07:30 PM", v.OrderDate)
	assert.Equal(t, "Cash on Delivery", v.PaymentMethod)
	assert.Equal(t, "New York, NY 10001", v.CityLine)
	assert.Equal(t, "Ring twice", v.Instructions)

	assert.Equal(t, []view.ItemRow{
		{Name: "Burger", Quantity: 2, LineTotal: "$17.00"},
		{Name: "Fries", Quantity: 1, LineTotal: "$3.00"},
	}, v.Items)

	assert.Equal(t, "$20.00", v.Subtotal)
	assert.Equal(t, "$2.00", v.DeliveryCharge)
	assert.Equal(t, "$22.00", v.Total)
}

func TestConfirmation_OrderDatePadsHour(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "single digit evening hour",
			date: time.Date(2025, time.December, 6, 19, 30, 0, 0, time.UTC),
			want: "Saturday, December 6, 2025 07:30 PM",
		},
		{
			name: "single digit morning hour",
			date: time.Date(2025, time.December, 7, 9, 5, 0, 0, time.UTC),
			want: "Sunday, December 7, 2025 09:05 AM",
		},
		{
			name: "two digit hour",
			date: time.Date(2025, time.December, 6, 23, 59, 0, 0, time.UTC),
			want: "Saturday, December 6, 2025 11:59 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := view.Confirmation(domain.Order{OrderDate: tt.date})
			assert.Equal(t, tt.want, v.OrderDate)
		})
	}
}

func TestPaymentLabel(t *testing.T) {
	tests := []struct {
		name    string
		payment domain.PaymentInfo
		want    string
	}{
		{
			name:    "cash on delivery",
			payment: domain.PaymentInfo{Method: domain.PaymentCashOnDelivery},
			want:    "Cash on Delivery",
		},
		{
			name:    "paypal",
			payment: domain.PaymentInfo{Method: domain.PaymentPayPal},
			want:    "PayPal",
		},
		{
			name: "credit card with last four",
			payment: domain.PaymentInfo{
				Method:     domain.PaymentCreditCard,
				CardNumber: "4111 1111 1111 1111",
			},
			want: "Credit Card ending in 1111",
		},
		{
			name: "debit card with last four",
			payment: domain.PaymentInfo{
				Method:     domain.PaymentDebitCard,
				CardNumber: "5105105105105100",
			},
			want: "Debit Card ending in 5100",
		},
		{
			name: "card method with short number",
			payment: domain.PaymentInfo{
				Method:     domain.PaymentCreditCard,
				CardNumber: "12",
			},
			want: "Credit Card",
		},
		{
			name:    "unknown method falls back to raw value",
			payment: domain.PaymentInfo{Method: "wire"},
			want:    "wire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, view.PaymentLabel(tt.payment))
		})
	}
}

package payment_test

import (
	"testing"

	cartdomain "github.com/hungergenie/storefront/internal/cart/domain"
	"github.com/hungergenie/storefront/internal/payment"
	"github.com/stretchr/testify/assert"
)

func TestPayPalLink(t *testing.T) {
	tests := []struct {
		total string
		want  string
	}{
		{total: "22.00", want: "https://www.paypal.com/paypalme/hungergenie/22.00USD"},
		{total: "4.5", want: "https://www.paypal.com/paypalme/hungergenie/4.50USD"},
		{total: "2.00", want: "https://www.paypal.com/paypalme/hungergenie/2.00USD"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, payment.PayPalLink(cartdomain.USD(tt.total)))
	}
}

// Package payment builds the outbound PayPal deep link shown as a QR code
// at checkout. Strictly display: no response ever comes back.
package payment

import (
	"fmt"

	cartdomain "github.com/hungergenie/storefront/internal/cart/domain"
)

const paypalMeBase = "https://www.paypal.com/paypalme/hungergenie"

// QRSurface renders a scannable code for a URL. Implementations may degrade
// (plain code without the center logo) but must not fail the checkout.
type QRSurface interface {
	RenderURL(url string) error
}

// PayPalLink returns the payment deep link for an order total,
// e.g. https://www.paypal.com/paypalme/hungergenie/22.00USD.
func PayPalLink(total cartdomain.Money) string {
	return fmt.Sprintf("%s/%s%s", paypalMeBase, total.Amount.StringFixed(2), total.Currency)
}

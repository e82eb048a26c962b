package adapter

import (
	"context"

	cartapp "github.com/hungergenie/storefront/internal/cart/app"
	cartdomain "github.com/hungergenie/storefront/internal/cart/domain"
)

// CartServiceReader adapts the cart engine to checkout's CartReader port.
type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Cart(ctx context.Context) (cartdomain.Cart, error) {
	return r.svc.GetCart(ctx)
}

func (r *CartServiceReader) Clear(ctx context.Context) error {
	return r.svc.Clear(ctx)
}

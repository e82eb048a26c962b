package app

import (
	"context"

	"github.com/hungergenie/storefront/internal/cart/domain"
)

// CartRepo reads and writes the single persisted cart. Load never fails on
// absent or malformed state; it substitutes an empty cart instead.
type CartRepo interface {
	Load(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
}

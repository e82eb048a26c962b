package app

import (
	"context"

	"github.com/hungergenie/storefront/internal/order/domain"
)

// OrderRepo owns the single last-order slot. SaveLast overwrites whatever
// order was there before; there is no history.
type OrderRepo interface {
	SaveLast(ctx context.Context, order domain.Order) error
	Last(ctx context.Context) (domain.Order, error)
}

package adapter

import (
	"context"

	orderapp "github.com/hungergenie/storefront/internal/order/app"
	orderdomain "github.com/hungergenie/storefront/internal/order/domain"
)

// OrderServiceWriter adapts the order service to checkout's OrderWriter port.
type OrderServiceWriter struct {
	svc *orderapp.Service
}

func NewOrderServiceWriter(svc *orderapp.Service) *OrderServiceWriter {
	return &OrderServiceWriter{svc: svc}
}

func (w *OrderServiceWriter) SaveLast(ctx context.Context, order orderdomain.Order) error {
	return w.svc.SaveLast(ctx, order)
}

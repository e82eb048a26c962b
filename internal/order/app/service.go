package app

import (
	"context"
	"errors"

	"github.com/hungergenie/storefront/internal/order/domain"
)

// ErrNoOrder means no order has been placed yet (or the stored one is
// unreadable). Views recover by falling back to the default page, they do
// not report it to the user.
var ErrNoOrder = errors.New("no order placed")

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) SaveLast(ctx context.Context, order domain.Order) error {
	return s.repo.SaveLast(ctx, order)
}

func (s *Service) Last(ctx context.Context) (domain.Order, error) {
	return s.repo.Last(ctx)
}

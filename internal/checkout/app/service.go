package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	cartapp "github.com/hungergenie/storefront/internal/cart/app"
	cartdomain "github.com/hungergenie/storefront/internal/cart/domain"
	"github.com/hungergenie/storefront/internal/order/domain"
	"github.com/hungergenie/storefront/internal/tracking"
)

var (
	// ErrEmptyCart blocks checkout; callers surface it as a user notice.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCheckoutDisabled reports the product-level checkout toggle.
	ErrCheckoutDisabled = errors.New("checkout is disabled")
)

// CartReader is the slice of the cart engine checkout needs: a fresh
// snapshot and the post-order clear.
type CartReader interface {
	Cart(ctx context.Context) (cartdomain.Cart, error)
	Clear(ctx context.Context) error
}

// OrderWriter persists the built order into the last-order slot.
type OrderWriter interface {
	SaveLast(ctx context.Context, order domain.Order) error
}

type Service struct {
	cart   CartReader
	orders OrderWriter

	clock   func() time.Time
	enabled bool
	log     *slog.Logger
}

func NewService(cart CartReader, orders OrderWriter, enabled bool, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		cart:    cart,
		orders:  orders,
		clock:   time.Now,
		enabled: enabled,
		log:     log,
	}
}

// WithClock substitutes the wall clock; tests pin order timestamps with it.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

// PlaceOrder turns the current cart plus the delivery and payment forms into
// a frozen Order, persists it, then clears the cart. An empty cart fails
// with ErrEmptyCart before anything is written.
func (s *Service) PlaceOrder(ctx context.Context, delivery domain.DeliveryInfo, payment domain.PaymentInfo) (domain.Order, error) {
	if !s.enabled {
		return domain.Order{}, ErrCheckoutDisabled
	}

	cart, err := s.cart.Cart(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("cart.Cart: %w", err)
	}
	if cart.Empty() {
		return domain.Order{}, ErrEmptyCart
	}

	if delivery.Lat == 0 && delivery.Lng == 0 {
		delivery.Lat = tracking.DefaultDestination.Lat
		delivery.Lng = tracking.DefaultDestination.Lng
	}

	now := s.clock()
	totals := cartapp.ComputeTotals(cart)

	items := make([]cartdomain.CartLine, len(cart.Items))
	copy(items, cart.Items)

	order := domain.Order{
		OrderID:        fmt.Sprintf("ORD-%d", now.UnixMilli()),
		Items:          items,
		Subtotal:       totals.Subtotal,
		DeliveryCharge: totals.DeliveryCharge,
		Total:          totals.Total,
		OrderDate:      now,
		Delivery:       delivery,
		Payment:        payment,
		Tracking: domain.Tracking{
			Status:           string(tracking.StatusPreparing),
			EstimatedArrival: now.Add(tracking.TransitDuration),
		},
	}

	if err := s.orders.SaveLast(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("orders.SaveLast: %w", err)
	}

	// A failed clear leaves a placed order next to a stale cart. Known
	// inconsistency window; the order wins, the cart is reported.
	if err := s.cart.Clear(ctx); err != nil {
		s.log.WarnContext(ctx, "order placed but cart clear failed",
			slog.String("order_id", order.OrderID), slog.Any("err", err))
	}

	return order, nil
}

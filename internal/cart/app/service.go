package app

import (
	"context"

	"github.com/hungergenie/storefront/internal/cart/domain"
	"github.com/hungergenie/storefront/internal/notify"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DeliveryCharge is the flat fee added to every order.
var DeliveryCharge = domain.USD("2.00")

type Service struct {
	repo     CartRepo
	notifier notify.Notifier
}

func NewService(repo CartRepo, notifier notify.Notifier) *Service {
	if notifier == nil {
		notifier = notify.Noop()
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

// GetCart reads the persisted cart fresh; there is no in-memory copy to
// keep coherent across invocations.
func (s *Service) GetCart(ctx context.Context) (domain.Cart, error) {
	return s.repo.Load(ctx)
}

// AddToCart increments the quantity of an existing line with the same name,
// or appends a new line with quantity 1.
func (s *Service) AddToCart(ctx context.Context, p domain.Product) error {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].Name == p.Name {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, domain.CartLine{
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Quantity: 1,
		})
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return err
	}

	s.notifier.Notify(ctx, "Item added to cart!", notify.Success)
	return nil
}

// UpdateQuantity adds delta to the named line's quantity. An unknown name is
// a no-op. A resulting quantity of zero or less removes the line entirely.
func (s *Service) UpdateQuantity(ctx context.Context, name string, delta int) error {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	for i := range cart.Items {
		if cart.Items[i].Name != name {
			continue
		}

		cart.Items[i].Quantity += delta
		if cart.Items[i].Quantity <= 0 {
			return s.RemoveFromCart(ctx, name)
		}
		return s.repo.Save(ctx, cart)
	}

	return nil
}

// RemoveFromCart deletes the named line; absent names are not an error.
func (s *Service) RemoveFromCart(ctx context.Context, name string) error {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	kept := cart.Items[:0]
	for _, l := range cart.Items {
		if l.Name != name {
			kept = append(kept, l)
		}
	}
	cart.Items = kept

	return s.repo.Save(ctx, cart)
}

// Clear empties the cart. Checkout calls this after the order is persisted.
func (s *Service) Clear(ctx context.Context) error {
	return s.repo.Save(ctx, domain.Cart{})
}

// ItemCount is the badge number shown next to the cart link.
func (s *Service) ItemCount(ctx context.Context) (int, error) {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}

// ComputeTotals is pure: subtotal over all lines, the flat delivery charge,
// and their sum. Safe on an empty cart.
func ComputeTotals(cart domain.Cart) domain.Totals {
	unit := currency.USD
	if len(cart.Items) > 0 {
		unit = cart.Items[0].Price.Currency
	}

	subtotal := domain.Money{Amount: decimal.Zero, Currency: unit}
	for _, l := range cart.Items {
		subtotal = subtotal.Add(l.LineTotal())
	}

	return domain.Totals{
		Subtotal:       subtotal,
		DeliveryCharge: DeliveryCharge,
		Total:          subtotal.Add(DeliveryCharge),
	}
}

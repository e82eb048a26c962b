package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hungergenie/storefront/internal/cart/domain"
	"github.com/hungergenie/storefront/pkg/kvstore"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type CartRepo struct {
	store kvstore.Store
}

func NewCartRepo(store kvstore.Store) *CartRepo {
	return &CartRepo{store: store}
}

type cartLineRow struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency,omitempty"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// Load returns the persisted cart. An absent key or a payload that fails to
// parse both read as an empty cart; parse errors never reach the caller.
func (r *CartRepo) Load(ctx context.Context) (domain.Cart, error) {
	raw, ok, err := r.store.Get(ctx, kvstore.KeyCart)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("store.Get: %w", err)
	}
	if !ok {
		return domain.Cart{}, nil
	}

	var rows []cartLineRow
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return domain.Cart{}, nil
	}

	items, err := mapRowsToDomain(rows)
	if err != nil {
		return domain.Cart{}, nil
	}

	return domain.Cart{Items: items}, nil
}

func (r *CartRepo) Save(ctx context.Context, cart domain.Cart) error {
	rows := make([]cartLineRow, 0, len(cart.Items))
	for _, l := range cart.Items {
		rows = append(rows, cartLineRow{
			Name:     l.Name,
			Price:    l.Price.Amount,
			Currency: l.Price.Currency.String(),
			Image:    l.Image,
			Quantity: l.Quantity,
		})
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.store.Set(ctx, kvstore.KeyCart, string(raw)); err != nil {
		return fmt.Errorf("store.Set: %w", err)
	}
	return nil
}

func mapRowToDomain(row cartLineRow) (domain.CartLine, error) {
	unit := currency.USD
	if row.Currency != "" {
		parsed, err := currency.ParseISO(row.Currency)
		if err != nil {
			return domain.CartLine{}, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
		}
		unit = parsed
	}

	if row.Quantity < 1 {
		return domain.CartLine{}, fmt.Errorf("quantity[%d] below 1", row.Quantity)
	}
	if row.Price.IsNegative() {
		return domain.CartLine{}, fmt.Errorf("price[%s] is negative", row.Price)
	}

	return domain.CartLine{
		Name:     row.Name,
		Price:    domain.Money{Amount: row.Price, Currency: unit},
		Image:    row.Image,
		Quantity: row.Quantity,
	}, nil
}

func mapRowsToDomain(rows []cartLineRow) ([]domain.CartLine, error) {
	var items []domain.CartLine

	for _, row := range rows {
		item, err := mapRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapRowToDomain: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

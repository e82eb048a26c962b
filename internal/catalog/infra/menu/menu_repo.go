// Package menu serves the fixed product menu. The storefront has no product
// management; the menu is seeded at build time like a static products page.
package menu

import (
	"context"

	"github.com/hungergenie/storefront/internal/catalog/app"
	"github.com/hungergenie/storefront/internal/catalog/domain"
	cartdomain "github.com/hungergenie/storefront/internal/cart/domain"
)

type Repo struct {
	products []domain.Product
	byID     map[string]domain.Product
}

func NewRepo() *Repo {
	r := &Repo{byID: make(map[string]domain.Product)}
	for _, p := range defaultMenu {
		r.products = append(r.products, p)
		r.byID[p.ID] = p
	}
	return r
}

func (r *Repo) Get(_ context.Context, id string) (domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return p, nil
}

func (r *Repo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

var defaultMenu = []domain.Product{
	{
		ID:          "classic-burger",
		Name:        "Classic Burger",
		Description: "Beef patty, lettuce, tomato and house sauce",
		Price:       cartdomain.USD("8.50"),
		Image:       "images/classic-burger.jpg",
	},
	{
		ID:          "cheese-burger",
		Name:        "Cheese Burger",
		Description: "Classic burger with double cheddar",
		Price:       cartdomain.USD("9.50"),
		Image:       "images/cheese-burger.jpg",
	},
	{
		ID:          "french-fries",
		Name:        "French Fries",
		Description: "Crispy golden fries, sea salt",
		Price:       cartdomain.USD("3.00"),
		Image:       "images/french-fries.jpg",
	},
	{
		ID:          "veggie-pizza",
		Name:        "Veggie Pizza",
		Description: "Wood-fired crust, seasonal vegetables",
		Price:       cartdomain.USD("11.00"),
		Image:       "images/veggie-pizza.jpg",
	},
	{
		ID:          "chicken-wings",
		Name:        "Chicken Wings",
		Description: "Eight wings with buffalo glaze",
		Price:       cartdomain.USD("7.25"),
		Image:       "images/chicken-wings.jpg",
	},
	{
		ID:          "caesar-salad",
		Name:        "Caesar Salad",
		Description: "Romaine, parmesan, garlic croutons",
		Price:       cartdomain.USD("6.75"),
		Image:       "images/caesar-salad.jpg",
	},
	{
		ID:          "chocolate-shake",
		Name:        "Chocolate Shake",
		Description: "Thick shake with whipped cream",
		Price:       cartdomain.USD("4.75"),
		Image:       "images/chocolate-shake.jpg",
	},
	{
		ID:          "soda",
		Name:        "Soda",
		Description: "Chilled can, assorted flavours",
		Price:       cartdomain.USD("1.50"),
		Image:       "images/soda.jpg",
	},
}

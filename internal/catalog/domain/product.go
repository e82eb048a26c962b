package domain

import (
	cartdomain "github.com/hungergenie/storefront/internal/cart/domain"
)

type Product struct {
	ID          string
	Name        string
	Description string
	Price       cartdomain.Money
	Image       string
}

package domain

type CartLine struct {
	// Name identifies the product; the cart holds at most one line per name.
	Name     string
	Price    Money
	Image    string
	Quantity int
}

func (l CartLine) LineTotal() Money {
	return Money{
		Amount:   l.Price.Amount.Mul(intDecimal(int64(l.Quantity))),
		Currency: l.Price.Currency,
	}
}

// Cart is an insertion-ordered sequence of lines. It is always a disposable
// copy of the persisted state, never a cache.
type Cart struct {
	Items []CartLine
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// ItemCount is the cart-badge number: total quantity across all lines.
func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c.Items {
		n += l.Quantity
	}
	return n
}

// Product is the add-to-cart input, as read off a product card.
type Product struct {
	Name  string
	Price Money
	Image string
}

type Totals struct {
	Subtotal       Money
	DeliveryCharge Money
	Total          Money
}

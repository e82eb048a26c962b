package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cartdomain "github.com/hungergenie/storefront/internal/cart/domain"
	"github.com/hungergenie/storefront/internal/order/app"
	"github.com/hungergenie/storefront/internal/order/domain"
	"github.com/hungergenie/storefront/pkg/kvstore"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type OrderRepo struct {
	store kvstore.Store
}

func NewOrderRepo(store kvstore.Store) *OrderRepo {
	return &OrderRepo{store: store}
}

type orderRow struct {
	OrderID        string          `json:"orderId"`
	Items          []orderItemRow  `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryCharge decimal.Decimal `json:"deliveryCharge"`
	Total          decimal.Decimal `json:"total"`
	Currency       string          `json:"currency,omitempty"`
	OrderDate      time.Time       `json:"orderDate"`
	Delivery       deliveryRow     `json:"delivery"`
	Payment        paymentRow      `json:"payment"`
	Tracking       trackingRow     `json:"tracking"`
}

type orderItemRow struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

type deliveryRow struct {
	FullName     string  `json:"fullName"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zipCode"`
	Instructions string  `json:"instructions,omitempty"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

type paymentRow struct {
	Method         string `json:"method"`
	CardNumber     string `json:"cardNumber,omitempty"`
	ExpiryDate     string `json:"expiryDate,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	CardholderName string `json:"cardName,omitempty"`
}

type trackingRow struct {
	Status           string    `json:"status"`
	EstimatedArrival time.Time `json:"estimatedArrival"`
}

func (r *OrderRepo) SaveLast(ctx context.Context, order domain.Order) error {
	row := orderRow{
		OrderID:        order.OrderID,
		Subtotal:       order.Subtotal.Amount,
		DeliveryCharge: order.DeliveryCharge.Amount,
		Total:          order.Total.Amount,
		Currency:       order.Total.Currency.String(),
		OrderDate:      order.OrderDate,
		Delivery: deliveryRow{
			FullName:     order.Delivery.FullName,
			Phone:        order.Delivery.Phone,
			Address:      order.Delivery.Address,
			City:         order.Delivery.City,
			State:        order.Delivery.State,
			ZipCode:      order.Delivery.ZipCode,
			Instructions: order.Delivery.Instructions,
			Lat:          order.Delivery.Lat,
			Lng:          order.Delivery.Lng,
		},
		Payment: paymentRow{
			Method:         string(order.Payment.Method),
			CardNumber:     order.Payment.CardNumber,
			ExpiryDate:     order.Payment.ExpiryDate,
			CVV:            order.Payment.CVV,
			CardholderName: order.Payment.CardholderName,
		},
		Tracking: trackingRow{
			Status:           order.Tracking.Status,
			EstimatedArrival: order.Tracking.EstimatedArrival,
		},
	}
	for _, it := range order.Items {
		row.Items = append(row.Items, orderItemRow{
			Name:     it.Name,
			Price:    it.Price.Amount,
			Image:    it.Image,
			Quantity: it.Quantity,
		})
	}

	raw, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.store.Set(ctx, kvstore.KeyLastOrder, string(raw)); err != nil {
		return fmt.Errorf("store.Set: %w", err)
	}
	return nil
}

// Last returns the order in the single slot. Absent and unreadable payloads
// both surface as ErrNoOrder.
func (r *OrderRepo) Last(ctx context.Context) (domain.Order, error) {
	raw, ok, err := r.store.Get(ctx, kvstore.KeyLastOrder)
	if err != nil {
		return domain.Order{}, fmt.Errorf("store.Get: %w", err)
	}
	if !ok {
		return domain.Order{}, app.ErrNoOrder
	}

	var row orderRow
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		return domain.Order{}, app.ErrNoOrder
	}

	return mapRowToDomain(row), nil
}

func mapRowToDomain(row orderRow) domain.Order {
	unit := currency.USD
	if row.Currency != "" {
		if parsed, err := currency.ParseISO(row.Currency); err == nil {
			unit = parsed
		}
	}

	order := domain.Order{
		OrderID:        row.OrderID,
		Subtotal:       cartdomain.Money{Amount: row.Subtotal, Currency: unit},
		DeliveryCharge: cartdomain.Money{Amount: row.DeliveryCharge, Currency: unit},
		Total:          cartdomain.Money{Amount: row.Total, Currency: unit},
		OrderDate:      row.OrderDate,
		Delivery: domain.DeliveryInfo{
			FullName:     row.Delivery.FullName,
			Phone:        row.Delivery.Phone,
			Address:      row.Delivery.Address,
			City:         row.Delivery.City,
			State:        row.Delivery.State,
			ZipCode:      row.Delivery.ZipCode,
			Instructions: row.Delivery.Instructions,
			Lat:          row.Delivery.Lat,
			Lng:          row.Delivery.Lng,
		},
		Payment: domain.PaymentInfo{
			Method:         domain.PaymentMethod(row.Payment.Method),
			CardNumber:     row.Payment.CardNumber,
			ExpiryDate:     row.Payment.ExpiryDate,
			CVV:            row.Payment.CVV,
			CardholderName: row.Payment.CardholderName,
		},
		Tracking: domain.Tracking{
			Status:           row.Tracking.Status,
			EstimatedArrival: row.Tracking.EstimatedArrival,
		},
	}
	for _, it := range row.Items {
		order.Items = append(order.Items, cartdomain.CartLine{
			Name:     it.Name,
			Price:    cartdomain.Money{Amount: it.Price, Currency: unit},
			Image:    it.Image,
			Quantity: it.Quantity,
		})
	}
	return order
}

package main

import (
	"errors"
	"fmt"

	checkoutapp "github.com/hungergenie/storefront/internal/checkout/app"
	"github.com/hungergenie/storefront/internal/notify"
	orderdomain "github.com/hungergenie/storefront/internal/order/domain"
	"github.com/hungergenie/storefront/internal/payment"
	"github.com/spf13/cobra"
)

func checkoutCmd(a **app) *cobra.Command {
	var (
		delivery orderdomain.DeliveryInfo
		method   string
		card     orderdomain.PaymentInfo
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from the current cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			pay := orderdomain.PaymentInfo{
				Method:         orderdomain.PaymentMethod(method),
				CardNumber:     card.CardNumber,
				ExpiryDate:     card.ExpiryDate,
				CVV:            card.CVV,
				CardholderName: card.CardholderName,
			}
			if err := validateForms(delivery, pay); err != nil {
				return err
			}

			order, err := (*a).checkout.PlaceOrder(ctx, delivery, pay)
			if errors.Is(err, checkoutapp.ErrEmptyCart) {
				(*a).notifier.Notify(ctx, "Your cart is empty!", notify.Error)
				return err
			}
			if err != nil {
				return err
			}

			(*a).notifier.Notify(ctx, "Order placed successfully!", notify.Success)

			if order.Payment.Method == orderdomain.PaymentPayPal {
				fmt.Fprintf(cmd.OutOrStdout(), "Scan to pay: %s\n", payment.PayPalLink(order.Total))
			}

			return printConfirmation(cmd, order)
		},
	}

	f := cmd.Flags()
	f.StringVar(&delivery.FullName, "name", "", "recipient full name")
	f.StringVar(&delivery.Phone, "phone", "", "contact phone")
	f.StringVar(&delivery.Address, "address", "", "street address")
	f.StringVar(&delivery.City, "city", "", "city")
	f.StringVar(&delivery.State, "state", "", "state")
	f.StringVar(&delivery.ZipCode, "zip", "", "zip code")
	f.StringVar(&delivery.Instructions, "instructions", "", "delivery instructions")
	f.Float64Var(&delivery.Lat, "lat", 0, "drop-off latitude")
	f.Float64Var(&delivery.Lng, "lng", 0, "drop-off longitude")
	f.StringVar(&method, "method", string(orderdomain.PaymentCashOnDelivery),
		"payment method: creditCard, debitCard, paypal or cashOnDelivery")
	f.StringVar(&card.CardNumber, "card-number", "", "card number (card methods)")
	f.StringVar(&card.ExpiryDate, "expiry", "", "card expiry MM/YY (card methods)")
	f.StringVar(&card.CVV, "cvv", "", "card CVV (card methods)")
	f.StringVar(&card.CardholderName, "card-name", "", "cardholder name (card methods)")

	return cmd
}

// validateForms enforces required-field presence only, the same checks the
// checkout form runs before submitting.
func validateForms(d orderdomain.DeliveryInfo, p orderdomain.PaymentInfo) error {
	required := map[string]string{
		"--name":    d.FullName,
		"--phone":   d.Phone,
		"--address": d.Address,
		"--city":    d.City,
		"--state":   d.State,
		"--zip":     d.ZipCode,
	}
	for flag, v := range required {
		if v == "" {
			return fmt.Errorf("%s is required", flag)
		}
	}

	switch p.Method {
	case orderdomain.PaymentCreditCard, orderdomain.PaymentDebitCard:
		if p.CardNumber == "" || p.ExpiryDate == "" || p.CVV == "" || p.CardholderName == "" {
			return fmt.Errorf("card details are required for %s", p.Method)
		}
	case orderdomain.PaymentPayPal, orderdomain.PaymentCashOnDelivery:
	default:
		return fmt.Errorf("unknown payment method %q", p.Method)
	}
	return nil
}

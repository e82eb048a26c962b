package main

import (
	"errors"
	"fmt"

	orderapp "github.com/hungergenie/storefront/internal/order/app"
	orderdomain "github.com/hungergenie/storefront/internal/order/domain"
	"github.com/hungergenie/storefront/internal/order/view"
	"github.com/spf13/cobra"
)

func orderCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Show the confirmation for the last placed order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := (*a).orders.Last(cmd.Context())
			if errors.Is(err, orderapp.ErrNoOrder) {
				// Missing order is not an error; fall back to the start page.
				fmt.Fprintln(cmd.OutOrStdout(), "No recent order. Try `storefront menu` to get started.")
				return nil
			}
			if err != nil {
				return err
			}
			return printConfirmation(cmd, order)
		},
	}
}

func printConfirmation(cmd *cobra.Command, order orderdomain.Order) error {
	out := cmd.OutOrStdout()
	v := view.Confirmation(order)

	fmt.Fprintln(out, "Order Information")
	fmt.Fprintf(out, "  Order ID:       %s\n", v.OrderID)
	fmt.Fprintf(out, "  Order Date:     %s\n", v.OrderDate)
	fmt.Fprintf(out, "  Payment Method: %s\n", v.PaymentMethod)

	fmt.Fprintln(out, "Delivery Address")
	fmt.Fprintf(out, "  %s\n", v.FullName)
	fmt.Fprintf(out, "  %s\n", v.AddressLine)
	fmt.Fprintf(out, "  %s\n", v.CityLine)
	fmt.Fprintf(out, "  Phone: %s\n", v.Phone)
	if v.Instructions != "" {
		fmt.Fprintf(out, "  Instructions: %s\n", v.Instructions)
	}

	fmt.Fprintln(out, "Order Items")
	for _, it := range v.Items {
		fmt.Fprintf(out, "  %-20s Qty: %-3d %s\n", it.Name, it.Quantity, it.LineTotal)
	}

	fmt.Fprintf(out, "Subtotal:        %s\n", v.Subtotal)
	fmt.Fprintf(out, "Delivery Charge: %s\n", v.DeliveryCharge)
	fmt.Fprintf(out, "Total:           %s\n", v.Total)
	return nil
}

func themeCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the display theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				if err := (*a).settings.SetTheme(ctx, args[0]); err != nil {
					return err
				}
			}
			theme, err := (*a).settings.Theme(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		},
	}
}

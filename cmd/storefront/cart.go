package main

import (
	"fmt"
	"strconv"

	cartapp "github.com/hungergenie/storefront/internal/cart/app"
	cartdomain "github.com/hungergenie/storefront/internal/cart/domain"
	"github.com/spf13/cobra"
)

func menuCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the product menu",
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := (*a).catalog.ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range products {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-16s %8s  %s\n",
					p.ID, p.Name, p.Price.Display(), p.Description)
			}
			return nil
		},
	}
}

func cartCmd(a **app) *cobra.Command {
	cart := &cobra.Command{
		Use:   "cart",
		Short: "Show and modify the shopping cart",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show cart lines and totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := (*a).cart.GetCart(cmd.Context())
			if err != nil {
				return err
			}
			return printCart(cmd, c)
		},
	}

	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one of a menu product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := (*a).catalog.GetProduct(ctx, args[0])
			if err != nil {
				return fmt.Errorf("product %q: %w", args[0], err)
			}
			if err := (*a).cart.AddToCart(ctx, cartdomain.Product{
				Name:  p.Name,
				Price: p.Price,
				Image: p.Image,
			}); err != nil {
				return err
			}
			return printBadge(cmd, *a)
		},
	}

	remove := &cobra.Command{
		Use:   "remove <product-name>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := (*a).cart.RemoveFromCart(ctx, args[0]); err != nil {
				return err
			}
			c, err := (*a).cart.GetCart(ctx)
			if err != nil {
				return err
			}
			return printCart(cmd, c)
		},
	}

	update := &cobra.Command{
		Use:   "update <product-name> <delta>",
		Short: "Change a line's quantity by delta; zero or less removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("delta %q is not an integer", args[1])
			}
			ctx := cmd.Context()
			if err := (*a).cart.UpdateQuantity(ctx, args[0], delta); err != nil {
				return err
			}
			c, err := (*a).cart.GetCart(ctx)
			if err != nil {
				return err
			}
			return printCart(cmd, c)
		},
	}

	cart.AddCommand(show, add, remove, update)
	return cart
}

func printCart(cmd *cobra.Command, c cartdomain.Cart) error {
	out := cmd.OutOrStdout()

	if c.Empty() {
		fmt.Fprintln(out, "Your cart is empty")
		return nil
	}

	for _, l := range c.Items {
		fmt.Fprintf(out, "%-20s %8s x %d = %s\n",
			l.Name, l.Price.Display(), l.Quantity, l.LineTotal().Display())
	}

	t := cartapp.ComputeTotals(c)
	fmt.Fprintf(out, "Subtotal:        %s\n", t.Subtotal.Display())
	fmt.Fprintf(out, "Delivery Charge: %s\n", t.DeliveryCharge.Display())
	fmt.Fprintf(out, "Total:           %s\n", t.Total.Display())
	return nil
}

func printBadge(cmd *cobra.Command, a *app) error {
	n, err := a.cart.ItemCount(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cart: %d item(s)\n", n)
	return nil
}

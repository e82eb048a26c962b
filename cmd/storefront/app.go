package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	cartapp "github.com/hungergenie/storefront/internal/cart/app"
	cartkv "github.com/hungergenie/storefront/internal/cart/infra/kv"
	catalogapp "github.com/hungergenie/storefront/internal/catalog/app"
	"github.com/hungergenie/storefront/internal/catalog/infra/menu"
	checkoutapp "github.com/hungergenie/storefront/internal/checkout/app"
	checkoutadapter "github.com/hungergenie/storefront/internal/checkout/infra/adapter"
	"github.com/hungergenie/storefront/internal/notify"
	orderapp "github.com/hungergenie/storefront/internal/order/app"
	orderkv "github.com/hungergenie/storefront/internal/order/infra/kv"
	"github.com/hungergenie/storefront/internal/settings"
	"github.com/hungergenie/storefront/pkg/config"
	"github.com/hungergenie/storefront/pkg/kvstore"
	"github.com/hungergenie/storefront/pkg/logger"
	"github.com/spf13/cobra"
)

type app struct {
	cfg config.Config
	log *slog.Logger
	out io.Writer

	store    *kvstore.SQLiteStore
	notifier notify.Notifier

	catalog  *catalogapp.Service
	cart     *cartapp.Service
	orders   *orderapp.Service
	checkout *checkoutapp.Service
	settings *settings.Service
}

func newApp(out io.Writer) (*app, error) {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	store, err := kvstore.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	notifier := notify.NewConsole(out)

	cartSvc := cartapp.NewService(cartkv.NewCartRepo(store), notifier)
	orderSvc := orderapp.NewService(orderkv.NewOrderRepo(store))

	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewOrderServiceWriter(orderSvc),
		cfg.CheckoutEnabled,
		log,
	)

	return &app{
		cfg:      cfg,
		log:      log,
		out:      out,
		store:    store,
		notifier: notifier,
		catalog:  catalogapp.NewService(menu.NewRepo()),
		cart:     cartSvc,
		orders:   orderSvc,
		checkout: checkoutSvc,
		settings: settings.NewService(store),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func rootCmd() *cobra.Command {
	var a *app

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "HungerGenie food ordering storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			a, err = newApp(cmd.OutOrStdout())
			return err
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a == nil {
				return nil
			}
			return a.Close()
		},
	}

	root.AddCommand(
		menuCmd(&a),
		cartCmd(&a),
		checkoutCmd(&a),
		orderCmd(&a),
		trackCmd(&a),
		themeCmd(&a),
	)

	return root
}

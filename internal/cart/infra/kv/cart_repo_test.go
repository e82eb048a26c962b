package kv_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/hungergenie/storefront/internal/cart/domain"
	kv "github.com/hungergenie/storefront/internal/cart/infra/kv"
	"github.com/hungergenie/storefront/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepo_LoadAbsent(t *testing.T) {
	repo := kv.NewCartRepo(kvstore.NewMemory())

	cart, err := repo.Load(t.Context())
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartRepo_LoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "}{"},
		{name: "wrong shape", payload: `{"cart":true}`},
		{name: "zero quantity line", payload: `[{"name":"Burger","price":"8.50","quantity":0}]`},
		{name: "negative price", payload: `[{"name":"Burger","price":"-1","quantity":1}]`},
		{name: "bad currency", payload: `[{"name":"Burger","price":"8.50","currency":"???","quantity":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kvstore.NewMemory()
			require.NoError(t, store.Set(t.Context(), kvstore.KeyCart, tt.payload))

			cart, err := kv.NewCartRepo(store).Load(t.Context())
			require.NoError(t, err, "malformed payloads never surface as errors")
			assert.Empty(t, cart.Items)
		})
	}
}

func TestCartRepo_RoundTrip(t *testing.T) {
	repo := kv.NewCartRepo(kvstore.NewMemory())
	ctx := t.Context()

	in := domain.Cart{Items: []domain.CartLine{
		{Name: gofakeit.ProductName(), Price: domain.USD("8.50"), Image: "images/a.jpg", Quantity: 2},
		{Name: gofakeit.ProductName(), Price: domain.USD("3.00"), Image: "images/b.jpg", Quantity: 1},
	}}

	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	for i := range in.Items {
		assert.Equal(t, in.Items[i].Name, out.Items[i].Name, "insertion order preserved")
		assert.Equal(t, in.Items[i].Image, out.Items[i].Image)
		assert.Equal(t, in.Items[i].Quantity, out.Items[i].Quantity)
		assert.True(t, in.Items[i].Price.Amount.Equal(out.Items[i].Price.Amount))
		assert.Equal(t, in.Items[i].Price.Currency, out.Items[i].Price.Currency)
	}
}

func TestCartRepo_NumericPricePayload(t *testing.T) {
	// Payloads written by the old web client carry bare numbers and no
	// currency field; they must still load.
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(t.Context(), kvstore.KeyCart,
		`[{"name":"Burger","price":8.5,"image":"images/burger.jpg","quantity":2}]`))

	cart, err := kv.NewCartRepo(store).Load(t.Context())
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "$8.50", cart.Items[0].Price.Display())
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

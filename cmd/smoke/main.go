// Command smoke drives a full storefront flow against a running backend:
// register, verify, browse, cart mutations, favorites and profile update. It
// stands in for the browser UI when poking at a backend by hand.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"thriftshop-client/internal/api"
	"thriftshop-client/internal/cartstore"
	"thriftshop-client/internal/config"
	"thriftshop-client/internal/sessionstore"
	"thriftshop-client/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[smoke] ", log.LstdFlags)

	creds := api.NewCredentials("")
	client := api.New(cfg.APIBaseURL, creds, cfg.HTTPTimeout)
	store := storage.NewMemory()
	session := sessionstore.New(client, creds, store, logger)
	cart := cartstore.New(store, logger)

	ctx := context.Background()

	email := fmt.Sprintf("smoke+%d@example.com", os.Getpid())
	if err := session.Register(ctx, api.SignupInput{
		Name:     "Smoke Tester",
		Email:    email,
		Password: "Sup3rSecret",
	}); err != nil {
		logger.Fatalf("register: %v (%s)", err, session.Err())
	}
	logger.Printf("registered and logged in as %s", session.User().Email)

	session.Init(ctx)
	if !session.IsAuthenticated() {
		logger.Fatalf("verify: session lost after init (%s)", session.Err())
	}

	items, err := client.ListItems(ctx, api.ItemFilters{})
	if err != nil {
		logger.Fatalf("list items: %v", err)
	}
	if len(items) == 0 {
		logger.Fatalf("list items: catalog is empty")
	}
	logger.Printf("catalog has %d items", len(items))

	filtered, err := client.ListItems(ctx, api.ItemFilters{Category: items[0].Category})
	if err != nil {
		logger.Fatalf("filtered list: %v", err)
	}
	logger.Printf("%d items in category %q", len(filtered), items[0].Category)

	item, err := client.GetItem(ctx, items[0].ID)
	if err != nil {
		logger.Fatalf("get item: %v", err)
	}

	cart.AddItem(*item, 1)
	cart.AddItem(*item, 2)
	cart.UpdateQuantity(item.ID, 15)
	logger.Printf("cart: %d items, total %s", cart.ItemCount(), cart.Total())
	cart.RemoveItem(item.ID)
	if cart.ItemCount() != 0 {
		logger.Fatalf("cart not empty after remove")
	}

	if err := client.AddFavorite(ctx, item.ID); err != nil {
		logger.Fatalf("add favorite: %v", err)
	}
	fav, err := client.CheckFavorite(ctx, item.ID)
	if err != nil || !fav {
		logger.Fatalf("check favorite: fav=%v err=%v", fav, err)
	}
	favs, err := client.ListFavorites(ctx)
	if err != nil {
		logger.Fatalf("list favorites: %v", err)
	}
	logger.Printf("%d favorites", len(favs))
	if err := client.RemoveFavorite(ctx, item.ID); err != nil {
		logger.Fatalf("remove favorite: %v", err)
	}

	if err := session.UpdateProfile(ctx, api.ProfileUpdate{Name: "Smoke Tester Jr"}); err != nil {
		logger.Fatalf("update profile: %v (%s)", err, session.Err())
	}
	logger.Printf("profile now %q", session.User().Name)

	session.Logout()
	if session.IsAuthenticated() {
		logger.Fatalf("still authenticated after logout")
	}
	logger.Printf("smoke flow complete")
}

package service

import (
	"errors"
	"testing"

	"storefront/internal/core/model"
	"storefront/internal/core/repository"
)

func newCartFixture(t *testing.T) (CartService, repository.ProductRepository, *model.Product) {
	t.Helper()

	productRepo := repository.NewInMemoryProductRepository()
	cartRepo := repository.NewInMemoryCartRepository()

	product := model.NewProduct("Kettle", "Stove-top kettle", 25.50, "kitchen", "", 5, "owner-1")
	if err := productRepo.Create(product); err != nil {
		t.Fatalf("seeding product failed: %v", err)
	}

	return NewCartService(cartRepo, productRepo), productRepo, product
}

// checkTotal asserts the stored total matches the fold over line items.
func checkTotal(t *testing.T, cart *model.Cart) {
	t.Helper()

	want := 0.0
	for _, item := range cart.Items {
		want += item.Price * float64(item.Qty)
	}
	if cart.TotalPrice != want {
		t.Errorf("TotalPrice = %v, want %v", cart.TotalPrice, want)
	}
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	svc, _, _ := newCartFixture(t)

	first, err := svc.GetOrCreate("user-1")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if len(first.Items) != 0 || first.TotalPrice != 0 {
		t.Errorf("new cart not empty: %d items, total %v", len(first.Items), first.TotalPrice)
	}

	second, err := svc.GetOrCreate("user-1")
	if err != nil {
		t.Fatalf("second GetOrCreate failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("GetOrCreate created a second cart: %s vs %s", second.ID, first.ID)
	}
}

func TestAddItemMergesLines(t *testing.T) {
	svc, _, product := newCartFixture(t)

	for _, qty := range []int{2, 1, 1} {
		if err := svc.AddItem("user-1", product.ID, qty); err != nil {
			t.Fatalf("AddItem(%d) failed: %v", qty, err)
		}

		cart, err := svc.GetOrCreate("user-1")
		if err != nil {
			t.Fatalf("GetOrCreate failed: %v", err)
		}
		checkTotal(t, cart)
	}

	cart, _ := svc.GetOrCreate("user-1")
	if len(cart.Items) != 1 {
		t.Fatalf("cart has %d line items, want 1", len(cart.Items))
	}
	if cart.Items[0].Qty != 4 {
		t.Errorf("merged quantity = %d, want 4", cart.Items[0].Qty)
	}
	if cart.Items[0].Name != product.Name || cart.Items[0].Price != product.Price {
		t.Errorf("line item did not snapshot product fields: %+v", cart.Items[0])
	}
}

func TestAddItemRejections(t *testing.T) {
	svc, _, product := newCartFixture(t)

	tests := []struct {
		name      string
		productID string
		qty       int
		wantErr   error
	}{
		{"zero quantity", product.ID, 0, ErrValidation},
		{"negative quantity", product.ID, -2, ErrValidation},
		{"missing product", "no-such-product", 1, ErrNotFound},
		{"insufficient stock", product.ID, 6, ErrOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.AddItem("user-1", tt.productID, tt.qty); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddItem error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// None of the rejected calls may have touched the cart.
	cart, err := svc.GetOrCreate("user-1")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if len(cart.Items) != 0 || cart.TotalPrice != 0 {
		t.Errorf("rejected adds mutated the cart: %+v", cart)
	}
}

func TestUpdateItemQty(t *testing.T) {
	tests := []struct {
		name     string
		qty      int
		wantGone bool
		wantQty  int
	}{
		{"set exactly", 7, false, 7},
		{"zero removes", 0, true, 0},
		{"negative removes", -5, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, product := newCartFixture(t)
			if err := svc.AddItem("user-1", product.ID, 2); err != nil {
				t.Fatalf("AddItem failed: %v", err)
			}
			cart, _ := svc.GetOrCreate("user-1")
			itemID := cart.Items[0].ID

			if err := svc.UpdateItemQty("user-1", itemID, tt.qty); err != nil {
				t.Fatalf("UpdateItemQty failed: %v", err)
			}

			cart, _ = svc.GetOrCreate("user-1")
			checkTotal(t, cart)
			if tt.wantGone {
				if len(cart.Items) != 0 {
					t.Errorf("item not removed: %+v", cart.Items)
				}
				return
			}
			if len(cart.Items) != 1 || cart.Items[0].Qty != tt.wantQty {
				t.Errorf("items = %+v, want single line with qty %d", cart.Items, tt.wantQty)
			}
		})
	}
}

func TestUpdateUnknownItemIsNoOp(t *testing.T) {
	svc, _, product := newCartFixture(t)
	if err := svc.AddItem("user-1", product.ID, 2); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if err := svc.UpdateItemQty("user-1", "no-such-item", 9); err != nil {
		t.Fatalf("UpdateItemQty on unknown item returned error: %v", err)
	}

	cart, _ := svc.GetOrCreate("user-1")
	if len(cart.Items) != 1 || cart.Items[0].Qty != 2 {
		t.Errorf("unknown-item update mutated the cart: %+v", cart.Items)
	}
	checkTotal(t, cart)
}

func TestRemoveItem(t *testing.T) {
	svc, productRepo, product := newCartFixture(t)

	other := model.NewProduct("Mug", "Ceramic mug", 8, "kitchen", "", 10, "owner-1")
	if err := productRepo.Create(other); err != nil {
		t.Fatalf("seeding product failed: %v", err)
	}

	if err := svc.AddItem("user-1", product.ID, 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := svc.AddItem("user-1", other.ID, 3); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	cart, _ := svc.GetOrCreate("user-1")
	if err := svc.RemoveItem("user-1", cart.Items[0].ID); err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}

	cart, _ = svc.GetOrCreate("user-1")
	if len(cart.Items) != 1 || cart.Items[0].ProductID != other.ID {
		t.Errorf("items after removal = %+v", cart.Items)
	}
	checkTotal(t, cart)

	// Removing an ID that is not there changes nothing and raises nothing.
	if err := svc.RemoveItem("user-1", "no-such-item"); err != nil {
		t.Fatalf("RemoveItem on unknown item returned error: %v", err)
	}
	cart, _ = svc.GetOrCreate("user-1")
	if len(cart.Items) != 1 {
		t.Errorf("unknown-item removal mutated the cart: %+v", cart.Items)
	}
}

func TestClear(t *testing.T) {
	svc, _, product := newCartFixture(t)

	if err := svc.AddItem("user-1", product.ID, 3); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := svc.Clear("user-1"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	cart, _ := svc.GetOrCreate("user-1")
	if len(cart.Items) != 0 || cart.TotalPrice != 0 {
		t.Errorf("cart not cleared: %+v", cart)
	}

	// Clearing a user with no cart is a no-op.
	if err := svc.Clear("user-without-cart"); err != nil {
		t.Fatalf("Clear without cart returned error: %v", err)
	}
}

func TestCartLifecycle(t *testing.T) {
	svc, _, product := newCartFixture(t)

	if err := svc.AddItem("user-1", product.ID, 2); err != nil {
		t.Fatalf("AddItem(2) failed: %v", err)
	}
	cart, _ := svc.GetOrCreate("user-1")
	if len(cart.Items) != 1 || cart.Items[0].Qty != 2 {
		t.Fatalf("after first add: %+v", cart.Items)
	}
	if want := 2 * product.Price; cart.TotalPrice != want {
		t.Errorf("total = %v, want %v", cart.TotalPrice, want)
	}

	if err := svc.AddItem("user-1", product.ID, 1); err != nil {
		t.Fatalf("AddItem(1) failed: %v", err)
	}
	cart, _ = svc.GetOrCreate("user-1")
	if cart.Items[0].Qty != 3 {
		t.Errorf("qty after second add = %d, want 3", cart.Items[0].Qty)
	}
	if want := 3 * product.Price; cart.TotalPrice != want {
		t.Errorf("total = %v, want %v", cart.TotalPrice, want)
	}

	if err := svc.UpdateItemQty("user-1", cart.Items[0].ID, 0); err != nil {
		t.Fatalf("UpdateItemQty(0) failed: %v", err)
	}
	cart, _ = svc.GetOrCreate("user-1")
	if len(cart.Items) != 0 || cart.TotalPrice != 0 {
		t.Errorf("after zeroing qty: %+v", cart)
	}
}

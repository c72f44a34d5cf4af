package services_test

import (
	"errors"
	"testing"

	"github.com/shashiranjanraj/vyapari/app/models"
	"github.com/shashiranjanraj/vyapari/app/services"
)

func TestProductCreateAndList(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	user := seedUser(t, db, "inv@example.com")
	svc := services.NewProductService(r.products, r.categories)

	first, err := svc.Create(user.ID, services.ProductInput{Name: "Rice", Price: dec("12.50")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.Stock != 0 {
		t.Errorf("stock = %d, want default 0", first.Stock)
	}

	if _, err := svc.Create(user.ID, services.ProductInput{Name: "Oil", Price: dec("4.25"), Stock: 10}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	products, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Oil" {
		t.Errorf("expected newest first, got %q", products[0].Name)
	}
}

func TestProductUpdateOwnership(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	svc := services.NewProductService(r.products, r.categories)

	product, err := svc.Create(owner.ID, services.ProductInput{Name: "Rice", Price: dec("12.50")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	in := services.ProductInput{Name: "Rice 5kg", Price: dec("13.00"), Stock: 5}

	// Someone else's row is forbidden, a missing row is not found.
	if _, err := svc.Update(other.ID, product.ID, in); !errors.Is(err, services.ErrForbidden) {
		t.Errorf("foreign update = %v, want ErrForbidden", err)
	}
	if _, err := svc.Update(owner.ID, 9999, in); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("missing update = %v, want ErrNotFound", err)
	}

	updated, err := svc.Update(owner.ID, product.ID, in)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Name != "Rice 5kg" || updated.Stock != 5 {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestProductDelete(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	svc := services.NewProductService(r.products, r.categories)

	product, err := svc.Create(owner.ID, services.ProductInput{Name: "Rice", Price: dec("12.50")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(other.ID, product.ID); !errors.Is(err, services.ErrForbidden) {
		t.Errorf("foreign delete = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(owner.ID, product.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.Delete(owner.ID, product.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestProductRejectsForeignCategory(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	svc := services.NewProductService(r.products, r.categories)

	foreign := models.Category{UserID: other.ID, Name: "Their Shelf"}
	if err := db.Create(&foreign).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	_, err := svc.Create(owner.ID, services.ProductInput{
		Name: "Rice", Price: dec("12.50"), CategoryID: &foreign.ID,
	})
	ve, ok := services.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := ve.Fields["category_id"]; !ok {
		t.Errorf("expected category_id field error, got %v", ve.Fields)
	}
}

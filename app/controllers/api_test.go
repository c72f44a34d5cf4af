package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/vyapari/app/models"
	"github.com/shashiranjanraj/vyapari/internal/server"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.Customer{}, &models.Voucher{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return server.NewHandler(db)
}

func do(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return envelope.Data
}

func loginAs(t *testing.T, h http.Handler, email string) string {
	t.Helper()

	rec := do(t, h, http.MethodPost, "/api/register", "", map[string]string{
		"name": "Trader", "email": email, "password": "secret-pass",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email": email, "password": "secret-pass",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: %d %s", rec.Code, rec.Body.String())
	}

	token, _ := decodeData(t, rec)["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}

func TestAuthFlow(t *testing.T) {
	h := newTestHandler(t)

	// Register, duplicate email conflicts.
	rec := do(t, h, http.MethodPost, "/api/register", "", map[string]string{
		"name": "Asha", "email": "asha@example.com", "password": "secret-pass",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, h, http.MethodPost, "/api/register", "", map[string]string{
		"name": "Asha", "email": "asha@example.com", "password": "secret-pass",
	})
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate register = %d, want 409", rec.Code)
	}

	// Short password fails validation with a field message.
	rec = do(t, h, http.MethodPost, "/api/register", "", map[string]string{
		"name": "B", "email": "b@example.com", "password": "short",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("weak register = %d, want 422", rec.Code)
	}

	// Wrong password is a 401.
	rec = do(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email": "asha@example.com", "password": "wrong-pass",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad login = %d, want 401", rec.Code)
	}

	// Protected routes reject missing tokens.
	rec = do(t, h, http.MethodGet, "/api/products", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token = %d, want 401", rec.Code)
	}
	rec = do(t, h, http.MethodGet, "/api/products", "garbage-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token = %d, want 401", rec.Code)
	}
}

func TestInventoryFlow(t *testing.T) {
	h := newTestHandler(t)
	token := loginAs(t, h, "shop@example.com")

	// Create a category and a product in it.
	rec := do(t, h, http.MethodPost, "/api/categories", token, map[string]string{"name": "Grocery"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category: %d %s", rec.Code, rec.Body.String())
	}
	categoryID := decodeData(t, rec)["ID"]

	rec = do(t, h, http.MethodPost, "/api/products", token, map[string]interface{}{
		"product_name": "Rice 5kg", "price": "12.50", "stock": 40, "category_id": categoryID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create product: %d %s", rec.Code, rec.Body.String())
	}

	// Missing price is a field-level 422.
	rec = do(t, h, http.MethodPost, "/api/products", token, map[string]interface{}{
		"product_name": "No Price",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("product without price = %d, want 422", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/api/products", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list products: %d", rec.Code)
	}
}

func TestVoucherFlow(t *testing.T) {
	h := newTestHandler(t)
	token := loginAs(t, h, "voucher@example.com")

	rec := do(t, h, http.MethodPost, "/api/customers", token, map[string]string{"name": "Asha Stores"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create customer: %d %s", rec.Code, rec.Body.String())
	}
	customerID := decodeData(t, rec)["ID"]

	rec = do(t, h, http.MethodPost, "/api/products", token, map[string]interface{}{
		"product_name": "Rice", "price": "10.00", "stock": 50,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create product: %d %s", rec.Code, rec.Body.String())
	}
	productID := decodeData(t, rec)["ID"]

	// Claimed total disagrees with the derived one: rejected.
	rec = do(t, h, http.MethodPost, "/api/vouchers", token, map[string]interface{}{
		"voucher_no": "INV-1", "customer_id": customerID, "date": "2026-08-28",
		"total": "999.99",
		"items": []map[string]interface{}{{"product_id": productID, "quantity": 2}},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("mismatched total = %d, want 422: %s", rec.Code, rec.Body.String())
	}

	// Correct create, then a duplicate number conflicts.
	body := map[string]interface{}{
		"voucher_no": "INV-1", "customer_id": customerID, "date": "2026-08-28",
		"paid_amount": "5.00", "status": "PARTIAL",
		"items": []map[string]interface{}{{"product_id": productID, "quantity": 2}},
	}
	rec = do(t, h, http.MethodPost, "/api/vouchers", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create voucher: %d %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	if data["total"] != "20" && data["total"] != "20.00" {
		t.Errorf("voucher total = %v, want 20", data["total"])
	}
	if data["balance"] != "15" && data["balance"] != "15.00" {
		t.Errorf("voucher balance = %v, want 15", data["balance"])
	}

	rec = do(t, h, http.MethodPost, "/api/vouchers", token, body)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate voucher_no = %d, want 409", rec.Code)
	}

	// Another user cannot see this voucher list.
	otherToken := loginAs(t, h, "rival@example.com")
	rec = do(t, h, http.MethodGet, "/api/vouchers", otherToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("rival list: %d", rec.Code)
	}
	var envelope struct {
		Data []interface{} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 0 {
		t.Errorf("rival sees %d vouchers, want 0", len(envelope.Data))
	}

	// Dashboard reflects the sale.
	rec = do(t, h, http.MethodGet, "/api/dashboard", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard: %d %s", rec.Code, rec.Body.String())
	}
	summary := decodeData(t, rec)
	if summary["voucher_count"] != float64(1) {
		t.Errorf("voucher_count = %v, want 1", summary["voucher_count"])
	}
	if summary["revenue"] != "20" && summary["revenue"] != "20.00" {
		t.Errorf("revenue = %v, want 20", summary["revenue"])
	}
}

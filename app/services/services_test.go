package services_test

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shashiranjanraj/vyapari/app/models"
	"github.com/shashiranjanraj/vyapari/app/repositories"
)

// newTestDB opens an isolated in-memory sqlite database and migrates the
// schema. The DSN is keyed by test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.Voucher{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

type repos struct {
	users      *repositories.UserRepository
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
	customers  *repositories.CustomerRepository
	vouchers   *repositories.VoucherRepository
}

func newRepos(db *gorm.DB) repos {
	return repos{
		users:      repositories.NewUserRepository(db),
		products:   repositories.NewProductRepository(db),
		categories: repositories.NewCategoryRepository(db),
		customers:  repositories.NewCustomerRepository(db),
		vouchers:   repositories.NewVoucherRepository(db),
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "Trader", Email: email, Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedCustomer(t *testing.T, db *gorm.DB, userID uint, name string) models.Customer {
	t.Helper()
	customer := models.Customer{UserID: userID, Name: name}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}

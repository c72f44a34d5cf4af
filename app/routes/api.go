// Package routes mounts the API surface onto the named-route router.
package routes

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vyapari/app/controllers"
	"github.com/shashiranjanraj/vyapari/app/repositories"
	"github.com/shashiranjanraj/vyapari/app/services"
	"github.com/shashiranjanraj/vyapari/pkg/middleware"
	"github.com/shashiranjanraj/vyapari/pkg/router"
)

// RegisterAPI wires repositories, services and controllers, then mounts
// every endpoint under /api. Everything past login requires a bearer token.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	users := repositories.NewUserRepository(db)
	products := repositories.NewProductRepository(db)
	categories := repositories.NewCategoryRepository(db)
	customers := repositories.NewCustomerRepository(db)
	vouchers := repositories.NewVoucherRepository(db)

	authService := services.NewAuthService(users)
	productService := services.NewProductService(products, categories)
	categoryService := services.NewCategoryService(categories)
	customerService := services.NewCustomerService(customers)
	voucherService := services.NewVoucherService(vouchers, products, customers)
	dashboardService := services.NewDashboardService(users, products, customers, vouchers)

	authController := controllers.NewAuthController(authService)
	profileController := controllers.NewProfileController(authService)
	productController := controllers.NewProductController(productService)
	categoryController := controllers.NewCategoryController(categoryService)
	customerController := controllers.NewCustomerController(customerService)
	voucherController := controllers.NewVoucherController(voucherService)
	dashboardController := controllers.NewDashboardController(dashboardService)
	mediaController := controllers.NewMediaController()

	api := r.Group("/api")
	api.Post("/register", "auth.register", authController.Register)
	api.Post("/login", "auth.login", authController.Login)
	api.Post("/reset-password", "auth.reset", authController.ResetPassword)

	protected := api.Group("", middleware.Auth)

	protected.Get("/profile", "profile.show", profileController.Show)
	protected.Post("/profile/name", "profile.name", profileController.ChangeName)
	protected.Post("/profile/password", "profile.password", profileController.ChangePassword)
	protected.Post("/profile/image", "profile.image", profileController.ChangeImage)

	protected.Get("/products", "products.index", productController.Index)
	protected.Post("/products", "products.store", productController.Store)
	protected.Put("/products/{id}", "products.update", productController.Update)
	protected.Delete("/products/{id}", "products.destroy", productController.Destroy)

	protected.Get("/categories", "categories.index", categoryController.Index)
	protected.Post("/categories", "categories.store", categoryController.Store)
	protected.Delete("/categories/{id}", "categories.destroy", categoryController.Destroy)

	protected.Get("/customers", "customers.index", customerController.Index)
	protected.Get("/customers/{id}", "customers.show", customerController.Show)
	protected.Post("/customers", "customers.store", customerController.Store)

	protected.Get("/vouchers", "vouchers.index", voucherController.Index)
	protected.Get("/vouchers/{id}", "vouchers.show", voucherController.Show)
	protected.Post("/vouchers", "vouchers.store", voucherController.Store)

	protected.Get("/dashboard", "dashboard.summary", dashboardController.Summary)

	protected.Post("/media", "media.upload", mediaController.Upload)
}

package app

import (
	"gorm.io/gorm"

	"github.com/simp-lee/storefront/internal/config"
	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/ingest"
	"github.com/simp-lee/storefront/internal/module/customer"
	"github.com/simp-lee/storefront/internal/module/dataload"
	"github.com/simp-lee/storefront/internal/module/order"
	"github.com/simp-lee/storefront/internal/module/product"
	"github.com/simp-lee/storefront/internal/module/seller"
)

// Services holds the resource services shared by the HTTP modules and the
// bulk loader.
type Services struct {
	Customers domain.CustomerService
	Sellers   domain.SellerService
	Products  domain.ProductService
	Orders    domain.OrderService
}

// NewServices wires repository → service for every resource on db.
func NewServices(db *gorm.DB) Services {
	return Services{
		Customers: customer.NewCustomerService(customer.NewCustomerRepository(db)),
		Sellers:   seller.NewSellerService(seller.NewSellerRepository(db)),
		Products:  product.NewProductService(product.NewProductRepository(db)),
		Orders:    order.NewOrderService(order.NewOrderRepository(db)),
	}
}

// Loader returns a bulk loader over the configured datasets.
func (s Services) Loader(cfg config.IngestConfig) *ingest.Loader {
	return ingest.NewLoader(cfg, s.Customers, s.Sellers, s.Products, s.Orders)
}

// Modules wires handler → module for every resource plus the data load
// endpoint backed by runner.
func (s Services) Modules(runner dataload.Runner) []Module {
	return []Module{
		customer.NewModule(customer.NewCustomerHandler(s.Customers)),
		seller.NewModule(seller.NewSellerHandler(s.Sellers)),
		product.NewModule(product.NewProductHandler(s.Products)),
		order.NewModule(order.NewOrderHandler(s.Orders)),
		dataload.NewModule(dataload.NewLoadHandler(runner)),
	}
}

// Migrate creates or updates the tables of every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(domain.Models()...)
}

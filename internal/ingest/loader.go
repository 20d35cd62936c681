package ingest

import (
	"context"
	"log/slog"

	"github.com/simp-lee/logger"

	"github.com/simp-lee/storefront/internal/config"
	"github.com/simp-lee/storefront/internal/domain"
)

// step ingests one dataset.
type step struct {
	name string
	path string
	run  func(ctx context.Context) (Result, error)
}

// csvStep binds a CSV dataset of T to its dispatch function.
func csvStep[T any](name, path string, dispatch DispatchFunc[T]) step {
	return step{
		name: name,
		path: path,
		run: func(ctx context.Context) (Result, error) {
			open := func() (Source[T], error) { return OpenCSV[T](path) }
			return Ingest(ctx, open, dispatch)
		},
	}
}

// Loader loads the configured datasets through the resource services.
type Loader struct {
	cfg       config.IngestConfig
	customers domain.CustomerService
	sellers   domain.SellerService
	products  domain.ProductService
	orders    domain.OrderService
}

// NewLoader creates a Loader. It panics if any service is nil.
func NewLoader(
	cfg config.IngestConfig,
	customers domain.CustomerService,
	sellers domain.SellerService,
	products domain.ProductService,
	orders domain.OrderService,
) *Loader {
	if customers == nil || sellers == nil || products == nil || orders == nil {
		panic("ingest: NewLoader requires non-nil services")
	}
	return &Loader{
		cfg:       cfg,
		customers: customers,
		sellers:   sellers,
		products:  products,
		orders:    orders,
	}
}

// steps lists the datasets in foreign-key order: orders reference
// customers, and order items reference orders, products and sellers.
func (l *Loader) steps() []step {
	return []step{
		csvStep("customers", l.cfg.Path(l.cfg.Customers), func(ctx context.Context, r domain.CreateCustomerRequest) error {
			_, err := l.customers.CreateCustomer(ctx, r)
			return err
		}),
		csvStep("sellers", l.cfg.Path(l.cfg.Sellers), func(ctx context.Context, r domain.CreateSellerRequest) error {
			_, err := l.sellers.CreateSeller(ctx, r)
			return err
		}),
		csvStep("products", l.cfg.Path(l.cfg.Products), func(ctx context.Context, r domain.CreateProductRequest) error {
			_, err := l.products.CreateProduct(ctx, r)
			return err
		}),
		csvStep("orders", l.cfg.Path(l.cfg.Orders), func(ctx context.Context, r domain.CreateOrderRequest) error {
			_, err := l.orders.CreateOrder(ctx, r)
			return err
		}),
		csvStep("order_items", l.cfg.Path(l.cfg.OrderItems), func(ctx context.Context, r domain.OrderItemRecord) error {
			_, err := l.orders.AddItem(ctx, r.OrderID, r.AddOrderItemRequest)
			return err
		}),
	}
}

// Run ingests every configured dataset in order and returns the combined
// tally. Unconfigured datasets are skipped. A dataset that cannot be opened
// stops the run; the returned Result still holds what earlier datasets
// processed.
func (l *Loader) Run(ctx context.Context) (Result, error) {
	var total Result
	for _, s := range l.steps() {
		if s.path == "" {
			slog.DebugContext(ctx, "dataset not configured, skipping", slog.String("dataset", s.name))
			continue
		}

		stepCtx := logger.WithContextAttrs(ctx, slog.String("dataset", s.name))
		res, err := s.run(stepCtx)
		total.Add(res)
		if err != nil {
			return total, err
		}
		slog.InfoContext(stepCtx, "dataset loaded",
			slog.String("path", s.path),
			slog.Int("success_count", res.Success),
			slog.Int("error_count", res.Errors),
		)
	}

	slog.InfoContext(ctx, "data load processed",
		slog.Int("success_count", total.Success),
		slog.Int("error_count", total.Errors),
	)
	return total, nil
}

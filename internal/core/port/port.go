package port

import (
	"context"

	"github.com/niksmo/warehouse/internal/core/domain"
)

// Inbound ports implemented by the core services.
type (
	Authenticator interface {
		Authenticate(ctx context.Context, username, password string) (token string, err error)
	}

	Catalog interface {
		ListProducts(ctx context.Context, search string, page, pageSize int) (domain.Page[domain.Product], error)
		CreateProduct(context.Context, domain.ProductDraft) (id int, err error)
		UpdateProduct(context.Context, domain.ProductUpdate) error
		ArchiveProduct(ctx context.Context, id int) error
	}

	Orders interface {
		ListOrders(ctx context.Context, page, pageSize int) (domain.Page[domain.Order], error)
		CreateOrder(context.Context, domain.OrderDraft) (id int, err error)
		CompleteOrder(ctx context.Context, id int) error
		CancelOrder(ctx context.Context, id int) error
	}

	ImageUploader interface {
		UploadImage(ctx context.Context, data, filename string) (domain.Image, error)
	}

	Reporter interface {
		Dashboard(context.Context) (domain.Dashboard, error)
		StockReport(ctx context.Context, search string) ([]domain.StockReportRow, error)
		RecentOrders(context.Context) ([]domain.RecentOrderRow, error)
	}
)

// Outbound ports implemented by the adapters.
type (
	ProductsStorage interface {
		List(context.Context) ([]domain.Product, error)
		Create(context.Context, domain.Product) (id int, err error)
		Mutate(ctx context.Context, id int, fn func(*domain.Product) error) error
	}

	OrdersStorage interface {
		List(context.Context) ([]domain.Order, error)
		Create(context.Context, domain.Order) (id int, err error)
		Mutate(ctx context.Context, id int, fn func(*domain.Order) error) error
	}

	ImagesStorage interface {
		Store(context.Context, domain.Image) error
	}

	ReportsStorage interface {
		Dashboard(context.Context) (domain.Dashboard, error)
		ProductsStock(ctx context.Context, search string) ([]domain.StockReportRow, error)
		RecentOrders(context.Context) ([]domain.RecentOrderRow, error)
	}

	OrderEventsProducer interface {
		ProduceOrderEvent(context.Context, domain.OrderEvent) error
	}

	TokenIssuer interface {
		Issue(subject string) (string, error)
	}
)

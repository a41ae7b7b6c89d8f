package httphandler

import (
	"time"

	"github.com/niksmo/warehouse/internal/core/domain"
)

const (
	defaultCurrencyCode     = "RUB"
	defaultMinStock         = 10
	defaultCategoryName     = "Прочее"
	defaultManufacturerName = "Общий производитель"
	defaultProductName      = "Товар"
)

type (
	Product struct {
		ID               int             `json:"id"`
		VendorCode       string          `json:"vendorCode"`
		Name             string          `json:"name"`
		Description      string          `json:"description"`
		ImageURL         *string         `json:"imageUrl"`
		PriceTypeValue   float64         `json:"priceTypeValue"`
		CurrencyCode     string          `json:"currencyCode"`
		MinStock         int             `json:"minStock"`
		IsArchive        bool            `json:"isArchive"`
		CreatedOnUTC     time.Time       `json:"createdOnUtc"`
		ModifiedOnUTC    time.Time       `json:"modifiedOnUtc"`
		CategoryName     string          `json:"categoryName"`
		ManufacturerName string          `json:"manufacturerName"`
		TotalQuantity    int             `json:"totalQuantity"`
		IsLowStock       bool            `json:"isLowStock"`
		Barcodes         []string        `json:"barcodes"`
		Locations        []StockLocation `json:"locations"`
	}

	StockLocation struct {
		LocationID     int       `json:"locationId"`
		Quantity       int       `json:"quantity"`
		LocationName   string    `json:"locationName"`
		LastUpdatedUTC time.Time `json:"lastUpdatedUtc"`
	}

	ProductsPage struct {
		Products   []Product `json:"products"`
		Total      int       `json:"total"`
		Page       int       `json:"page"`
		PageSize   int       `json:"pageSize"`
		TotalPages int       `json:"totalPages"`
	}

	CreateProduct struct {
		VendorCode       string   `json:"vendorCode"`
		Name             string   `json:"name"`
		PriceTypeValue   float64  `json:"priceTypeValue"`
		Description      string   `json:"description"`
		ImageURL         string   `json:"imageUrl"`
		CurrencyCode     string   `json:"currencyCode"`
		MinStock         *int     `json:"minStock"`
		CategoryName     string   `json:"categoryName"`
		ManufacturerName string   `json:"manufacturerName"`
		Barcodes         []string `json:"barcodes"`
	}

	UpdateProduct struct {
		ID             int     `json:"id"`
		VendorCode     string  `json:"vendorCode"`
		Name           string  `json:"name"`
		PriceTypeValue float64 `json:"priceTypeValue"`
		Description    string  `json:"description"`
		ImageURL       string  `json:"imageUrl"`
		CurrencyCode   string  `json:"currencyCode"`
		MinStock       *int    `json:"minStock"`
	}

	ArchiveProduct struct {
		ID int `json:"id"`
	}
)

type (
	Order struct {
		ID                int         `json:"id"`
		Username          string      `json:"username"`
		PaymentType       string      `json:"paymentType"`
		Comment           string      `json:"comment"`
		LoyaltyCardNumber *string     `json:"loyaltyCardNumber"`
		TotalAmount       float64     `json:"totalAmount"`
		Status            string      `json:"status"`
		CreatedOnUTC      time.Time   `json:"createdOnUtc"`
		CompletedOnUTC    *time.Time  `json:"completedOnUtc"`
		Products          []OrderLine `json:"products"`
	}

	OrderLine struct {
		ProductID          int     `json:"productId"`
		ProductName        string  `json:"productName"`
		Quantity           int     `json:"quantity"`
		UnitPrice          float64 `json:"unitPrice"`
		PurchasePrice      float64 `json:"purchasePrice"`
		TotalPrice         float64 `json:"totalPrice"`
		TotalPurchasePrice float64 `json:"totalPurchasePrice"`
		Profit             float64 `json:"profit"`
	}

	OrdersPage struct {
		Orders     []Order `json:"orders"`
		Total      int     `json:"total"`
		Page       int     `json:"page"`
		PageSize   int     `json:"pageSize"`
		TotalPages int     `json:"totalPages"`
	}

	// PostOrder carries both the lifecycle actions and the order
	// creation payload: the action field selects the branch.
	PostOrder struct {
		Action  string `json:"action"`
		OrderID int    `json:"orderId"`
		CreateOrder
	}

	CreateOrder struct {
		Username          string          `json:"username"`
		PaymentType       string          `json:"paymentType"`
		Comment           string          `json:"comment"`
		LoyaltyCardNumber string          `json:"loyaltyCardNumber"`
		Products          []OrderLineData `json:"products"`
	}

	OrderLineData struct {
		ProductID     *int     `json:"productId"`
		ProductName   string   `json:"productName"`
		Quantity      *int     `json:"quantity"`
		UnitPrice     *float64 `json:"unitPrice"`
		PurchasePrice *float64 `json:"purchasePrice"`
	}
)

type (
	Credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	AccessToken struct {
		AccessToken string `json:"access_token"`
	}
)

type (
	UploadImage struct {
		Image    string `json:"image"`
		Filename string `json:"filename"`
	}

	UploadedImage struct {
		URL string `json:"url"`
		ID  string `json:"id"`
	}
)

type (
	Dashboard struct {
		Stats        DashboardStats  `json:"stats"`
		SalesData    []MonthlySales  `json:"salesData"`
		CategoryData []CategoryCount `json:"categoryData"`
	}

	DashboardStats struct {
		TotalProducts   int `json:"total_products"`
		ActiveOrders    int `json:"active_orders"`
		ActiveOutlets   int `json:"active_outlets"`
		RecentWriteOffs int `json:"recent_write_offs"`
	}

	MonthlySales struct {
		Month  string  `json:"month"`
		Sales  float64 `json:"sales"`
		Orders int     `json:"orders"`
	}

	CategoryCount struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	StockReport struct {
		Products []StockReportRow `json:"products"`
	}

	StockReportRow struct {
		ID       int     `json:"id"`
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Stock    int     `json:"stock"`
		Price    float64 `json:"price"`
		Status   string  `json:"status"`
	}

	RecentOrders struct {
		Orders []RecentOrderRow `json:"orders"`
	}

	RecentOrderRow struct {
		ID        int    `json:"id"`
		IDDisplay string `json:"id_display"`
		Outlet    string `json:"outlet"`
		Type      string `json:"type"`
		Items     int    `json:"items"`
		Date      string `json:"date"`
		Status    string `json:"status"`
	}
)

type (
	CreatedID struct {
		ID int `json:"id"`
	}

	Success struct {
		Success bool `json:"success"`
	}
)

func toProduct(v domain.Product) Product {
	p := Product{
		ID:               v.ID,
		VendorCode:       v.VendorCode,
		Name:             v.Name,
		Description:      v.Description,
		PriceTypeValue:   v.Price,
		CurrencyCode:     v.CurrencyCode,
		MinStock:         v.MinStock,
		IsArchive:        v.IsArchive,
		CreatedOnUTC:     v.CreatedOnUTC,
		ModifiedOnUTC:    v.ModifiedOnUTC,
		CategoryName:     v.CategoryName,
		ManufacturerName: v.ManufacturerName,
		TotalQuantity:    v.TotalQuantity(),
		IsLowStock:       v.IsLowStock(),
		Barcodes:         []string{},
		Locations:        []StockLocation{},
	}

	if v.ImageURL != "" {
		p.ImageURL = &v.ImageURL
	}
	if len(v.Barcodes) > 0 {
		p.Barcodes = v.Barcodes
	}
	for _, l := range v.Locations {
		p.Locations = append(p.Locations, StockLocation{
			LocationID:     l.LocationID,
			Quantity:       l.Quantity,
			LocationName:   l.LocationName,
			LastUpdatedUTC: l.LastUpdatedUTC,
		})
	}
	return p
}

func toOrder(v domain.Order) Order {
	o := Order{
		ID:           v.ID,
		Username:     v.Username,
		PaymentType:  string(v.PaymentType),
		Comment:      v.Comment,
		TotalAmount:  v.TotalAmount,
		Status:       string(v.Status),
		CreatedOnUTC: v.CreatedOnUTC,
		Products:     []OrderLine{},
	}

	if v.LoyaltyCardNumber != "" {
		o.LoyaltyCardNumber = &v.LoyaltyCardNumber
	}
	if !v.CompletedOnUTC.IsZero() {
		t := v.CompletedOnUTC
		o.CompletedOnUTC = &t
	}
	for _, l := range v.Products {
		o.Products = append(o.Products, OrderLine{
			ProductID:          l.ProductID,
			ProductName:        l.ProductName,
			Quantity:           l.Quantity,
			UnitPrice:          l.UnitPrice,
			PurchasePrice:      l.PurchasePrice,
			TotalPrice:         l.TotalPrice,
			TotalPurchasePrice: l.TotalPurchasePrice,
			Profit:             l.Profit,
		})
	}
	return o
}

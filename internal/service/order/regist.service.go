package order

import (
	"ashok-storefront/internal/service/catalog"
)

const (
	// DefaultMessagingHost serves the wa.me click-to-chat links
	DefaultMessagingHost = "wa.me"
	// TextPlaceholder stands in for any empty free-text field
	TextPlaceholder = "_____"
	// QuantityPlaceholder stands in for an empty quick-order quantity
	QuantityPlaceholder = "1"
)

// Config is fixed for the life of the process
type Config struct {
	MessagingHost  string
	Destination    string
	CurrencySymbol string
}

type Service struct {
	cfg     Config
	catalog catalog.IService
}

type IService interface {
	SizeLabel(productID, sizeID string) string
	BuildMessage(productName, sizeLabel string, quantity int, unitPrice int64, available bool) string
	BuildOrderLink(message string) string
	BuildQuickOrderMessage(name, product, quantity, address string) string
	Order(req *OrderRequest) *OrderLink
	QuickOrder(req *QuickOrderRequest) *OrderLink
	Contact() *ContactLink
}

func NewService(cfg Config, prices catalog.IService) IService {
	if cfg.MessagingHost == "" {
		cfg.MessagingHost = DefaultMessagingHost
	}
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = prices.CurrencySymbol()
	}

	return &Service{
		cfg:     cfg,
		catalog: prices,
	}
}

// Request/Response DTOs

// OrderRequest carries the raw values of one product card. Quantity is the
// text of the quantity input and is coerced, never rejected.
type OrderRequest struct {
	ProductID   string   `json:"product_id" form:"product_id"`
	ProductName string   `json:"product_name" form:"product_name"`
	SizeID      string   `json:"size_id" form:"size_id"`
	Quantity    Quantity `json:"quantity" form:"quantity"`
}

type QuickOrderRequest struct {
	Name     string   `json:"name" form:"name"`
	Product  string   `json:"product" form:"product"`
	Quantity Quantity `json:"quantity" form:"quantity"`
	Address  string   `json:"address" form:"address"`
}

type OrderLink struct {
	Message   string         `json:"message"`
	Link      string         `json:"link"`
	SizeLabel string         `json:"size_label,omitempty"`
	Quote     *catalog.Quote `json:"quote,omitempty"`
}

type ContactLink struct {
	Link    string `json:"link"`
	Display string `json:"display"`
}

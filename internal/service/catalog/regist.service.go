package catalog

const (
	// DefaultCurrencySymbol is used when no symbol is configured
	DefaultCurrencySymbol = "₹"
	// PricePlaceholder is displayed when a price cannot be computed
	PricePlaceholder = "—"
)

type Service struct {
	currency string
	products []Product
	index    map[string]int
	prices   map[string]map[string]int64
}

type IService interface {
	UnitPrice(productID, sizeID string) (int64, bool)
	DisplayPrice(productID, sizeID string, quantity int) string
	Quote(productID, sizeID, rawQuantity string) Quote
	Products() []Product
	Product(productID string) (Product, bool)
	CurrencySymbol() string
}

// NewService indexes table for lookups. The table must not be modified
// afterwards; pass it through Load or Validate first.
func NewService(table *Table, currencySymbol string) IService {
	if currencySymbol == "" {
		currencySymbol = DefaultCurrencySymbol
	}

	s := &Service{
		currency: currencySymbol,
		index:    make(map[string]int),
		prices:   make(map[string]map[string]int64),
	}

	if table == nil {
		return s
	}

	for _, p := range table.Products {
		if _, exists := s.index[p.ID]; exists {
			continue
		}

		sizes := make(map[string]int64, len(p.Sizes))
		kept := make([]Size, 0, len(p.Sizes))
		for _, size := range p.Sizes {
			if _, exists := sizes[size.ID]; exists {
				continue
			}
			sizes[size.ID] = size.Price
			kept = append(kept, size)
		}

		p.Name = displayName(p)
		p.Sizes = kept
		s.index[p.ID] = len(s.products)
		s.products = append(s.products, p)
		s.prices[p.ID] = sizes
	}

	return s
}

// Table is the on-disk shape of a catalog
type Table struct {
	Products []Product `json:"products" yaml:"products" validate:"required,min=1,unique=ID,dive"`
}

type Product struct {
	ID    string `json:"id" yaml:"id" validate:"required,token"`
	Name  string `json:"name" yaml:"name,omitempty"`
	Sizes []Size `json:"sizes" yaml:"sizes" validate:"required,min=1,unique=ID,dive"`
}

type Size struct {
	ID    string `json:"id" yaml:"id" validate:"required,token"`
	Price int64  `json:"price" yaml:"price" validate:"gte=0"`
}

// Quote is the result of pricing one selection on the page
type Quote struct {
	ProductID string `json:"product_id"`
	SizeID    string `json:"size_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
	Available bool   `json:"available"`
	Display   string `json:"display"`
}

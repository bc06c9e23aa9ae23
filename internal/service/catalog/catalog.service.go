package catalog

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// UnitPrice returns the configured price of one unit. ok is false when the
// product or the size is not in the catalog.
func (s *Service) UnitPrice(productID, sizeID string) (int64, bool) {
	sizes, ok := s.prices[productID]
	if !ok {
		return 0, false
	}
	price, ok := sizes[sizeID]
	return price, ok
}

// DisplayPrice formats unit price × quantity, or PricePlaceholder when the
// pair is unavailable, quantity is not positive or the total does not fit
// in an int64.
func (s *Service) DisplayPrice(productID, sizeID string, quantity int) string {
	price, ok := s.UnitPrice(productID, sizeID)
	if !ok || quantity < 1 {
		return PricePlaceholder
	}
	total, ok := multiply(price, quantity)
	if !ok {
		return PricePlaceholder
	}
	return s.format(total)
}

func (s *Service) Quote(productID, sizeID, rawQuantity string) Quote {
	qty := ParseQuantity(rawQuantity)
	price, ok := s.UnitPrice(productID, sizeID)

	q := Quote{
		ProductID: productID,
		SizeID:    sizeID,
		Quantity:  qty,
		Available: ok,
		Display:   PricePlaceholder,
	}
	if ok {
		q.UnitPrice = price
		if total, fits := multiply(price, qty); fits {
			q.Total = total
			q.Display = s.format(total)
		}
	}
	return q
}

// multiply returns price × quantity, ok is false on int64 overflow
func multiply(price int64, quantity int) (int64, bool) {
	if price > 0 && int64(quantity) > math.MaxInt64/price {
		return 0, false
	}
	return price * int64(quantity), true
}

// Products lists the catalog in table order
func (s *Service) Products() []Product {
	out := make([]Product, len(s.products))
	for i, p := range s.products {
		p.Sizes = append([]Size(nil), p.Sizes...)
		out[i] = p
	}
	return out
}

func (s *Service) Product(productID string) (Product, bool) {
	i, ok := s.index[productID]
	if !ok {
		return Product{}, false
	}
	p := s.products[i]
	p.Sizes = append([]Size(nil), p.Sizes...)
	return p, true
}

func (s *Service) CurrencySymbol() string {
	return s.currency
}

func (s *Service) format(amount int64) string {
	return fmt.Sprintf("%s %d", s.currency, amount)
}

// displayName falls back to a title-cased id: "cultural_vermi" -> "Cultural Vermi"
func displayName(p Product) string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return titleCaser.String(strings.ReplaceAll(p.ID, "_", " "))
}

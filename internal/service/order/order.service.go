package order

import (
	"strings"
)

func (s *Service) SizeLabel(productID, sizeID string) string {
	return SizeLabel(productID, sizeID)
}

func (s *Service) BuildMessage(productName, sizeLabel string, quantity int, unitPrice int64, available bool) string {
	return buildMessage(s.cfg.CurrencySymbol, productName, sizeLabel, quantity, unitPrice, available)
}

func (s *Service) BuildOrderLink(message string) string {
	return buildLink(s.cfg.MessagingHost, s.cfg.Destination, message)
}

func (s *Service) BuildQuickOrderMessage(name, product, quantity, address string) string {
	return BuildQuickOrderMessage(name, product, quantity, address)
}

// Order prices a product card selection and builds its message and link.
// An empty product name falls back to the catalog display name, then to
// the product id.
func (s *Service) Order(req *OrderRequest) *OrderLink {
	if req == nil {
		req = &OrderRequest{}
	}

	quote := s.catalog.Quote(req.ProductID, req.SizeID, req.Quantity.String())

	name := strings.TrimSpace(req.ProductName)
	if name == "" {
		if p, ok := s.catalog.Product(req.ProductID); ok {
			name = p.Name
		} else {
			name = req.ProductID
		}
	}

	label := s.SizeLabel(req.ProductID, req.SizeID)
	message := s.BuildMessage(name, label, quote.Quantity, quote.UnitPrice, quote.Available)

	return &OrderLink{
		Message:   message,
		Link:      s.BuildOrderLink(message),
		SizeLabel: label,
		Quote:     &quote,
	}
}

func (s *Service) QuickOrder(req *QuickOrderRequest) *OrderLink {
	if req == nil {
		req = &QuickOrderRequest{}
	}

	message := s.BuildQuickOrderMessage(req.Name, req.Product, req.Quantity.String(), req.Address)

	return &OrderLink{
		Message: message,
		Link:    s.BuildOrderLink(message),
	}
}

func (s *Service) Contact() *ContactLink {
	return &ContactLink{
		Link:    buildLink(s.cfg.MessagingHost, s.cfg.Destination, ""),
		Display: s.cfg.Destination,
	}
}

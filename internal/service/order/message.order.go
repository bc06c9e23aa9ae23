package order

import (
	"fmt"
	"net/url"
	"strings"

	"ashok-storefront/internal/service/catalog"

	"github.com/samber/lo"
)

// BuildMessage renders the order sentence for one product card. The price
// clause is left out when the unit price is unavailable.
func BuildMessage(productName, sizeLabel string, quantity int, unitPrice int64, available bool) string {
	return buildMessage(catalog.DefaultCurrencySymbol, productName, sizeLabel, quantity, unitPrice, available)
}

func buildMessage(currency, productName, sizeLabel string, quantity int, unitPrice int64, available bool) string {
	quantity = lo.Ternary(quantity > 0, quantity, catalog.DefaultQuantity)
	priceText := lo.Ternary(available, fmt.Sprintf("Price (per unit): %s%d", currency, unitPrice), "")

	return fmt.Sprintf(
		"Hello, I want to order: %s — Size: %s (Qty: %d). %s Name: %s. Address: %s. Please confirm price and delivery.",
		productName, sizeLabel, quantity, priceText, TextPlaceholder, TextPlaceholder,
	)
}

// BuildQuickOrderMessage renders the contact-page order sentence. Fields
// are embedded as supplied; empty ones become placeholders.
func BuildQuickOrderMessage(name, product, quantity, address string) string {
	return fmt.Sprintf(
		"Hello, I want to order: %s (Qty: %s). Name: %s. Address: %s. Please confirm price and delivery.",
		orPlaceholder(product, TextPlaceholder),
		orPlaceholder(quantity, QuantityPlaceholder),
		orPlaceholder(name, TextPlaceholder),
		orPlaceholder(address, TextPlaceholder),
	)
}

func orPlaceholder(value, placeholder string) string {
	return lo.Ternary(value != "", value, placeholder)
}

// BuildOrderLink builds a wa.me link that opens a chat with destination
// and the message pre-filled.
func BuildOrderLink(message, destination string) string {
	return buildLink(DefaultMessagingHost, destination, message)
}

// ContactURL is the chat link without a pre-filled message
func ContactURL(destination string) string {
	return buildLink(DefaultMessagingHost, destination, "")
}

// NormalizeAddress strips "+" so the number is digits only, as wa.me expects
func NormalizeAddress(destination string) string {
	return strings.ReplaceAll(destination, "+", "")
}

func buildLink(host, destination, message string) string {
	link := fmt.Sprintf("https://%s/%s", host, NormalizeAddress(destination))
	if message == "" {
		return link
	}
	return link + "?text=" + EncodeText(message)
}

// EncodeText percent-encodes s as a query component with spaces as %20,
// so url.QueryUnescape and url.PathUnescape both give s back.
func EncodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

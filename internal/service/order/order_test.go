package order

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"ashok-storefront/internal/service/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeLabel(t *testing.T) {
	tests := []struct {
		productID string
		sizeID    string
		want      string
	}{
		{"milk", "0.5", "½ litre"},
		{"milk", "1", "1 litre"},
		{"milk", "5", "5 litre"},
		{"ghee", "0.5", "½ litre"},
		{"ghee", "1", "1 litre"},
		{"ghee", "5", "5 kg"},
		{"paneer", "250", "250 g"},
		{"paneer", "500", "500 g"},
		{"paneer", "1000", "1 kg"},
		{"paneer", "9999", "9999"},
		{"curd", "0.5", "0.5"},
		{"vermicompost", "1", "1 kg"},
		{"vermicompost", "5", "5 kg"},
		{"cultural_vermi", "10", "10 kg"},
		{"unknown", "250", "250 g"},
		{"unknown", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.productID+"/"+tt.sizeID, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeLabel(tt.productID, tt.sizeID))
		})
	}
}

func TestBuildMessage(t *testing.T) {
	msg := BuildMessage("Full Cream Milk", "1 litre", 2, 75, true)

	assert.Equal(t,
		"Hello, I want to order: Full Cream Milk — Size: 1 litre (Qty: 2). Price (per unit): ₹75 Name: _____. Address: _____. Please confirm price and delivery.",
		msg,
	)
	assert.Contains(t, msg, "Full Cream Milk — Size: 1 litre (Qty: 2)")
	assert.Contains(t, msg, "Price (per unit): ₹75")
}

func TestBuildMessageWithoutPrice(t *testing.T) {
	msg := BuildMessage("Butter", "200", 1, 0, false)

	assert.Equal(t,
		"Hello, I want to order: Butter — Size: 200 (Qty: 1).  Name: _____. Address: _____. Please confirm price and delivery.",
		msg,
	)
	assert.NotContains(t, msg, "Price")
}

func TestBuildMessageZeroPriceIsAvailable(t *testing.T) {
	msg := BuildMessage("Free Sample", "100 g", 1, 0, true)
	assert.Contains(t, msg, "Price (per unit): ₹0")
}

func TestBuildMessageCoercesQuantity(t *testing.T) {
	assert.Contains(t, BuildMessage("Curd", "250 g", 0, 40, true), "(Qty: 1)")
	assert.Contains(t, BuildMessage("Curd", "250 g", -3, 40, true), "(Qty: 1)")
}

func TestBuildQuickOrderMessage(t *testing.T) {
	assert.Equal(t,
		"Hello, I want to order: Paneer 1kg (Qty: 3). Name: Ravi. Address: 12 Temple Rd. Please confirm price and delivery.",
		BuildQuickOrderMessage("Ravi", "Paneer 1kg", "3", "12 Temple Rd"),
	)

	assert.Equal(t,
		"Hello, I want to order: _____ (Qty: 1). Name: _____. Address: _____. Please confirm price and delivery.",
		BuildQuickOrderMessage("", "", "", ""),
	)

	assert.Equal(t,
		"Hello, I want to order: Ghee (Qty: a few). Name: _____. Address: Flat 4. Please confirm price and delivery.",
		BuildQuickOrderMessage("", "Ghee", "a few", "Flat 4"),
	)
}

func TestBuildOrderLink(t *testing.T) {
	msg := BuildMessage("Full Cream Milk", "1 litre", 2, 75, true)
	link := BuildOrderLink(msg, "+919618108744")

	prefix := "https://wa.me/919618108744?text="
	require.True(t, strings.HasPrefix(link, prefix), link)

	encoded := strings.TrimPrefix(link, prefix)
	assert.NotContains(t, encoded, " ")
	assert.NotContains(t, encoded, "+")

	decoded, err := url.QueryUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/919618108744", u.Path)
	assert.Equal(t, msg, u.Query().Get("text"))
}

func TestBuildOrderLinkStripsEveryPlus(t *testing.T) {
	assert.Equal(t, "https://wa.me/919618108744?text=hi", BuildOrderLink("hi", "+919618108744"))
	assert.Equal(t, "https://wa.me/919618108744?text=hi", BuildOrderLink("hi", "919618108744"))
	assert.Equal(t, "https://wa.me/9196?text=hi", BuildOrderLink("hi", "++91+96"))
}

func TestContactURL(t *testing.T) {
	assert.Equal(t, "https://wa.me/919618108744", ContactURL("+919618108744"))
}

func TestEncodeTextRoundTrip(t *testing.T) {
	messages := []string{
		"",
		"plain",
		"Hello, I want to order: Full Cream Milk — Size: ½ litre (Qty: 2).",
		"Price (per unit): ₹75",
		"a+b=c & d?e#f/g%h",
		"100% pure; 'desi' ghee! ~*()",
		"line one\nline two\ttab",
		"नमस्ते 🙏 దూధ్",
		"     ",
	}

	for _, m := range messages {
		encoded := EncodeText(m)
		assert.NotContains(t, encoded, " ")
		assert.NotContains(t, encoded, "+")

		fromQuery, err := url.QueryUnescape(encoded)
		require.NoError(t, err)
		assert.Equal(t, m, fromQuery)

		fromPath, err := url.PathUnescape(encoded)
		require.NoError(t, err)
		assert.Equal(t, m, fromPath)
	}
}

func TestEncodeTextEscapesSpacesAsPercent20(t *testing.T) {
	assert.Equal(t, "a%20b%2Bc", EncodeText("a b+c"))
	assert.Equal(t, "%E2%82%B975", EncodeText("₹75"))
}

func newTestService(t *testing.T, cfg Config) IService {
	t.Helper()
	table, err := catalog.LoadDefault()
	require.NoError(t, err)
	return NewService(cfg, catalog.NewService(table, ""))
}

func TestServiceOrder(t *testing.T) {
	s := newTestService(t, Config{Destination: "+919618108744"})

	res := s.Order(&OrderRequest{
		ProductID:   "milk",
		ProductName: "Full Cream Milk",
		SizeID:      "1",
		Quantity:    "2",
	})

	assert.Equal(t, "1 litre", res.SizeLabel)
	assert.Equal(t, BuildMessage("Full Cream Milk", "1 litre", 2, 75, true), res.Message)
	assert.Equal(t, BuildOrderLink(res.Message, "+919618108744"), res.Link)
	require.NotNil(t, res.Quote)
	assert.Equal(t, "₹ 150", res.Quote.Display)
}

func TestServiceOrderFallbacks(t *testing.T) {
	s := newTestService(t, Config{Destination: "+919618108744"})

	res := s.Order(&OrderRequest{ProductID: "paneer", SizeID: "9999", Quantity: "zero"})
	assert.Equal(t, "9999", res.SizeLabel)
	assert.Equal(t,
		"Hello, I want to order: Paneer — Size: 9999 (Qty: 1).  Name: _____. Address: _____. Please confirm price and delivery.",
		res.Message,
	)
	assert.False(t, res.Quote.Available)

	res = s.Order(&OrderRequest{ProductID: "butter", SizeID: "250"})
	assert.Contains(t, res.Message, "order: butter — Size: 250 g (Qty: 1)")

	res = s.Order(nil)
	assert.Contains(t, res.Message, "(Qty: 1)")
}

func TestServiceUsesConfig(t *testing.T) {
	s := newTestService(t, Config{
		MessagingHost:  "api.whatsapp.com",
		Destination:    "+15551234567",
		CurrencySymbol: "Rs.",
	})

	msg := s.BuildMessage("Kova", "500 g", 1, 220, true)
	assert.Contains(t, msg, "Price (per unit): Rs.220")
	assert.True(t, strings.HasPrefix(s.BuildOrderLink(msg), "https://api.whatsapp.com/15551234567?text="))

	contact := s.Contact()
	assert.Equal(t, "https://api.whatsapp.com/15551234567", contact.Link)
	assert.Equal(t, "+15551234567", contact.Display)
}

func TestServiceQuickOrder(t *testing.T) {
	s := newTestService(t, Config{Destination: "+919618108744"})

	res := s.QuickOrder(&QuickOrderRequest{Name: "Asha", Product: "Curd"})
	assert.Equal(t,
		"Hello, I want to order: Curd (Qty: 1). Name: Asha. Address: _____. Please confirm price and delivery.",
		res.Message,
	)
	assert.Equal(t, BuildOrderLink(res.Message, "+919618108744"), res.Link)
	assert.Nil(t, res.Quote)
}

func TestQuantityUnmarshalJSON(t *testing.T) {
	tests := []struct {
		body string
		want Quantity
	}{
		{`{"quantity":"3"}`, "3"},
		{`{"quantity":" 2kg "}`, " 2kg "},
		{`{"quantity":2}`, "2"},
		{`{"quantity":-1}`, "-1"},
		{`{"quantity":2.5}`, "2.5"},
		{`{"quantity":1e3}`, "1e3"},
		{`{"quantity":null}`, ""},
		{`{"quantity":false}`, ""},
		{`{"quantity":[1]}`, ""},
		{`{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req OrderRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.Quantity)
		})
	}
}

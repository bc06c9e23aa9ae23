package storefront

import (
	"context"
	"net/http"

	types "ashok-storefront/internal/common/type"
	"ashok-storefront/internal/pkg/helper"
	"ashok-storefront/internal/pkg/middleware"
	catalogService "ashok-storefront/internal/service/catalog"
	orderService "ashok-storefront/internal/service/order"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type Handler struct {
	ctx            context.Context
	catalogService catalogService.IService
	orderService   orderService.IService
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
}

func NewHandler(ctx context.Context, catalogService catalogService.IService, orderService orderService.IService) IHandler {
	return &Handler{
		ctx:            ctx,
		catalogService: catalogService,
		orderService:   orderService,
	}
}

// PriceQuery holds the raw values of a product card's selectors
type PriceQuery struct {
	Product  string `form:"product"`
	Size     string `form:"size"`
	Quantity string `form:"qty"`
}

type ProductView struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Sizes []SizeView `json:"sizes"`
}

type SizeView struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Price   int64  `json:"price"`
	Display string `json:"display"`
}

func send(c *gin.Context) func(r *types.Response) {
	return c.MustGet(middleware.SendKey).(func(r *types.Response))
}

// ListProducts godoc
// @Summary      List catalog products
// @Description  Returns every product with its sizes, size labels and unit prices, in catalog order
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  types.ResponseAPI{data=[]ProductView}
// @Router       /v1/catalog/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	products := lo.Map(h.catalogService.Products(), func(p catalogService.Product, _ int) ProductView {
		return ProductView{
			ID:   p.ID,
			Name: p.Name,
			Sizes: lo.Map(p.Sizes, func(s catalogService.Size, _ int) SizeView {
				return SizeView{
					ID:      s.ID,
					Label:   h.orderService.SizeLabel(p.ID, s.ID),
					Price:   s.Price,
					Display: h.catalogService.DisplayPrice(p.ID, s.ID, catalogService.DefaultQuantity),
				}
			}),
		}
	})

	send(c)(helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: products,
	}))
}

// GetPrice godoc
// @Summary      Quote a product card selection
// @Description  Called whenever the size or quantity of a card changes. Unknown products or sizes are not errors: the quote is returned with available=false and display "—"
// @Tags         Catalog
// @Produce      json
// @Param        product  query     string  true   "Product id"
// @Param        size     query     string  true   "Size id"
// @Param        qty      query     string  false  "Quantity, coerced to 1 when not a positive integer"
// @Success      200      {object}  types.ResponseAPI{data=catalogService.Quote}
// @Failure      400      {object}  types.ResponseAPI
// @Router       /v1/catalog/price [get]
func (h *Handler) GetPrice(c *gin.Context) {
	var q PriceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		send(c)(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid query",
			Error:   err,
		}))
		return
	}

	send(c)(helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: h.catalogService.Quote(q.Product, q.Size, q.Quantity),
	}))
}

// CreateOrderLink godoc
// @Summary      Build an order link for a product card
// @Description  Builds the pre-filled order message and the WhatsApp link the page should open
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request  body      orderService.OrderRequest  true  "Product card values"
// @Success      200      {object}  types.ResponseAPI{data=orderService.OrderLink}
// @Failure      400      {object}  types.ResponseAPI
// @Router       /v1/orders/link [post]
func (h *Handler) CreateOrderLink(c *gin.Context) {
	var req orderService.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		send(c)(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
			Error:   err,
		}))
		return
	}

	send(c)(helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: h.orderService.Order(&req),
	}))
}

// CreateQuickOrderLink godoc
// @Summary      Build a quick order link
// @Description  Builds the contact-page order message from free text fields; empty fields become placeholders
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request  body      orderService.QuickOrderRequest  true  "Quick order form values"
// @Success      200      {object}  types.ResponseAPI{data=orderService.OrderLink}
// @Failure      400      {object}  types.ResponseAPI
// @Router       /v1/orders/quick-link [post]
func (h *Handler) CreateQuickOrderLink(c *gin.Context) {
	var req orderService.QuickOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		send(c)(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
			Error:   err,
		}))
		return
	}

	send(c)(helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: h.orderService.QuickOrder(&req),
	}))
}

// GetContact godoc
// @Summary      Contact link
// @Description  Chat link without a pre-filled message, plus the number as it should be displayed
// @Tags         Orders
// @Produce      json
// @Success      200  {object}  types.ResponseAPI{data=orderService.ContactLink}
// @Router       /v1/contact [get]
func (h *Handler) GetContact(c *gin.Context) {
	send(c)(helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: h.orderService.Contact(),
	}))
}

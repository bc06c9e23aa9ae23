package storefront

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) NewRoutes(e *gin.RouterGroup) {
	catalog := e.Group("/v1/catalog")
	catalog.GET("/products", h.ListProducts)
	catalog.GET("/price", h.GetPrice)

	orders := e.Group("/v1/orders")
	orders.POST("/link", h.CreateOrderLink)
	orders.POST("/quick-link", h.CreateQuickOrderLink)

	e.GET("/v1/contact", h.GetContact)
}

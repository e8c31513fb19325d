package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// PlaceOrder godoc
// @Summary Place an order
// @Description Persist the order, then consume stock per line; line failures are reported as outcomes, never as rollbacks
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{items_price=number,delivery_price=number,discount=number,total_price=number,status=string,order_items=array} true "Order data"
// @Success 201 {object} object{success=bool,message=string,data=object{order=object,line_outcomes=array,partial_failure=bool}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/orders [post]
func (h *OrderHandler) PlaceOrderDoc() {}

// GetOrder godoc
// @Summary Get order by ID
// @Description Get a specific order; non-admin callers can only read their own
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrderDoc() {}

// ListOrders godoc
// @Summary List all orders
// @Description Get a list of all orders with pagination (Admin only)
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Param user_id query int false "Filter by user"
// @Success 200 {object} object{success=bool,data=object{orders=array,total=int,limit=int,offset=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/orders [get]
func (h *OrderHandler) ListOrdersDoc() {}

// ListMyOrders godoc
// @Summary List own orders
// @Description Get the authenticated user's orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/orders/my [get]
func (h *OrderHandler) ListMyOrdersDoc() {}

// UpdateStatus godoc
// @Summary Update order status
// @Description Move an order along created -> processing -> fulfilled/cancelled (Admin only)
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body object{status=string} true "Status data"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatusDoc() {}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Delete an order by ID (Admin only)
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrderDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *OrderHandler) HealthCheckDoc() {}

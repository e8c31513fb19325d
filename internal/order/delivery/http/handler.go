package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tair/shop-admin/internal/order/domain"
	"github.com/tair/shop-admin/internal/order/usecase/command"
	"github.com/tair/shop-admin/internal/order/usecase/query"
	"github.com/tair/shop-admin/kafka"
	"github.com/tair/shop-admin/pkg/logger"
)

// OrderHandler handles HTTP requests for orders using CQRS pattern
type OrderHandler struct {
	// Command handlers
	placeHandler        *command.PlaceOrderHandler
	updateStatusHandler *command.UpdateStatusHandler
	deleteHandler       *command.DeleteOrderHandler

	// Query handlers
	getHandler  *query.GetOrderHandler
	listHandler *query.ListOrdersHandler

	repo           domain.OrderRepository
	kafkaPublisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	partialOrders  prometheus.Counter
}

// NewOrderHandler creates a new order handler (manual DI)
func NewOrderHandler(repo domain.OrderRepository, stock domain.StockConsumer, publisher *kafka.Publisher) *OrderHandler {
	return NewOrderHandlerWithDI(
		command.NewPlaceOrderHandler(repo, stock),
		command.NewUpdateStatusHandler(repo),
		command.NewDeleteOrderHandler(repo),
		query.NewGetOrderHandler(repo),
		query.NewListOrdersHandler(repo),
		repo,
		publisher,
	)
}

// NewOrderHandlerWithDI creates a new order handler using dependency injection
func NewOrderHandlerWithDI(
	placeHandler *command.PlaceOrderHandler,
	updateStatusHandler *command.UpdateStatusHandler,
	deleteHandler *command.DeleteOrderHandler,
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
	repo domain.OrderRepository,
	kafkaPublisher *kafka.Publisher,
) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_service_requests_total",
			Help: "Total number of requests to order service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_service_request_duration_seconds",
			Help:    "Duration of order service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	partialOrders := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_service_partial_failures_total",
			Help: "Orders placed with at least one failed stock line",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(partialOrders)

	return &OrderHandler{
		placeHandler:        placeHandler,
		updateStatusHandler: updateStatusHandler,
		deleteHandler:       deleteHandler,
		getHandler:          getHandler,
		listHandler:         listHandler,
		repo:                repo,
		kafkaPublisher:      kafkaPublisher,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		partialOrders:       partialOrders,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", IdentityMiddleware(h.PlaceOrder))).Methods("POST")
	router.HandleFunc("/api/orders/my", h.metricsMiddleware("/api/orders/my", IdentityMiddleware(h.ListMyOrders))).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", IdentityMiddleware(h.GetOrder))).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", AdminMiddleware(h.ListOrders))).Methods("GET")
	router.HandleFunc("/api/orders/{id}/status", h.metricsMiddleware("/api/orders/{id}/status", AdminMiddleware(h.UpdateStatus))).Methods("PATCH")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", AdminMiddleware(h.DeleteOrder))).Methods("DELETE")
}

// statusForError maps order domain errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondDomainError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	respondJSON(w, status, Response{Success: false, Error: message})
}

// placeOrderRequest uses pointers so a missing field is distinguishable from
// a zero value; the first absent field is the one reported.
type placeOrderRequest struct {
	ItemsPrice    *float64           `json:"items_price"`
	DeliveryPrice *float64           `json:"delivery_price"`
	Discount      *float64           `json:"discount"`
	TotalPrice    *float64           `json:"total_price"`
	Status        *string            `json:"status"`
	OrderItems    []domain.OrderItem `json:"order_items"`
}

func (req *placeOrderRequest) firstMissingField() string {
	switch {
	case req.ItemsPrice == nil:
		return "items_price"
	case req.DeliveryPrice == nil:
		return "delivery_price"
	case req.Discount == nil:
		return "discount"
	case req.TotalPrice == nil:
		return "total_price"
	case req.Status == nil:
		return "status"
	case req.OrderItems == nil:
		return "order_items"
	}
	return ""
}

// PlaceOrder handles POST /api/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if field := req.firstMissingField(); field != "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   fmt.Sprintf("%s is required", field),
		})
		return
	}

	userID, _ := r.Context().Value(UserIDKey).(uint)

	cmd := command.PlaceOrderCommand{
		UserID:        userID,
		Items:         req.OrderItems,
		ItemsPrice:    *req.ItemsPrice,
		DeliveryPrice: *req.DeliveryPrice,
		Discount:      *req.Discount,
		TotalPrice:    *req.TotalPrice,
		Status:        *req.Status,
	}

	result, err := h.placeHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to place order")
		respondDomainError(w, err)
		return
	}

	if result.PartialFailure {
		h.partialOrders.Inc()
		logger.Logger.Warn().
			Uint("order_id", result.Order.ID).
			Int("lines", len(result.Outcomes)).
			Msg("Order placed with partial stock failure")
	}

	h.publishOrderEvents(r, result)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    result,
	})
}

// publishOrderEvents emits the order-placed event plus one stock-replenished
// event per restocked line. Publishing failures are logged, never surfaced.
func (h *OrderHandler) publishOrderEvents(r *http.Request, result *command.PlaceOrderResult) {
	if h.kafkaPublisher == nil {
		return
	}

	ctx := r.Context()

	event := kafka.OrderPlacedEvent{
		OrderID:        result.Order.ID,
		UserID:         result.Order.UserID,
		TotalPrice:     result.Order.TotalPrice,
		PartialFailure: result.PartialFailure,
	}
	for _, outcome := range result.Outcomes {
		event.LineOutcomes = append(event.LineOutcomes, kafka.OrderLineOutcome{
			Index:      outcome.Index,
			ProductID:  outcome.ProductID,
			Status:     outcome.Status,
			CurrentQty: outcome.CurrentQty,
			Restocked:  outcome.Restocked,
		})
	}

	if err := h.kafkaPublisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Logger.Error().
			Err(err).
			Uint("order_id", result.Order.ID).
			Msg("Failed to publish order placed event")
	}

	for _, outcome := range result.Outcomes {
		if !outcome.Restocked {
			continue
		}
		replenished := kafka.StockReplenishedEvent{
			ProductID:   outcome.ProductID,
			RestockedTo: outcome.CurrentQty,
			LineKey:     fmt.Sprintf("order-%d:%d", result.Order.ID, outcome.Index),
		}
		if err := h.kafkaPublisher.PublishStockReplenished(ctx, replenished); err != nil {
			logger.Logger.Error().
				Err(err).
				Uint("product_id", outcome.ProductID).
				Msg("Failed to publish stock replenished event")
		}
	}
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return
	}

	order, err := h.getHandler.Handle(query.GetOrderQuery{ID: uint(id)})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	// Non-admin callers can only read their own orders
	role, _ := r.Context().Value(RoleKey).(string)
	userID, _ := r.Context().Value(UserIDKey).(uint)
	if role != "admin" && order.UserID != userID {
		respondJSON(w, http.StatusForbidden, Response{
			Success: false,
			Error:   "Access denied",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    order,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	userID, _ := strconv.ParseUint(r.URL.Query().Get("user_id"), 10, 32)

	q := query.ListOrdersQuery{
		Limit:  limit,
		Offset: offset,
		UserID: uint(userID),
	}

	orders, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list orders",
		})
		return
	}

	count, _ := h.repo.Count()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"orders": orders,
			"total":  count,
			"limit":  q.Limit,
			"offset": offset,
		},
	})
}

// ListMyOrders handles GET /api/orders/my
func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	userID, _ := r.Context().Value(UserIDKey).(uint)

	orders, err := h.listHandler.Handle(query.ListOrdersQuery{
		Limit:  limit,
		Offset: offset,
		UserID: userID,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to list user orders")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list orders",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    orders,
	})
}

// UpdateStatus handles PATCH /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return
	}

	var req struct {
		Status string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateStatusCommand{
		OrderID: uint(id),
		Status:  req.Status,
	}

	if err := h.updateStatusHandler.Handle(cmd); err != nil {
		logger.Logger.Error().Err(err).Uint64("order_id", id).Msg("Failed to update order status")
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order status updated successfully",
	})
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteOrderCommand{OrderID: uint(id)}); err != nil {
		logger.Logger.Error().Err(err).Uint64("order_id", id).Msg("Failed to delete order")
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order deleted successfully",
	})
}

func (h *OrderHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Order service is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

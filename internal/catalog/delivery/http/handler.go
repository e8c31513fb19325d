package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tair/shop-admin/internal/catalog/domain"
	"github.com/tair/shop-admin/internal/catalog/usecase/command"
	"github.com/tair/shop-admin/internal/catalog/usecase/query"
	"github.com/tair/shop-admin/pkg/logger"
)

// CatalogHandler handles HTTP requests for the product catalog using CQRS pattern
type CatalogHandler struct {
	// Command handlers
	createHandler        *command.CreateProductHandler
	updateHandler        *command.UpdateProductHandler
	deleteHandler        *command.DeleteProductHandler
	updateStockHandler   *command.UpdateStockHandler
	addReviewHandler     *command.AddReviewHandler
	updateReviewHandler  *command.UpdateReviewHandler
	deleteReviewHandler  *command.DeleteReviewHandler
	addInquiryHandler    *command.AddInquiryHandler
	deleteInquiryHandler *command.DeleteInquiryHandler
	addReplyHandler      *command.AddReplyHandler

	// Query handlers
	getProductHandler *query.GetProductHandler
	listHandler       *query.ListProductsHandler
	getReviewHandler  *query.GetReviewHandler
	getInquiryHandler *query.GetInquiryHandler
	statsHandler      *query.GetStatsHandler

	repo           domain.ProductRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalProducts  prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler with CQRS pattern (manual DI for backwards compatibility)
func NewCatalogHandler(repo domain.ProductRepository) *CatalogHandler {
	return newCatalogHandler(
		command.NewCreateProductHandler(repo),
		command.NewUpdateProductHandler(repo),
		command.NewDeleteProductHandler(repo),
		command.NewUpdateStockHandler(repo),
		command.NewAddReviewHandler(repo),
		command.NewUpdateReviewHandler(repo),
		command.NewDeleteReviewHandler(repo),
		command.NewAddInquiryHandler(repo),
		command.NewDeleteInquiryHandler(repo),
		command.NewAddReplyHandler(repo),
		query.NewGetProductHandler(repo),
		query.NewListProductsHandler(repo),
		query.NewGetReviewHandler(repo),
		query.NewGetInquiryHandler(repo),
		query.NewGetStatsHandler(repo),
		repo,
	)
}

// NewCatalogHandlerWithDI creates a new catalog handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewCatalogHandlerWithDI(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	updateStockHandler *command.UpdateStockHandler,
	addReviewHandler *command.AddReviewHandler,
	updateReviewHandler *command.UpdateReviewHandler,
	deleteReviewHandler *command.DeleteReviewHandler,
	addInquiryHandler *command.AddInquiryHandler,
	deleteInquiryHandler *command.DeleteInquiryHandler,
	addReplyHandler *command.AddReplyHandler,
	getProductHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	getReviewHandler *query.GetReviewHandler,
	getInquiryHandler *query.GetInquiryHandler,
	statsHandler *query.GetStatsHandler,
	repo domain.ProductRepository,
) *CatalogHandler {
	return newCatalogHandler(
		createHandler, updateHandler, deleteHandler, updateStockHandler,
		addReviewHandler, updateReviewHandler, deleteReviewHandler,
		addInquiryHandler, deleteInquiryHandler, addReplyHandler,
		getProductHandler, listHandler, getReviewHandler, getInquiryHandler, statsHandler,
		repo,
	)
}

// newCatalogHandler is the internal constructor used by both manual and Wire DI
func newCatalogHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	updateStockHandler *command.UpdateStockHandler,
	addReviewHandler *command.AddReviewHandler,
	updateReviewHandler *command.UpdateReviewHandler,
	deleteReviewHandler *command.DeleteReviewHandler,
	addInquiryHandler *command.AddInquiryHandler,
	deleteInquiryHandler *command.DeleteInquiryHandler,
	addReplyHandler *command.AddReplyHandler,
	getProductHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	getReviewHandler *query.GetReviewHandler,
	getInquiryHandler *query.GetInquiryHandler,
	statsHandler *query.GetStatsHandler,
	repo domain.ProductRepository,
) *CatalogHandler {
	// Initialize Prometheus metrics
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "catalog_service_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_service_total_products",
			Help: "Total number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalProducts)

	return &CatalogHandler{
		createHandler:        createHandler,
		updateHandler:        updateHandler,
		deleteHandler:        deleteHandler,
		updateStockHandler:   updateStockHandler,
		addReviewHandler:     addReviewHandler,
		updateReviewHandler:  updateReviewHandler,
		deleteReviewHandler:  deleteReviewHandler,
		addInquiryHandler:    addInquiryHandler,
		deleteInquiryHandler: deleteInquiryHandler,
		addReplyHandler:      addReplyHandler,
		getProductHandler:    getProductHandler,
		listHandler:          listHandler,
		getReviewHandler:     getReviewHandler,
		getInquiryHandler:    getInquiryHandler,
		statsHandler:         statsHandler,
		repo:                 repo,
		requestCounter:       requestCounter,
		requestLatency:       requestLatency,
		requestSummary:       requestSummary,
		totalProducts:        totalProducts,
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
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Public routes (no auth required)
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/stats", h.metricsMiddleware("/api/products/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}/reviews/{reviewId}", h.metricsMiddleware("/api/products/{id}/reviews/{reviewId}", h.GetReview)).Methods("GET")
	router.HandleFunc("/api/products/{id}/inquiries/{inquiryId}", h.metricsMiddleware("/api/products/{id}/inquiries/{inquiryId}", h.GetInquiry)).Methods("GET")

	// Authenticated routes (identity required)
	router.HandleFunc("/api/products/{id}/reviews", h.metricsMiddleware("/api/products/{id}/reviews", IdentityMiddleware(h.AddReview))).Methods("POST")
	router.HandleFunc("/api/products/{id}/reviews/{reviewId}", h.metricsMiddleware("/api/products/{id}/reviews/{reviewId}", IdentityMiddleware(h.UpdateReview))).Methods("PUT")
	router.HandleFunc("/api/products/{id}/reviews/{reviewId}", h.metricsMiddleware("/api/products/{id}/reviews/{reviewId}", IdentityMiddleware(h.DeleteReview))).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/inquiries", h.metricsMiddleware("/api/products/{id}/inquiries", IdentityMiddleware(h.AddInquiry))).Methods("POST")
	router.HandleFunc("/api/products/{id}/inquiries/{inquiryId}", h.metricsMiddleware("/api/products/{id}/inquiries/{inquiryId}", IdentityMiddleware(h.DeleteInquiry))).Methods("DELETE")

	// Admin routes (admin role required)
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", AdminMiddleware(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", AdminMiddleware(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", AdminMiddleware(h.DeleteProduct))).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/stock", h.metricsMiddleware("/api/products/{id}/stock", AdminMiddleware(h.UpdateStock))).Methods("PATCH")
	router.HandleFunc("/api/products/{id}/inquiries/{inquiryId}/replies", h.metricsMiddleware("/api/products/{id}/inquiries/{inquiryId}/replies", AdminMiddleware(h.AddReply))).Methods("POST")
}

// statusForError maps domain errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateReview), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondDomainError translates a usecase error into the response envelope,
// hiding internals behind a generic message for unexpected failures.
func respondDomainError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	respondJSON(w, status, Response{Success: false, Error: message})
}

func productID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err == nil
}

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string  `json:"name"`
		Brand        string  `json:"brand"`
		Category     string  `json:"category"`
		Description  string  `json:"description"`
		Image        string  `json:"image"`
		SKU          string  `json:"sku"`
		Barcode      string  `json:"barcode"`
		BuyingPrice  float64 `json:"buying_price"`
		SellingPrice float64 `json:"selling_price"`
		Discount     float64 `json:"discount"`
		CountInStock int     `json:"count_in_stock"`
		CurrentQty   int     `json:"current_qty"`
		ReOrderQty   int     `json:"re_order_qty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateProductCommand{
		Name:         req.Name,
		Brand:        req.Brand,
		Category:     req.Category,
		Description:  req.Description,
		Image:        req.Image,
		SKU:          req.SKU,
		Barcode:      req.Barcode,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
		Discount:     req.Discount,
		CountInStock: req.CountInStock,
		CurrentQty:   req.CurrentQty,
		ReOrderQty:   req.ReOrderQty,
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create product")
		respondDomainError(w, err)
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	category := r.URL.Query().Get("category")

	q := query.ListProductsQuery{
		Limit:    limit,
		Offset:   offset,
		Category: category,
	}

	products, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	count, _ := h.repo.Count()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    count,
			"limit":    q.Limit,
			"offset":   offset,
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	product, err := h.getProductHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req struct {
		Name         string  `json:"name"`
		Brand        string  `json:"brand"`
		Category     string  `json:"category"`
		Description  string  `json:"description"`
		Image        string  `json:"image"`
		SKU          string  `json:"sku"`
		Barcode      string  `json:"barcode"`
		BuyingPrice  float64 `json:"buying_price"`
		SellingPrice float64 `json:"selling_price"`
		Discount     float64 `json:"discount"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateProductCommand{
		ID:           id,
		Name:         req.Name,
		Brand:        req.Brand,
		Category:     req.Category,
		Description:  req.Description,
		Image:        req.Image,
		SKU:          req.SKU,
		Barcode:      req.Barcode,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
		Discount:     req.Discount,
	}

	product, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update product")
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete product")
		respondDomainError(w, err)
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// UpdateStock handles PATCH /api/products/{id}/stock
func (h *CatalogHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req struct {
		CountInStock int     `json:"count_in_stock"`
		BuyingPrice  float64 `json:"buying_price"`
		ReOrderQty   int     `json:"re_order_qty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateStockCommand{
		ProductID:    id,
		CountInStock: req.CountInStock,
		BuyingPrice:  req.BuyingPrice,
		ReOrderQty:   req.ReOrderQty,
	}

	product, err := h.updateStockHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update stock")
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
		Data:    product,
	})
}

// AddReview handles POST /api/products/{id}/reviews
func (h *CatalogHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req struct {
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
		Email     string `json:"email"`
		Image     string `json:"image"`
		ImageSize int64  `json:"image_size"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	userID, _ := r.Context().Value(UserIDKey).(uint)
	username, _ := r.Context().Value(UsernameKey).(string)

	cmd := command.AddReviewCommand{
		ProductID: id,
		UserID:    userID,
		UserName:  username,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Email:     req.Email,
		Image:     req.Image,
		ImageSize: req.ImageSize,
	}

	review, err := h.addReviewHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Uint("product_id", id).Msg("Failed to add review")
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Review added successfully",
		Data:    review,
	})
}

// GetReview handles GET /api/products/{id}/reviews/{reviewId}
func (h *CatalogHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	review, err := h.getReviewHandler.Handle(query.GetReviewQuery{
		ProductID: id,
		ReviewID:  mux.Vars(r)["reviewId"],
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    review,
	})
}

// UpdateReview handles PUT /api/products/{id}/reviews/{reviewId}
func (h *CatalogHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateReviewCommand{
		ProductID: id,
		ReviewID:  mux.Vars(r)["reviewId"],
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	product, err := h.updateReviewHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Uint("product_id", id).Msg("Failed to update review")
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Review updated successfully",
		Data:    product,
	})
}

// DeleteReview handles DELETE /api/products/{id}/reviews/{reviewId}
func (h *CatalogHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	cmd := command.DeleteReviewCommand{
		ProductID: id,
		ReviewID:  mux.Vars(r)["reviewId"],
	}

	product, err := h.deleteReviewHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Uint("product_id", id).Msg("Failed to delete review")
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Review deleted successfully",
		Data:    product,
	})
}

// AddInquiry handles POST /api/products/{id}/inquiries
func (h *CatalogHandler) AddInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	userID, _ := r.Context().Value(UserIDKey).(uint)
	username, _ := r.Context().Value(UsernameKey).(string)

	cmd := command.AddInquiryCommand{
		ProductID: id,
		UserID:    userID,
		UserName:  username,
		Message:   req.Message,
	}

	inquiry, err := h.addInquiryHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Uint("product_id", id).Msg("Failed to add inquiry")
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Inquiry added successfully",
		Data:    inquiry,
	})
}

// GetInquiry handles GET /api/products/{id}/inquiries/{inquiryId}
func (h *CatalogHandler) GetInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	inquiry, err := h.getInquiryHandler.Handle(query.GetInquiryQuery{
		ProductID: id,
		InquiryID: mux.Vars(r)["inquiryId"],
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    inquiry,
	})
}

// DeleteInquiry handles DELETE /api/products/{id}/inquiries/{inquiryId}
func (h *CatalogHandler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	cmd := command.DeleteInquiryCommand{
		ProductID: id,
		InquiryID: mux.Vars(r)["inquiryId"],
	}

	product, err := h.deleteInquiryHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Uint("product_id", id).Msg("Failed to delete inquiry")
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inquiry deleted successfully",
		Data:    product,
	})
}

// AddReply handles POST /api/products/{id}/inquiries/{inquiryId}/replies
func (h *CatalogHandler) AddReply(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.AddReplyCommand{
		ProductID: id,
		InquiryID: mux.Vars(r)["inquiryId"],
		Message:   req.Message,
	}

	reply, err := h.addReplyHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Uint("product_id", id).Msg("Failed to add reply")
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Reply added successfully",
		Data:    reply,
	})
}

// GetStats handles GET /api/products/stats
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(query.GetStatsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get statistics",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
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
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")
}

// updateProductsMetric updates the total products gauge
func (h *CatalogHandler) updateProductsMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.totalProducts.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

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

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a new catalog entry (Admin only)
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,brand=string,category=string,description=string,image=string,sku=string,barcode=string,buying_price=number,selling_price=number,discount=number,count_in_stock=int,current_qty=int,re_order_qty=int} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *CatalogHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List all products
// @Description Get a list of all products with pagination
// @Tags Products
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Param category query string false "Category filter"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int,limit=int,offset=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a specific product with its reviews and inquiries
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Update descriptive and pricing fields (Admin only)
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{name=string,brand=string,category=string,description=string,image=string,sku=string,barcode=string,buying_price=number,selling_price=number,discount=number} true "Product data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/products/{id} [put]
func (h *CatalogHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product by ID (Admin only)
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProductDoc() {}

// UpdateStock godoc
// @Summary Update stock settings
// @Description Update restock count, buying price and reorder threshold (Admin only)
// @Tags Stock
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{count_in_stock=int,buying_price=number,re_order_qty=int} true "Stock data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/products/{id}/stock [patch]
func (h *CatalogHandler) UpdateStockDoc() {}

// AddReview godoc
// @Summary Add a review
// @Description Add a review to a product (one per user)
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{rating=int,comment=string,email=string,image=string,image_size=int} true "Review data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Failure 413 {object} object{success=bool,error=string}
// @Router /api/products/{id}/reviews [post]
func (h *CatalogHandler) AddReviewDoc() {}

// GetReview godoc
// @Summary Get a review
// @Description Get a single review with its parent product
// @Tags Reviews
// @Produce json
// @Param id path int true "Product ID"
// @Param reviewId path string true "Review ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id}/reviews/{reviewId} [get]
func (h *CatalogHandler) GetReviewDoc() {}

// UpdateReview godoc
// @Summary Update a review
// @Description Update rating and comment of an existing review
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param reviewId path string true "Review ID"
// @Param request body object{rating=int,comment=string} true "Review data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id}/reviews/{reviewId} [put]
func (h *CatalogHandler) UpdateReviewDoc() {}

// DeleteReview godoc
// @Summary Delete a review
// @Description Delete a review and recompute the product aggregates
// @Tags Reviews
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Param reviewId path string true "Review ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id}/reviews/{reviewId} [delete]
func (h *CatalogHandler) DeleteReviewDoc() {}

// AddInquiry godoc
// @Summary Add an inquiry
// @Description Open a question thread on a product
// @Tags Inquiries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{message=string} true "Inquiry data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/products/{id}/inquiries [post]
func (h *CatalogHandler) AddInquiryDoc() {}

// GetInquiry godoc
// @Summary Get an inquiry
// @Description Get a single inquiry thread with its replies
// @Tags Inquiries
// @Produce json
// @Param id path int true "Product ID"
// @Param inquiryId path string true "Inquiry ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id}/inquiries/{inquiryId} [get]
func (h *CatalogHandler) GetInquiryDoc() {}

// DeleteInquiry godoc
// @Summary Delete an inquiry
// @Description Delete an inquiry thread; a missing inquiry is a no-op
// @Tags Inquiries
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Param inquiryId path string true "Inquiry ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id}/inquiries/{inquiryId} [delete]
func (h *CatalogHandler) DeleteInquiryDoc() {}

// AddReply godoc
// @Summary Reply to an inquiry
// @Description Append a reply to an inquiry thread (Admin only)
// @Tags Inquiries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param inquiryId path string true "Inquiry ID"
// @Param request body object{message=string} true "Reply data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id}/inquiries/{inquiryId}/replies [post]
func (h *CatalogHandler) AddReplyDoc() {}

// GetStats godoc
// @Summary Get catalog statistics
// @Description Get catalog statistics (totals, low stock, average rating)
// @Tags Products
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/stats [get]
func (h *CatalogHandler) GetStatsDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *CatalogHandler) HealthCheckDoc() {}

package main

// @title Catalog Service API
// @version 1.0
// @description Product catalog with stock ledger, reviews and inquiries
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/shop-admin
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/shop-admin/blob/main/LICENSE

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Products
// @tag.description Product catalog endpoints

// @tag.name Stock
// @tag.description Stock ledger endpoints

// @tag.name Reviews
// @tag.description Product review endpoints

// @tag.name Inquiries
// @tag.description Product inquiry endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints

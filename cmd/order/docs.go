package main

// @title Order Service API
// @version 1.0
// @description Order placement with per-line stock consumption outcomes
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/shop-admin
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/shop-admin/blob/main/LICENSE

// @host localhost:8082
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Orders
// @tag.description Order management endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints

package config

import (
	"os"
	"strings"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port     string
	Services map[string]ServiceConfig
}

// LoadConfig loads the gateway configuration
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Services: map[string]ServiceConfig{
			"catalog": {
				Name:        "catalog-service",
				Instances:   getInstances("CATALOG_SERVICE_URLS", "http://localhost:8081"),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
			"order": {
				Name:        "order-service",
				Instances:   getInstances("ORDER_SERVICE_URLS", "http://localhost:8082"),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
		},
	}
}

// getInstances reads a comma-separated list of backend URLs.
func getInstances(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)

	var instances []string
	for _, url := range strings.Split(raw, ",") {
		url = strings.TrimSpace(url)
		if url != "" {
			instances = append(instances, strings.TrimSuffix(url, "/"))
		}
	}
	return instances
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

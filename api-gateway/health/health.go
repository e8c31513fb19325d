package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/tair/shop-admin/api-gateway/config"
	"github.com/tair/shop-admin/pkg/logger"
)

// InstanceHealth represents the health status of a single backend instance
type InstanceHealth struct {
	Service   string        `json:"service"`
	URL       string        `json:"url"`
	Status    string        `json:"status"` // healthy, unhealthy
	Latency   time.Duration `json:"latency_ms"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// GatewayHealth represents the overall gateway health
type GatewayHealth struct {
	Gateway  string                      `json:"gateway"`
	Status   string                      `json:"status"` // healthy, degraded, unhealthy
	Services map[string][]InstanceHealth `json:"services"`
	Uptime   time.Duration               `json:"uptime_seconds"`
}

// HealthChecker checks health of downstream services
type HealthChecker struct {
	config    *config.GatewayConfig
	client    *http.Client
	startTime time.Time
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(cfg *config.GatewayConfig) *HealthChecker {
	return &HealthChecker{
		config: cfg,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		startTime: time.Now(),
	}
}

// CheckInstance checks health of a single backend instance
func (h *HealthChecker) CheckInstance(ctx context.Context, service, baseURL, healthPath string) InstanceHealth {
	start := time.Now()

	result := InstanceHealth{
		Service:   service,
		URL:       baseURL,
		Timestamp: time.Now(),
	}

	req, err := http.NewRequestWithContext(ctx, "GET", baseURL+healthPath, nil)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to create request: %v", err)
		result.Latency = time.Since(start)
		return result
	}

	resp, err := h.client.Do(req)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to reach service: %v", err)
		result.Latency = time.Since(start)
		return result
	}
	defer resp.Body.Close()

	result.Latency = time.Since(start)

	if resp.StatusCode == http.StatusOK {
		result.Status = "healthy"
	} else {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Unexpected status code: %d", resp.StatusCode)
	}

	return result
}

// CheckAllServices checks every instance of every downstream service
func (h *HealthChecker) CheckAllServices(ctx context.Context) GatewayHealth {
	services := make(map[string][]InstanceHealth)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for name, svc := range h.config.Services {
		services[name] = make([]InstanceHealth, len(svc.Instances))

		for i, instance := range svc.Instances {
			wg.Add(1)
			go func(n string, idx int, url, healthPath string) {
				defer wg.Done()
				result := h.CheckInstance(ctx, n, url, healthPath)

				mu.Lock()
				services[n][idx] = result
				mu.Unlock()

				if result.Status == "healthy" {
					logger.Logger.Debug().
						Str("service", n).
						Str("instance", url).
						Dur("latency", result.Latency).
						Msg("Instance health check")
				} else {
					logger.Logger.Warn().
						Str("service", n).
						Str("instance", url).
						Str("error", result.Error).
						Msg("Instance health check failed")
				}
			}(name, i, instance, svc.HealthCheck)
		}
	}

	wg.Wait()

	return GatewayHealth{
		Gateway:  "api-gateway",
		Status:   h.determineOverallStatus(services),
		Services: services,
		Uptime:   time.Since(h.startTime),
	}
}

// determineOverallStatus aggregates instance health. A service counts as
// healthy when at least one of its instances answers; the gateway is
// degraded when some services are down and unhealthy when all are.
func (h *HealthChecker) determineOverallStatus(services map[string][]InstanceHealth) string {
	healthyServices := 0
	totalServices := len(services)

	for _, instances := range services {
		for _, inst := range instances {
			if inst.Status == "healthy" {
				healthyServices++
				break
			}
		}
	}

	if healthyServices == totalServices {
		return "healthy"
	} else if healthyServices > 0 {
		return "degraded"
	}
	return "unhealthy"
}

// QuickCheck performs a quick health check (just gateway itself)
func (h *HealthChecker) QuickCheck() map[string]interface{} {
	return map[string]interface{}{
		"status":    "healthy",
		"gateway":   "api-gateway",
		"uptime":    time.Since(h.startTime).Seconds(),
		"timestamp": time.Now(),
	}
}

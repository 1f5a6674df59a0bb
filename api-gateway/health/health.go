package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/aarikaaura/storefront/api-gateway/config"
	"github.com/aarikaaura/storefront/pkg/logger"
)

// InstanceHealth represents the health status of a backend instance
type InstanceHealth struct {
	Service   string        `json:"service"`
	Status    string        `json:"status"` // healthy, unhealthy
	URL       string        `json:"url"`
	Latency   time.Duration `json:"latency_ms"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// GatewayHealth represents the overall gateway health
type GatewayHealth struct {
	Gateway   string           `json:"gateway"`
	Status    string           `json:"status"` // healthy, degraded, unhealthy
	Instances []InstanceHealth `json:"instances"`
	Uptime    time.Duration    `json:"uptime_seconds"`
}

// HealthChecker checks health of downstream instances
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

// CheckAllInstances checks health of every configured instance
func (h *HealthChecker) CheckAllInstances(ctx context.Context) GatewayHealth {
	var instances []InstanceHealth
	var wg sync.WaitGroup
	var mu sync.Mutex

	for name, svc := range h.config.Services {
		for _, url := range svc.Instances {
			wg.Add(1)
			go func(service, baseURL, healthPath string) {
				defer wg.Done()
				instance := h.CheckInstance(ctx, service, baseURL, healthPath)

				mu.Lock()
				instances = append(instances, instance)
				mu.Unlock()

				if instance.Status != "healthy" {
					logger.Logger.Warn().
						Str("service", service).
						Str("url", baseURL).
						Str("error", instance.Error).
						Msg("Instance health check failed")
				}
			}(name, url, svc.HealthCheck)
		}
	}

	wg.Wait()

	return GatewayHealth{
		Gateway:   "api-gateway",
		Status:    overallStatus(instances),
		Instances: instances,
		Uptime:    time.Since(h.startTime),
	}
}

func overallStatus(instances []InstanceHealth) string {
	healthyCount := 0
	for _, inst := range instances {
		if inst.Status == "healthy" {
			healthyCount++
		}
	}

	switch {
	case healthyCount == len(instances):
		return "healthy"
	case healthyCount > 0:
		return "degraded"
	default:
		return "unhealthy"
	}
}

// QuickCheck performs a quick health check of the gateway itself
func (h *HealthChecker) QuickCheck() map[string]interface{} {
	return map[string]interface{}{
		"status":    "healthy",
		"gateway":   "api-gateway",
		"uptime":    time.Since(h.startTime).Seconds(),
		"timestamp": time.Now(),
	}
}

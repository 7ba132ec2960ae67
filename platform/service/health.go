package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"codecircle/internal/config"
	"codecircle/platform/client"
	"codecircle/platform/vo"
)

// HealthService probes the downstream services in parallel.
type HealthService struct {
	services *config.ServicesConfig
}

func NewHealthService(services *config.ServicesConfig) *HealthService {
	return &HealthService{services: services}
}

func (h *HealthService) targets() []struct{ name, base string } {
	return []struct{ name, base string }{
		{"FixAI", h.services.FixAIURL},
		{"Metrics Explorer", h.services.MetricsExplorerURL},
		{"Logs Explorer", h.services.LogsExplorerURL},
		{"Code Parser", h.services.CodeParserURL},
	}
}

// Check pings every downstream service and aggregates the results. The
// platform reads "ok" only when all four answered.
func (h *HealthService) Check(ctx context.Context) *vo.PlatformHealthVo {
	targets := h.targets()
	results := make([]vo.ServiceHealthVo, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	for i, t := range targets {
		i, t := i, t
		g.Go(func() error {
			url := strings.TrimRight(t.base, "/") + "/health"
			start := time.Now()
			err := client.Health(ctx, t.base)
			latency := float64(time.Since(start).Microseconds()) / 1000

			r := vo.ServiceHealthVo{
				Service:   t.name,
				URL:       url,
				Healthy:   err == nil,
				LatencyMS: latency,
			}
			if err != nil {
				msg := err.Error()
				r.Error = &msg
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()

	platform := "ok"
	for _, r := range results {
		if !r.Healthy {
			platform = "degraded"
			break
		}
	}
	return &vo.PlatformHealthVo{Platform: platform, Services: results}
}

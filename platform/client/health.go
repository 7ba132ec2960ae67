package client

import (
	"context"
	"strings"
	"time"
)

// HealthProfile keeps probes fast so a dead service cannot stall the
// aggregate health endpoint.
var HealthProfile = Profile{Timeout: 5 * time.Second, ConnectTimeout: 3 * time.Second}

var healthCaller = New(HealthProfile)

// Health probes base+/health. A non-2xx reply or transport failure is
// returned as the usual client error types.
func Health(ctx context.Context, base string) error {
	return healthCaller.Get(ctx, strings.TrimRight(base, "/")+"/health", nil)
}

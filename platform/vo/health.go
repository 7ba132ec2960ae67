package vo

// ServiceHealthVo is the probe result for one downstream service.
type ServiceHealthVo struct {
	Service   string  `json:"service"`
	URL       string  `json:"url"`
	Healthy   bool    `json:"healthy"`
	LatencyMS float64 `json:"latency_ms"`
	Error     *string `json:"error,omitempty"`
}

// PlatformHealthVo aggregates the downstream probes. Platform is "ok" only
// when every service answered.
type PlatformHealthVo struct {
	Platform string            `json:"platform"`
	Services []ServiceHealthVo `json:"services"`
}

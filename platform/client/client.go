// Copyright 2026 The CodeCircle Authors, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package client holds the HTTP clients for the four downstream services
// the platform provisions against: fixai, metrics-explorer, logs-explorer
// and code-parser.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// UpstreamError is a non-2xx reply from a downstream service.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Body)
}

// TransportError is a connection or timeout failure before any reply.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Profile bounds one remote call: total budget plus a separate connect
// budget.
type Profile struct {
	Timeout        time.Duration
	ConnectTimeout time.Duration
}

var (
	// DefaultProfile is for reads, health checks and config pushes.
	DefaultProfile = Profile{Timeout: 15 * time.Second, ConnectTimeout: 5 * time.Second}
	// ProvisionProfile is for creation calls with remote side effects.
	ProvisionProfile = Profile{Timeout: 30 * time.Second, ConnectTimeout: 10 * time.Second}
)

// Client is a thin JSON-over-HTTP caller. It performs no retries; retry
// policy, if any, belongs to the caller.
type Client struct {
	http *http.Client
}

func New(p Profile) *Client {
	return &Client{
		http: &http.Client{
			Timeout: p.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: p.ConnectTimeout}).DialContext,
			},
		},
	}
}

// Call issues one request with a JSON body and decodes the JSON reply into
// out (which may be nil). Non-2xx replies become *UpstreamError, transport
// failures *TransportError.
func (c *Client) Call(ctx context.Context, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &UpstreamError{Status: resp.StatusCode, Body: string(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) Get(ctx context.Context, url string, out any) error {
	return c.Call(ctx, http.MethodGet, url, nil, out)
}

func (c *Client) Post(ctx context.Context, url string, body, out any) error {
	return c.Call(ctx, http.MethodPost, url, body, out)
}

func (c *Client) Put(ctx context.Context, url string, body, out any) error {
	return c.Call(ctx, http.MethodPut, url, body, out)
}

func (c *Client) Patch(ctx context.Context, url string, body, out any) error {
	return c.Call(ctx, http.MethodPatch, url, body, out)
}

// Shared callers for the two timeout profiles. Service clients pick per
// operation.
var (
	apiCaller       = New(DefaultProfile)
	provisionCaller = New(ProvisionProfile)
)

// Org is the generic shape of an organization listed by any service.
type Org struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"name"`
	Slug        *string     `json:"slug"`
	Description *string     `json:"description"`
}

// AIConfigPayload is the credential document pushed to fixai and
// code-parser organizations.
type AIConfigPayload struct {
	ClaudeAPIKey     string `json:"claude_api_key"`
	ClaudeBedrockURL string `json:"claude_bedrock_url"`
	ClaudeModelID    string `json:"claude_model_id"`
	ClaudeMaxTokens  int    `json:"claude_max_tokens"`
}

func description(name string) string {
	return fmt.Sprintf("CodeCircle workspace: %s", name)
}

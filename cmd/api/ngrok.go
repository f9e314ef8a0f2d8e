package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ngrokProbe asks the local ngrok agent for its public tunnel URL.
type ngrokProbe struct {
	apiBase  string
	attempts int
	interval time.Duration
	client   *http.Client
}

type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

var errNoTunnel = errors.New("ngrok has no active tunnels")

func newNgrokProbe(apiBase string) ngrokProbe {
	return ngrokProbe{
		apiBase:  apiBase,
		attempts: 10,
		interval: 3 * time.Second,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// webhookURL returns the Telegram webhook address behind the first tunnel, https preferred.
// ngrok usually starts alongside the bot, so the probe waits for it.
func (p ngrokProbe) webhookURL(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		publicURL, err := p.publicURL(ctx)
		if err == nil {
			return publicURL + "/webhook/telegram", nil
		}
		lastErr = err

		if attempt == p.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.interval):
		}
	}
	return "", fmt.Errorf("ngrok probe gave up after %d attempts: %w", p.attempts, lastErr)
}

func (p ngrokProbe) publicURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiBase+"/api/tunnels", nil)
	if err != nil {
		return "", fmt.Errorf("build ngrok request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode ngrok tunnels: %w", err)
	}
	if len(body.Tunnels) == 0 {
		return "", errNoTunnel
	}

	for _, t := range body.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	return body.Tunnels[0].PublicURL, nil
}

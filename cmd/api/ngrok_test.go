package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNgrokProbe_PrefersHTTPS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tunnels" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`))
	}))
	defer srv.Close()

	got, err := newNgrokProbe(srv.URL).webhookURL(context.Background())
	if err != nil {
		t.Fatalf("webhookURL: %v", err)
	}
	if want := "https://a.ngrok.io/webhook/telegram"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNgrokProbe_NoTunnels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tunnels":[]}`))
	}))
	defer srv.Close()

	p := newNgrokProbe(srv.URL)
	p.attempts = 2
	p.interval = time.Millisecond

	_, err := p.webhookURL(context.Background())
	if !errors.Is(err, errNoTunnel) {
		t.Fatalf("err = %v, want errNoTunnel", err)
	}
}

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Fatalf("default port = %q", cfg.App.Port)
	}
	if cfg.Auth.TokenTTLHours != 24 {
		t.Fatalf("default token ttl = %d, want 24", cfg.Auth.TokenTTLHours)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Fatalf("default bcrypt cost = %d, want 12", cfg.Auth.BcryptCost)
	}
	if cfg.Tickets.ListLimit != 1000 {
		t.Fatalf("default list limit = %d, want 1000", cfg.Tickets.ListLimit)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "48")
	t.Setenv("TICKET_LIST_LIMIT", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := cfg.App.Addr(); got != "127.0.0.1:9090" {
		t.Fatalf("addr = %q", got)
	}
	if cfg.Auth.TokenTTLHours != 48 {
		t.Fatalf("token ttl override = %d", cfg.Auth.TokenTTLHours)
	}
	if cfg.Tickets.ListLimit != 50 {
		t.Fatalf("list limit override = %d", cfg.Tickets.ListLimit)
	}
}

func TestLoadIgnoresBadInts(t *testing.T) {
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Fatalf("bad int must fall back to default, got %d", cfg.Auth.BcryptCost)
	}
}

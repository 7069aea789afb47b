package config

import "testing"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("APP_ID", "100000000000000001")
	t.Setenv("OWNER_ID", "100000000000000002")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DiscordToken != "test-token" {
		t.Fatalf("got token %q, want %q", cfg.DiscordToken, "test-token")
	}
	if cfg.SyncGlobal {
		t.Fatal("SyncGlobal should default to false")
	}
	if cfg.StoragePath != "datastore.json" {
		t.Fatalf("got storage path %q, want datastore.json", cfg.StoragePath)
	}
	if cfg.Lavalink.Password != "youshallnotpass" {
		t.Fatalf("got lavalink password %q, want default", cfg.Lavalink.Password)
	}
	if got := cfg.Lavalink.Address(); got != "localhost:2333" {
		t.Fatalf("got lavalink address %q, want localhost:2333", got)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SYNC_GLOBAL", "true")
	t.Setenv("LAVALINK_HOST", "lava.internal")
	t.Setenv("LAVALINK_PORT", "8080")
	t.Setenv("LAVALINK_SECURE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.SyncGlobal {
		t.Fatal("expected SyncGlobal true")
	}
	if !cfg.Lavalink.Secure {
		t.Fatal("expected Lavalink.Secure true")
	}
	if got := cfg.Lavalink.Address(); got != "lava.internal:8080" {
		t.Fatalf("got lavalink address %q, want lava.internal:8080", got)
	}
}

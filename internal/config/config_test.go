package config

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	setEnvWithCleanup(t, "BOT_TOKEN", "123:abc")
	setEnvWithCleanup(t, "ADMIN_IDS", "111, 222")
	setEnvWithCleanup(t, "CHANNEL_ID", "-1001234")
	setEnvWithCleanup(t, "DATABASE_URL", "postgres://localhost/subbot")
	setEnvWithCleanup(t, "UPI_ID", "shop@upi")
	setEnvWithCleanup(t, "QR_CODE_URL", "https://cdn.example/qr.png")
	setEnvWithCleanup(t, "AUTH_SECRET", "s3cr3t")
}

func TestLoadConfig_ParsesAdminSetAndDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	ids := cfg.AdminIDList()
	if len(ids) != 2 || ids[0] != 111 || ids[1] != 222 {
		t.Fatalf("unexpected admin ids: %v", ids)
	}
	if cfg.ChannelID != -1001234 {
		t.Fatalf("unexpected channel id: %d", cfg.ChannelID)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default PORT 8080, got %q", cfg.Port)
	}
	if cfg.SweepSchedule != "@every 30m" {
		t.Fatalf("expected default sweep schedule, got %q", cfg.SweepSchedule)
	}
	if cfg.S3Enabled() {
		t.Fatal("S3 must be disabled without endpoint/bucket")
	}
}

func TestLoadConfig_MissingCredentialIsFatal(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	setRequiredEnv(t)
	unsetEnvWithCleanup(t, "BOT_TOKEN")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error for missing BOT_TOKEN")
	}
	if !strings.Contains(err.Error(), "BOT_TOKEN") {
		t.Fatalf("error should name the missing variable, got: %v", err)
	}
}

func TestLoadConfig_RejectsMalformedAdminIDs(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	setRequiredEnv(t)
	setEnvWithCleanup(t, "ADMIN_IDS", "111,not-a-number")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for malformed ADMIN_IDS")
	}
}

func setEnvWithCleanup(t *testing.T, key, value string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if hadPrev {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}

func unsetEnvWithCleanup(t *testing.T, key string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if hadPrev {
			_ = os.Setenv(key, prev)
		}
	})
}

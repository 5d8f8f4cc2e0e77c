package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_DRIVER", "MAX_ROUNDS_MODE", "MANDATE_VALIDITY", "AUTO_VERIFY_ON_EXECUTE", "DEFAULT_BASE_COST", "SIGNING_KEY_ID"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.StorageDriver != StorageDriverDynamoDB {
		t.Fatalf("expected dynamodb driver, got %q", cfg.StorageDriver)
	}
	if cfg.MaxRoundsMode != MaxRoundsLenient {
		t.Fatalf("expected lenient mode, got %q", cfg.MaxRoundsMode)
	}
	if cfg.MandateValidity != 24*time.Hour {
		t.Fatalf("expected 24h validity, got %s", cfg.MandateValidity)
	}
	if !cfg.AutoVerifyOnExecute {
		t.Fatalf("expected auto verify enabled by default")
	}
	if cfg.DefaultBaseCost.String() != "5" {
		t.Fatalf("expected default base cost 5, got %s", cfg.DefaultBaseCost)
	}
	if cfg.SigningKeyID != "supplymind-key-001" {
		t.Fatalf("unexpected key id %q", cfg.SigningKeyID)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("MAX_ROUNDS_MODE", "strict")
	t.Setenv("MANDATE_VALIDITY", "2h")
	t.Setenv("AUTO_VERIFY_ON_EXECUTE", "off")
	t.Setenv("DEFAULT_BASE_COST", "4.25")

	cfg := Load()
	if cfg.Port != 9090 || cfg.StorageDriver != StorageDriverMemory {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.MaxRoundsMode != MaxRoundsStrict {
		t.Fatalf("expected strict, got %q", cfg.MaxRoundsMode)
	}
	if cfg.MandateValidity != 2*time.Hour {
		t.Fatalf("expected 2h, got %s", cfg.MandateValidity)
	}
	if cfg.AutoVerifyOnExecute {
		t.Fatalf("expected auto verify disabled")
	}
	if cfg.DefaultBaseCost.String() != "4.25" {
		t.Fatalf("expected 4.25, got %s", cfg.DefaultBaseCost)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "abc")
	t.Setenv("MAX_ROUNDS_MODE", "sometimes")
	t.Setenv("MANDATE_VALIDITY", "-1h")
	t.Setenv("AUTO_VERIFY_ON_EXECUTE", "maybe")
	t.Setenv("DEFAULT_BASE_COST", "-3")

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected fallback port, got %d", cfg.Port)
	}
	if cfg.MaxRoundsMode != MaxRoundsLenient {
		t.Fatalf("expected lenient fallback, got %q", cfg.MaxRoundsMode)
	}
	if cfg.MandateValidity != 24*time.Hour {
		t.Fatalf("expected 24h fallback, got %s", cfg.MandateValidity)
	}
	if !cfg.AutoVerifyOnExecute {
		t.Fatalf("expected default true")
	}
	if cfg.DefaultBaseCost.String() != "5" {
		t.Fatalf("expected fallback base cost, got %s", cfg.DefaultBaseCost)
	}
}

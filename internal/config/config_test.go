package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func requiredEnv() map[string]string {
	return map[string]string{
		"DATABASE_URI": "postgres://localhost/criollo",
		"AMQP_URI":     "amqp://localhost",
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(requiredEnv()))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.JWTSecret != defaultJWTSecret {
		t.Fatalf("unexpected jwt secret %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Fatalf("unexpected token ttl %s", cfg.TokenTTL)
	}
	if cfg.NotifyTimeout != defaultNotifyTimeout {
		t.Fatalf("unexpected notify timeout %s", cfg.NotifyTimeout)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("unexpected shutdown timeout %s", cfg.ShutdownTimeout)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	env := requiredEnv()
	delete(env, "DATABASE_URI")
	if _, err := load(nil, lookupFrom(env)); err == nil {
		t.Fatal("expected error without database URI")
	}
}

func TestLoadRequiresBrokerURI(t *testing.T) {
	env := requiredEnv()
	delete(env, "AMQP_URI")
	if _, err := load(nil, lookupFrom(env)); err == nil {
		t.Fatal("expected error without broker URI")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	env := requiredEnv()
	env["RUN_ADDRESS"] = ":9090"
	env["TOKEN_TTL"] = "1h"
	env["NOTIFY_TIMEOUT"] = "2s"
	env["SHUTDOWN_TIMEOUT"] = "30s"

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("unexpected token ttl %s", cfg.TokenTTL)
	}
	if cfg.NotifyTimeout != 2*time.Second {
		t.Fatalf("unexpected notify timeout %s", cfg.NotifyTimeout)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("unexpected shutdown timeout %s", cfg.ShutdownTimeout)
	}
}

func TestLoadFlagsBeatEnv(t *testing.T) {
	env := requiredEnv()
	env["RUN_ADDRESS"] = ":9090"

	args := []string{
		"-a", ":7070",
		"-d", "postgres://flag/criollo",
		"-m", "amqp://flag",
		"-jwt-secret", "flag-secret",
		"-token-ttl", "90m",
	}
	cfg, err := load(args, lookupFrom(env))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != ":7070" {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.DatabaseURI != "postgres://flag/criollo" {
		t.Fatalf("unexpected database URI %q", cfg.DatabaseURI)
	}
	if cfg.AMQPURI != "amqp://flag" {
		t.Fatalf("unexpected broker URI %q", cfg.AMQPURI)
	}
	if cfg.JWTSecret != "flag-secret" {
		t.Fatalf("unexpected jwt secret %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 90*time.Minute {
		t.Fatalf("unexpected token ttl %s", cfg.TokenTTL)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	if _, err := load([]string{"-token-ttl", "bogus"}, lookupFrom(requiredEnv())); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestLoadJWTSecretFile(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(secretFile, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	env := requiredEnv()
	env["JWT_SECRET_FILE"] = secretFile
	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Fatalf("unexpected jwt secret %q", cfg.JWTSecret)
	}
}

func TestLoadJWTSecretFlagBeatsFile(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(secretFile, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	env := requiredEnv()
	env["JWT_SECRET_FILE"] = secretFile
	cfg, err := load([]string{"-jwt-secret", "flag-secret"}, lookupFrom(env))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.JWTSecret != "flag-secret" {
		t.Fatalf("flag must override the secret file, got %q", cfg.JWTSecret)
	}
}

func TestLoadJWTSecretFileMissing(t *testing.T) {
	env := requiredEnv()
	env["JWT_SECRET_FILE"] = filepath.Join(t.TempDir(), "missing")
	if _, err := load(nil, lookupFrom(env)); err == nil {
		t.Fatal("expected error for missing secret file")
	}
}

func TestLoadNonPositiveDurationsFallBack(t *testing.T) {
	env := requiredEnv()
	env["TOKEN_TTL"] = "-5m"
	env["SHUTDOWN_TIMEOUT"] = "0s"

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Fatalf("unexpected token ttl %s", cfg.TokenTTL)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("unexpected shutdown timeout %s", cfg.ShutdownTimeout)
	}
}

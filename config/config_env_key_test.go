package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"token": "",
		},
		"auth": map[string]any{
			"tokenTTL": "24h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_TOKEN", want: "secretKey.token"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestStoreDriver_Default(t *testing.T) {
	cfg := &Config{}
	if got := cfg.StoreDriver(); got != StoreDriverPostgres {
		t.Fatalf("StoreDriver() = %q, want %q", got, StoreDriverPostgres)
	}

	cfg.Store = &StoreConfig{Driver: StoreDriverFile, Path: "/tmp/staplewise"}
	if got := cfg.StoreDriver(); got != StoreDriverFile {
		t.Fatalf("StoreDriver() = %q, want %q", got, StoreDriverFile)
	}
}

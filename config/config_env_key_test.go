package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"directUrl": "",
			"pool": map[string]any{
				"maxOpenConns": 10,
			},
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"env": map[string]any{
			"managedRuntime": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_DIRECTURL", want: "database.directUrl"},
		{envKey: "DATABASE_POOL_MAXOPENCONNS", want: "database.pool.maxOpenConns"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "ENV_MANAGEDRUNTIME", want: "env.managedRuntime"},
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

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{}
	if cfg.IsProduction() {
		t.Fatal("empty env should not be production")
	}

	cfg.Env.Env = "Production"
	if !cfg.IsProduction() {
		t.Fatal("env comparison should be case-insensitive")
	}

	cfg.Env.Env = "development"
	if cfg.IsProduction() {
		t.Fatal("development must not report production")
	}
}

package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "siakad",
		},
		"http": map[string]any{
			"frontendUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"token": map[string]any{
			"accessTtl": "15m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "HTTP_FRONTENDURL", want: "http.frontendUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "TOKEN_ACCESSTTL", want: "token.accessTtl"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := new(Config)
	applyDefaults(cfg)

	if cfg.HTTP.Port != 3000 {
		t.Errorf("default http port = %d, want 3000", cfg.HTTP.Port)
	}
	if cfg.HTTP.FrontendURL != "http://localhost:5173" {
		t.Errorf("default frontend url = %q", cfg.HTTP.FrontendURL)
	}
	if cfg.Token.AccessTTL.Minutes() != 15 {
		t.Errorf("default access ttl = %s, want 15m", cfg.Token.AccessTTL)
	}
	if cfg.Token.RefreshTTL.Hours() != 168 {
		t.Errorf("default refresh ttl = %s, want 168h", cfg.Token.RefreshTTL)
	}
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		t.Error("development secrets must be filled in")
	}
	if cfg.IsProduction() {
		t.Error("defaults must not look like production")
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := new(Config)
	cfg.HTTP.Port = 8080
	cfg.SecretKey.Access = "explicit"
	applyDefaults(cfg)

	if cfg.HTTP.Port != 8080 {
		t.Errorf("explicit http port was overwritten: %d", cfg.HTTP.Port)
	}
	if cfg.SecretKey.Access != "explicit" {
		t.Errorf("explicit secret was overwritten: %q", cfg.SecretKey.Access)
	}
}

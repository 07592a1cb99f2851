// File: /config/config_test.go
package config

import (
	"errors"
	"os"
	"testing"
)

func TestLoadRejectsDefaultSecretInRelease(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		secret  *string
		wantErr bool
	}{
		{name: "release without secret", mode: "release", wantErr: true},
		{name: "release with default secret", mode: "release", secret: strPtr(insecureSessionSecret), wantErr: true},
		{name: "release with empty secret", mode: "release", secret: strPtr(""), wantErr: true},
		{name: "release with real secret", mode: "release", secret: strPtr("0f9c2a7e-production-secret")},
		{name: "debug keeps default", mode: "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GIN_MODE", tt.mode)
			if tt.secret != nil {
				t.Setenv("SESSION_SECRET", *tt.secret)
			} else {
				t.Setenv("SESSION_SECRET", "")
				os.Unsetenv("SESSION_SECRET")
			}

			cfg, err := Load()
			if tt.wantErr {
				if !errors.Is(err, ErrInsecureSecret) {
					t.Fatalf("Load() error = %v, want ErrInsecureSecret", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load(): %v", err)
			}
			if tt.secret != nil && cfg.SessionSecret != *tt.secret {
				t.Errorf("SessionSecret = %q", cfg.SessionSecret)
			}
		})
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("GIN_MODE", "test")
	t.Setenv("STORAGE_DRIVER", "mongo")
	if _, err := Load(); err == nil {
		t.Fatal("unknown storage driver accepted")
	}
}

func strPtr(s string) *string { return &s }

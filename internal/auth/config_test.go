package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGatePolicy(t *testing.T) {
	policy := DefaultGatePolicy()

	assert.True(t, policy.AdminExempt)
	assert.Contains(t, policy.ExemptPaths, "/")
	assert.Contains(t, policy.ExemptPaths, "/health")
	assert.Contains(t, policy.ExemptSuffixes, ".html")
}

func TestIsExempt(t *testing.T) {
	policy := DefaultGatePolicy()

	tests := []struct {
		name   string
		path   string
		exempt bool
	}{
		{"root", "/", true},
		{"health probe", "/health", true},
		{"stylesheet", "/styles.css", true},
		{"admin login page", "/admin/login", true},
		{"swagger ui", "/swagger/index.html", true},
		{"html suffix", "/pages/dashboard.html", true},
		{"js suffix", "/app.js", true},
		{"favicon", "/favicon.ico", true},
		{"admin api root", "/api/admin", true},
		{"admin api subpath", "/api/admin/keys", true},
		{"deployments api", "/api/deployments", false},
		{"applications api", "/api/applications", false},
		{"regions api", "/api/regions", false},
		{"health lookalike", "/healthcheck", false},
		{"admin lookalike", "/api/administrators", false},
		{"unknown path", "/api/unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exempt, policy.IsExempt(tt.path), "path %q", tt.path)
		})
	}
}

func TestIsExempt_AdminGateEnabled(t *testing.T) {
	policy := DefaultGatePolicy()
	policy.AdminExempt = false

	assert.False(t, policy.IsExempt("/api/admin/keys"))
	assert.False(t, policy.IsExempt("/api/admin"))
	// Other exemptions are unaffected.
	assert.True(t, policy.IsExempt("/health"))
}

func TestIsExempt_DoesNotMutatePolicy(t *testing.T) {
	policy := DefaultGatePolicy()
	before := len(policy.ExemptPaths)

	policy.IsExempt("/api/admin/keys")
	policy.IsExempt("/api/deployments")

	assert.Len(t, policy.ExemptPaths, before)
}

func TestLoadGatePolicy_MissingFileFallsBackToDefaults(t *testing.T) {
	policy, err := LoadGatePolicy(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultGatePolicy(), policy)
}

func TestLoadGatePolicy_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.yaml")
	content := []byte(`exempt_paths:
  - /
  - /health
exempt_suffixes:
  - .css
admin_exempt: false
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	policy, err := LoadGatePolicy(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/health"}, policy.ExemptPaths)
	assert.Equal(t, []string{".css"}, policy.ExemptSuffixes)
	assert.False(t, policy.AdminExempt)
	assert.False(t, policy.IsExempt("/api/admin/keys"))
}

func TestLoadGatePolicy_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exempt_paths: [unclosed"), 0o600))

	policy, err := LoadGatePolicy(path)

	assert.Error(t, err)
	assert.Nil(t, policy)
}

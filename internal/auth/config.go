package auth

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// GatePolicy decides which request paths are reachable without a credential.
// Static assets and the health probe must work before a client has a key;
// the admin API exemption is a deliberate, named policy decision (the admin
// surface is expected to carry its own access control) and can be turned off
// here without touching gate logic.
type GatePolicy struct {
	ExemptPaths    []string `yaml:"exempt_paths"`
	ExemptSuffixes []string `yaml:"exempt_suffixes"`
	AdminExempt    bool     `yaml:"admin_exempt"`
}

// AdminAPIPrefix is the path prefix of the key administration surface
const AdminAPIPrefix = "/api/admin"

// DefaultGatePolicy returns the policy used when no auth config file exists
func DefaultGatePolicy() *GatePolicy {
	return &GatePolicy{
		ExemptPaths: []string{
			"/",
			"/health",
			"/styles.css",
			"/admin/login",
			"/swagger",
		},
		ExemptSuffixes: []string{
			".html",
			".css",
			".js",
			".ico",
		},
		AdminExempt: true,
	}
}

// LoadGatePolicy reads the gate policy from a YAML file, falling back to the
// defaults when the file does not exist.
func LoadGatePolicy(path string) (*GatePolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultGatePolicy(), nil
		}
		return nil, fmt.Errorf("read gate policy: %w", err)
	}

	policy := DefaultGatePolicy()
	if err := yaml.Unmarshal(data, policy); err != nil {
		return nil, fmt.Errorf("parse gate policy: %w", err)
	}
	return policy, nil
}

// IsExempt classifies a request path as reachable without a credential.
// Matching is exact or prefix-based for paths, suffix-based for the
// file-extension rules.
func (p *GatePolicy) IsExempt(path string) bool {
	exemptPaths := p.ExemptPaths
	if p.AdminExempt {
		exemptPaths = append(exemptPaths[:len(exemptPaths):len(exemptPaths)], AdminAPIPrefix)
	}

	for _, exempt := range exemptPaths {
		if path == exempt || strings.HasPrefix(path, exempt+"/") {
			return true
		}
	}
	for _, suffix := range p.ExemptSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// Package auth decides whether the caller of a request may manage encounters
package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/encounter-builder/internal/errors"
)

// DefaultRoleHeader is the metadata key carrying the caller's role
const DefaultRoleHeader = "x-encounter-role"

// Authorizer reports whether the current caller is privileged
type Authorizer interface {
	IsPrivileged(ctx context.Context) bool
}

// AuthorizerFunc adapts a function to the Authorizer interface
type AuthorizerFunc func(ctx context.Context) bool

// IsPrivileged calls f(ctx)
func (f AuthorizerFunc) IsPrivileged(ctx context.Context) bool {
	return f(ctx)
}

// AllowAll treats every caller as privileged
var AllowAll = AuthorizerFunc(func(context.Context) bool { return true })

// MetadataConfig configures a MetadataAuthorizer
type MetadataConfig struct {
	// Header is the incoming metadata key holding the role (defaults to DefaultRoleHeader)
	Header string
	// PrivilegedRoles lists roles allowed to create sessions
	PrivilegedRoles []string
}

// Validate validates the config and applies defaults
func (c *MetadataConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Header == "" {
		c.Header = DefaultRoleHeader
	}

	vb := errors.NewValidationBuilder()
	if len(c.PrivilegedRoles) == 0 {
		vb.RequiredField("privileged_roles")
	}
	return vb.Build()
}

// MetadataAuthorizer grants privilege to callers whose role header names one of
// the configured roles. Matching ignores case.
type MetadataAuthorizer struct {
	header string
	roles  map[string]struct{}
}

// NewMetadataAuthorizer creates an authorizer reading roles from gRPC metadata
func NewMetadataAuthorizer(cfg *MetadataConfig) (*MetadataAuthorizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roles := make(map[string]struct{}, len(cfg.PrivilegedRoles))
	for _, role := range cfg.PrivilegedRoles {
		role = strings.ToLower(strings.TrimSpace(role))
		if role != "" {
			roles[role] = struct{}{}
		}
	}

	return &MetadataAuthorizer{
		header: strings.ToLower(cfg.Header),
		roles:  roles,
	}, nil
}

// IsPrivileged reports whether any role value on the request is privileged
func (a *MetadataAuthorizer) IsPrivileged(ctx context.Context) bool {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return false
	}

	for _, value := range md.Get(a.header) {
		if _, ok := a.roles[strings.ToLower(strings.TrimSpace(value))]; ok {
			return true
		}
	}
	return false
}

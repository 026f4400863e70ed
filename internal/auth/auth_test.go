package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/encounter-builder/internal/auth"
	"github.com/KirkDiggler/encounter-builder/internal/errors"
)

func TestMetadataAuthorizer(t *testing.T) {
	authorizer, err := auth.NewMetadataAuthorizer(&auth.MetadataConfig{
		PrivilegedRoles: []string{"GM", " assistant "},
	})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		ctx      context.Context
		expected bool
	}{
		{
			name:     "no metadata",
			ctx:      context.Background(),
			expected: false,
		},
		{
			name:     "privileged role",
			ctx:      metadata.NewIncomingContext(context.Background(), metadata.Pairs(auth.DefaultRoleHeader, "gm")),
			expected: true,
		},
		{
			name:     "role matching ignores case",
			ctx:      metadata.NewIncomingContext(context.Background(), metadata.Pairs(auth.DefaultRoleHeader, "Assistant")),
			expected: true,
		},
		{
			name:     "player role",
			ctx:      metadata.NewIncomingContext(context.Background(), metadata.Pairs(auth.DefaultRoleHeader, "player")),
			expected: false,
		},
		{
			name: "any privileged value wins",
			ctx: metadata.NewIncomingContext(context.Background(),
				metadata.Pairs(auth.DefaultRoleHeader, "player", auth.DefaultRoleHeader, "gm")),
			expected: true,
		},
		{
			name:     "other header",
			ctx:      metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-role", "gm")),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, authorizer.IsPrivileged(tc.ctx))
		})
	}
}

func TestMetadataAuthorizerCustomHeader(t *testing.T) {
	authorizer, err := auth.NewMetadataAuthorizer(&auth.MetadataConfig{
		Header:          "X-Table-Role",
		PrivilegedRoles: []string{"gm"},
	})
	require.NoError(t, err)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-table-role", "gm"))
	assert.True(t, authorizer.IsPrivileged(ctx))
}

func TestNewMetadataAuthorizerRequiresRoles(t *testing.T) {
	_, err := auth.NewMetadataAuthorizer(&auth.MetadataConfig{})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = auth.NewMetadataAuthorizer(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestAuthorizerFunc(t *testing.T) {
	assert.True(t, auth.AllowAll.IsPrivileged(context.Background()))

	deny := auth.AuthorizerFunc(func(context.Context) bool { return false })
	assert.False(t, deny.IsPrivileged(context.Background()))
}

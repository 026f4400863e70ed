package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	encounterbuilderv1alpha1 "github.com/KirkDiggler/encounter-builder/internal/api/encounterbuilder/v1alpha1"
	"github.com/KirkDiggler/encounter-builder/internal/auth"
	"github.com/KirkDiggler/encounter-builder/internal/clients/compendium"
	compendiummock "github.com/KirkDiggler/encounter-builder/internal/clients/compendium/mock"
	"github.com/KirkDiggler/encounter-builder/internal/entities"
	v1alpha1 "github.com/KirkDiggler/encounter-builder/internal/handlers/encounterbuilder/v1alpha1"
	"github.com/KirkDiggler/encounter-builder/internal/orchestrators/encounter"
	"github.com/KirkDiggler/encounter-builder/internal/pkg/idgen"
	"github.com/KirkDiggler/encounter-builder/internal/repositories/combatants"
	"github.com/KirkDiggler/encounter-builder/internal/repositories/sessions"
	"github.com/KirkDiggler/encounter-builder/internal/resolver"
	"github.com/KirkDiggler/encounter-builder/internal/testutils"
)

// newTestClient wires the whole service stack behind an in-memory listener
func newTestClient(t *testing.T, mockCompendium compendium.Client) encounterbuilderv1alpha1.EncounterBuilderServiceClient {
	t.Helper()

	redisClient, _ := testutils.CreateTestRedisClient(t)
	catalog, err := combatants.NewRedis(&combatants.RedisConfig{Client: redisClient})
	require.NoError(t, err)

	for _, c := range append(testutils.CreateTestParty(3, "amiri", "ezren", "kyra", "valeros"),
		testutils.CreateTestCreature("goblin", -1)) {
		_, err := catalog.Put(context.Background(), combatants.PutInput{Combatant: c})
		require.NoError(t, err)
	}

	res, err := resolver.New(&resolver.Config{Catalog: catalog, Compendium: mockCompendium})
	require.NoError(t, err)

	registry, err := sessions.NewInMemory(&sessions.InMemoryConfig{})
	require.NoError(t, err)

	authorizer, err := auth.NewMetadataAuthorizer(&auth.MetadataConfig{PrivilegedRoles: []string{"gm"}})
	require.NoError(t, err)

	orchestrator, err := encounter.NewOrchestrator(&encounter.Config{
		IDGenerator: idgen.NewSequential("session"),
		Sessions:    registry,
		Catalog:     catalog,
		Resolver:    res,
		Authorizer:  authorizer,
	})
	require.NoError(t, err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{EncounterService: orchestrator})
	require.NoError(t, err)

	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	encounterbuilderv1alpha1.RegisterEncounterBuilderServiceServer(server, handler)
	go func() {
		_ = server.Serve(listener) // nolint:errcheck // stops when the test ends
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	})

	return encounterbuilderv1alpha1.NewEncounterBuilderServiceClient(conn)
}

func mustStruct(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return s
}

func TestEncounterBuilderRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCompendium := compendiummock.NewMockClient(ctrl)
	client := newTestClient(t, mockCompendium)

	gmCtx := metadata.AppendToOutgoingContext(context.Background(), auth.DefaultRoleHeader, "gm")
	playerCtx := metadata.AppendToOutgoingContext(context.Background(), auth.DefaultRoleHeader, "player")

	_, err := client.CreateSession(playerCtx, &structpb.Struct{})
	require.Equal(t, codes.PermissionDenied, status.Code(err))

	created, err := client.CreateSession(gmCtx, &structpb.Struct{})
	require.NoError(t, err)
	sessionID := created.GetFields()["session_id"].GetStringValue()
	require.Equal(t, "session_1", sessionID)

	for _, id := range []string{"amiri", "ezren", "kyra", "valeros"} {
		_, err := client.AddAlly(gmCtx, mustStruct(t, map[string]any{
			"session_id":   sessionID,
			"combatant_id": id,
		}))
		require.NoError(t, err)
	}

	mockCompendium.EXPECT().
		GetCombatant(gomock.Any(), "owlbear").
		Return(&entities.Combatant{
			ID:            "owlbear",
			Name:          "Owlbear",
			Kind:          entities.KindNonPlayerCreature,
			Level:         3,
			CollectionTag: compendium.CollectionTag,
		}, nil)

	dropped, err := client.DropCombatant(gmCtx, mustStruct(t, map[string]any{
		"session_id": sessionID,
		"side":       "opponents",
		"payload":    `{"type":"Actor","id":"owlbear","pack":"dnd5e-srd"}`,
	}))
	require.NoError(t, err)
	assert.True(t, dropped.GetFields()["admitted"].GetBoolValue())

	snapshot := dropped.GetFields()["snapshot"].GetStructValue().AsMap()
	assert.Equal(t, float64(3), snapshot["average_ally_level"])
	assert.Equal(t, float64(40), snapshot["total_xp"])
	assert.Equal(t, float64(10), snapshot["per_ally_xp"])
	assert.Equal(t, "trivial", snapshot["difficulty"])

	// the compendium import is now in the world catalog
	listed, err := client.ListCombatants(gmCtx, mustStruct(t, map[string]any{"kind": "non-player-creature"}))
	require.NoError(t, err)
	assert.Len(t, listed.GetFields()["combatants"].GetListValue().GetValues(), 2)

	_, err = client.AddOpponent(gmCtx, mustStruct(t, map[string]any{
		"session_id":     sessionID,
		"combatant_id":   "goblin",
		"collection_tag": "pf2e.pathfinder-bestiary",
	}))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.DropCombatant(gmCtx, mustStruct(t, map[string]any{
		"session_id": sessionID,
		"side":       "opponents",
		"payload":    `{"type":"Item","id":"longsword"}`,
	}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.EndSession(gmCtx, mustStruct(t, map[string]any{"session_id": sessionID}))
	require.NoError(t, err)

	_, err = client.GetSnapshot(gmCtx, mustStruct(t, map[string]any{"session_id": sessionID}))
	assert.Equal(t, codes.NotFound, status.Code(err))
}

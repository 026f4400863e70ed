package v1alpha1_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/encounter-builder/internal/entities"
	"github.com/KirkDiggler/encounter-builder/internal/errors"
	v1alpha1 "github.com/KirkDiggler/encounter-builder/internal/handlers/encounterbuilder/v1alpha1"
	"github.com/KirkDiggler/encounter-builder/internal/orchestrators/encounter"
	encountermock "github.com/KirkDiggler/encounter-builder/internal/orchestrators/encounter/mock"
	"github.com/KirkDiggler/encounter-builder/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *encountermock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
	snapshot    *entities.Snapshot
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = encountermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		EncounterService: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler

	s.snapshot = &entities.Snapshot{
		Allies:           testutils.CreateTestParty(3, "a", "b", "c", "d"),
		Opponents:        []*entities.Combatant{testutils.CreateTestCreature("ogre", 4)},
		Budgets:          entities.Budgets{40, 60, 80, 120, 160},
		AverageAllyLevel: 3,
		TotalXP:          60,
		PerAllyXP:        15,
		Difficulty:       entities.TierLow,
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) assertSnapshot(resp *structpb.Struct) {
	snapshot := resp.GetFields()["snapshot"].GetStructValue().AsMap()
	s.Equal(float64(3), snapshot["average_ally_level"])
	s.Equal(float64(60), snapshot["total_xp"])
	s.Equal(float64(15), snapshot["per_ally_xp"])
	s.Equal("low", snapshot["difficulty"])
	s.Equal(map[string]any{
		"trivial":  float64(40),
		"low":      float64(60),
		"moderate": float64(80),
		"severe":   float64(120),
		"extreme":  float64(160),
	}, snapshot["budgets"])
	s.Len(snapshot["allies"], 4)
	s.Len(snapshot["opponents"], 1)
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreateSession() {
	s.mockService.EXPECT().
		CreateSession(s.ctx, &encounter.CreateSessionInput{}).
		Return(&encounter.CreateSessionOutput{SessionID: "session_1", Snapshot: s.snapshot}, nil)

	resp, err := s.handler.CreateSession(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)
	s.Equal("session_1", resp.GetFields()["session_id"].GetStringValue())
	s.assertSnapshot(resp)
}

func (s *HandlerTestSuite) TestCreateSessionPermissionDenied() {
	s.mockService.EXPECT().
		CreateSession(s.ctx, gomock.Any()).
		Return(nil, errors.PermissionDenied("only privileged users can create sessions"))

	_, err := s.handler.CreateSession(s.ctx, &structpb.Struct{})
	s.Equal(codes.PermissionDenied, status.Code(err))
}

func (s *HandlerTestSuite) TestAddOpponent() {
	ogre := testutils.CreateTestCreature("ogre", 4)
	s.mockService.EXPECT().
		AddOpponent(s.ctx, &encounter.AddOpponentInput{
			SessionID:     "session_1",
			CombatantID:   "ogre",
			CollectionTag: "dnd5e-srd",
		}).
		Return(&encounter.AddOpponentOutput{Combatant: ogre, Admitted: true, Snapshot: s.snapshot}, nil)

	resp, err := s.handler.AddOpponent(s.ctx, s.request(map[string]any{
		"session_id":     "session_1",
		"combatant_id":   " ogre ",
		"collection_tag": "dnd5e-srd",
	}))
	s.Require().NoError(err)
	s.True(resp.GetFields()["admitted"].GetBoolValue())
	s.Equal(map[string]any{
		"id":    "ogre",
		"name":  "Creature ogre",
		"kind":  "non-player-creature",
		"level": float64(4),
	}, resp.GetFields()["combatant"].GetStructValue().AsMap())
	s.assertSnapshot(resp)
}

func (s *HandlerTestSuite) TestAddAllyNotFound() {
	s.mockService.EXPECT().
		AddAlly(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("combatant not found").WithMeta("combatant_id", "ghost"))

	_, err := s.handler.AddAlly(s.ctx, s.request(map[string]any{
		"session_id":   "session_1",
		"combatant_id": "ghost",
	}))
	s.Equal(codes.NotFound, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.Equal("ghost", errors.GetMeta(converted)["combatant_id"])
}

func (s *HandlerTestSuite) TestDropCombatant() {
	wolf := testutils.CreateTestCreature("wolf", 1)

	s.Run("payload as string", func() {
		s.mockService.EXPECT().
			DropCombatant(s.ctx, &encounter.DropCombatantInput{
				SessionID: "session_1",
				Side:      entities.SideAllies,
				Payload:   []byte(`{"type":"Actor","id":"wolf"}`),
			}).
			Return(&encounter.DropCombatantOutput{Combatant: wolf, Admitted: true, Snapshot: s.snapshot}, nil)

		resp, err := s.handler.DropCombatant(s.ctx, s.request(map[string]any{
			"session_id": "session_1",
			"side":       "allies",
			"payload":    `{"type":"Actor","id":"wolf"}`,
		}))
		s.Require().NoError(err)
		s.True(resp.GetFields()["admitted"].GetBoolValue())
	})

	s.Run("payload as object", func() {
		s.mockService.EXPECT().
			DropCombatant(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *encounter.DropCombatantInput) (*encounter.DropCombatantOutput, error) {
				payload, err := entities.ParseDropPayload(input.Payload)
				s.Require().NoError(err)
				s.Equal("wolf", payload.ID)
				s.Equal("dnd5e-srd", payload.Pack)
				return &encounter.DropCombatantOutput{Combatant: wolf, Admitted: false, Snapshot: s.snapshot}, nil
			})

		resp, err := s.handler.DropCombatant(s.ctx, s.request(map[string]any{
			"session_id": "session_1",
			"side":       "opponents",
			"payload": map[string]any{
				"type": "Actor",
				"id":   "wolf",
				"pack": "dnd5e-srd",
			},
		}))
		s.Require().NoError(err)
		s.False(resp.GetFields()["admitted"].GetBoolValue())
	})

	s.Run("payload of the wrong shape", func() {
		_, err := s.handler.DropCombatant(s.ctx, s.request(map[string]any{
			"session_id": "session_1",
			"side":       "allies",
			"payload":    float64(7),
		}))
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestRemoveCombatant() {
	s.mockService.EXPECT().
		RemoveCombatant(s.ctx, &encounter.RemoveCombatantInput{
			SessionID: "session_1",
			Side:      entities.SideOpponents,
			Name:      "Ogre",
		}).
		Return(&encounter.RemoveCombatantOutput{Removed: true, Snapshot: s.snapshot}, nil)

	resp, err := s.handler.RemoveCombatant(s.ctx, s.request(map[string]any{
		"session_id": "session_1",
		"side":       "opponents",
		"name":       "Ogre",
	}))
	s.Require().NoError(err)
	s.True(resp.GetFields()["removed"].GetBoolValue())
}

func (s *HandlerTestSuite) TestClearAndEnd() {
	s.mockService.EXPECT().
		ClearRosters(s.ctx, &encounter.ClearRostersInput{SessionID: "session_1"}).
		Return(&encounter.ClearRostersOutput{Snapshot: &entities.Snapshot{}}, nil)
	s.mockService.EXPECT().
		EndSession(s.ctx, &encounter.EndSessionInput{SessionID: "session_1"}).
		Return(&encounter.EndSessionOutput{}, nil)

	req := s.request(map[string]any{"session_id": "session_1"})

	resp, err := s.handler.ClearRosters(s.ctx, req)
	s.Require().NoError(err)
	snapshot := resp.GetFields()["snapshot"].GetStructValue().AsMap()
	s.Equal("trivial", snapshot["difficulty"])
	s.Empty(snapshot["allies"])

	_, err = s.handler.EndSession(s.ctx, req)
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestRegisterCombatant() {
	s.Run("converts the combatant", func() {
		expected := &entities.Combatant{
			ID:    "bandit",
			Name:  "Bandit",
			Kind:  entities.KindNonPlayerCreature,
			Level: -1,
		}
		s.mockService.EXPECT().
			RegisterCombatant(s.ctx, &encounter.RegisterCombatantInput{Combatant: expected}).
			Return(&encounter.RegisterCombatantOutput{Combatant: expected, Created: true}, nil)

		resp, err := s.handler.RegisterCombatant(s.ctx, s.request(map[string]any{
			"combatant": map[string]any{
				"id":    "bandit",
				"name":  "Bandit",
				"kind":  "non-player-creature",
				"level": float64(-1),
			},
		}))
		s.Require().NoError(err)
		s.True(resp.GetFields()["created"].GetBoolValue())
	})

	s.Run("fractional level", func() {
		_, err := s.handler.RegisterCombatant(s.ctx, s.request(map[string]any{
			"combatant": map[string]any{"id": "bandit", "level": 1.5},
		}))
		s.Equal(codes.InvalidArgument, status.Code(err))
	})

	for _, level := range []float64{1e300, -1e19, 3e9} {
		s.Run(fmt.Sprintf("level %g does not fit an int", level), func() {
			_, err := s.handler.RegisterCombatant(s.ctx, s.request(map[string]any{
				"combatant": map[string]any{"id": "bandit", "level": level},
			}))
			s.Equal(codes.InvalidArgument, status.Code(err))
			s.Contains(status.Convert(err).Message(), "out of range")
		})
	}

	s.Run("missing combatant", func() {
		_, err := s.handler.RegisterCombatant(s.ctx, &structpb.Struct{})
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestListCombatants() {
	s.mockService.EXPECT().
		ListCombatants(s.ctx, &encounter.ListCombatantsInput{Kind: entities.KindPlayerCharacter}).
		Return(&encounter.ListCombatantsOutput{Combatants: testutils.CreateTestParty(2, "a", "b")}, nil)

	resp, err := s.handler.ListCombatants(s.ctx, s.request(map[string]any{"kind": "player-character"}))
	s.Require().NoError(err)
	s.Len(resp.GetFields()["combatants"].GetListValue().GetValues(), 2)

	_, err = s.handler.ListCombatants(s.ctx, s.request(map[string]any{"kind": "hazard"}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

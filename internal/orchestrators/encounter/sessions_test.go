package encounter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/encounter-builder/internal/auth"
	"github.com/KirkDiggler/encounter-builder/internal/entities"
	"github.com/KirkDiggler/encounter-builder/internal/errors"
	"github.com/KirkDiggler/encounter-builder/internal/orchestrators/encounter"
	"github.com/KirkDiggler/encounter-builder/internal/pkg/idgen"
	combatantsmock "github.com/KirkDiggler/encounter-builder/internal/repositories/combatants/mock"
	"github.com/KirkDiggler/encounter-builder/internal/repositories/sessions"
	sessionsmock "github.com/KirkDiggler/encounter-builder/internal/repositories/sessions/mock"
	"github.com/KirkDiggler/encounter-builder/internal/resolver"
	resolvermock "github.com/KirkDiggler/encounter-builder/internal/resolver/mock"
	"github.com/KirkDiggler/encounter-builder/internal/testutils"
)

// SessionStoreTestSuite drives the orchestrator against a mocked session registry to
// cover registry failures that the in-memory registry only produces through timing.
type SessionStoreTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockSessions *sessionsmock.MockRepository
	mockResolver *resolvermock.MockResolver
	orchestrator encounter.Service
	ctx          context.Context
}

func TestSessionStoreSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreTestSuite))
}

func (s *SessionStoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSessions = sessionsmock.NewMockRepository(s.ctrl)
	s.mockResolver = resolvermock.NewMockResolver(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = encounter.NewOrchestrator(&encounter.Config{
		IDGenerator: idgen.NewSequential("session"),
		Sessions:    s.mockSessions,
		Catalog:     combatantsmock.NewMockRepository(s.ctrl),
		Resolver:    s.mockResolver,
		Authorizer:  auth.AllowAll,
	})
	s.Require().NoError(err)
}

func (s *SessionStoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectExpired makes the registry report the session as gone
func (s *SessionStoreTestSuite) expectExpired(sessionID string) {
	s.mockSessions.EXPECT().
		Get(s.ctx, &sessions.GetInput{ID: sessionID}).
		Return(nil, errors.NotFoundf("session %s not found", sessionID))
}

// liveSession builds a real session to hand back from the mocked registry
func (s *SessionStoreTestSuite) liveSession(sessionID string) *sessions.Session {
	repo, err := sessions.NewInMemory(&sessions.InMemoryConfig{})
	s.Require().NoError(err)

	out, err := repo.Create(s.ctx, &sessions.CreateInput{ID: sessionID})
	s.Require().NoError(err)
	return out.Session
}

func (s *SessionStoreTestSuite) TestCreateSession_IDCollision() {
	s.mockSessions.EXPECT().
		Create(s.ctx, &sessions.CreateInput{ID: "session_1"}).
		Return(nil, errors.AlreadyExistsf("session %s already exists", "session_1"))

	out, err := s.orchestrator.CreateSession(s.ctx, &encounter.CreateSessionInput{})

	s.Nil(out)
	s.True(errors.IsAlreadyExists(err))
	s.Contains(err.Error(), "failed to create session session_1")
}

func (s *SessionStoreTestSuite) TestExpiredSessionIsNotFound() {
	s.Run("snapshot", func() {
		s.expectExpired("stale")

		_, err := s.orchestrator.GetSnapshot(s.ctx, &encounter.GetSnapshotInput{SessionID: "stale"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("add ally does not resolve the combatant", func() {
		s.expectExpired("stale")

		_, err := s.orchestrator.AddAlly(s.ctx, &encounter.AddAllyInput{
			SessionID:   "stale",
			CombatantID: "fighter",
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("drop", func() {
		s.expectExpired("stale")

		_, err := s.orchestrator.DropCombatant(s.ctx, &encounter.DropCombatantInput{
			SessionID: "stale",
			Side:      entities.SideOpponents,
			Payload:   []byte(`{"type":"Actor","id":"goblin"}`),
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("clear", func() {
		s.expectExpired("stale")

		_, err := s.orchestrator.ClearRosters(s.ctx, &encounter.ClearRostersInput{SessionID: "stale"})
		s.True(errors.IsNotFound(err))
		s.Contains(err.Error(), "failed to get session stale")
	})
}

func (s *SessionStoreTestSuite) TestEndSession_UnknownSession() {
	s.mockSessions.EXPECT().
		Delete(s.ctx, &sessions.DeleteInput{ID: "gone"}).
		Return(nil, errors.NotFoundf("session %s not found", "gone"))

	out, err := s.orchestrator.EndSession(s.ctx, &encounter.EndSessionInput{SessionID: "gone"})

	s.Nil(out)
	s.True(errors.IsNotFound(err))
}

func (s *SessionStoreTestSuite) TestAddAllyMutatesTheRegisteredSession() {
	session := s.liveSession("live")
	fighter := testutils.CreateTestCharacter("fighter", 4)

	s.mockSessions.EXPECT().
		Get(s.ctx, &sessions.GetInput{ID: "live"}).
		Return(&sessions.GetOutput{Session: session}, nil)
	s.mockResolver.EXPECT().
		Resolve(s.ctx, &resolver.ResolveInput{ID: "fighter"}).
		Return(&resolver.ResolveOutput{Combatant: fighter}, nil)

	out, err := s.orchestrator.AddAlly(s.ctx, &encounter.AddAllyInput{
		SessionID:   "live",
		CombatantID: "fighter",
	})
	s.Require().NoError(err)

	s.Equal(4, out.Snapshot.AverageAllyLevel)
	s.Equal(out.Snapshot, session.Snapshot())
}

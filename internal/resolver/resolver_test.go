package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/encounter-builder/internal/clients/compendium"
	compendiummock "github.com/KirkDiggler/encounter-builder/internal/clients/compendium/mock"
	"github.com/KirkDiggler/encounter-builder/internal/entities"
	"github.com/KirkDiggler/encounter-builder/internal/errors"
	"github.com/KirkDiggler/encounter-builder/internal/repositories/combatants"
	combatantsmock "github.com/KirkDiggler/encounter-builder/internal/repositories/combatants/mock"
	"github.com/KirkDiggler/encounter-builder/internal/resolver"
	"github.com/KirkDiggler/encounter-builder/internal/testutils"
)

type ResolverTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockCatalog    *combatantsmock.MockRepository
	mockCompendium *compendiummock.MockClient
	resolver       resolver.Resolver
	ctx            context.Context
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = combatantsmock.NewMockRepository(s.ctrl)
	s.mockCompendium = compendiummock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	r, err := resolver.New(&resolver.Config{
		Catalog:    s.mockCatalog,
		Compendium: s.mockCompendium,
	})
	s.Require().NoError(err)
	s.resolver = r
}

func (s *ResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ResolverTestSuite) TestNewValidatesConfig() {
	_, err := resolver.New(&resolver.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "invalid config")

	_, err = resolver.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ResolverTestSuite) TestResolveFromCatalog() {
	wolf := testutils.CreateTestCreature("wolf", 1)
	s.mockCatalog.EXPECT().
		Get(s.ctx, combatants.GetInput{ID: "wolf"}).
		Return(&combatants.GetOutput{Combatant: wolf}, nil)

	out, err := s.resolver.Resolve(s.ctx, &resolver.ResolveInput{ID: "wolf"})
	s.Require().NoError(err)
	s.Equal(wolf, out.Combatant)
	s.False(out.Imported)
}

func (s *ResolverTestSuite) TestResolveMissingFromCatalog() {
	s.mockCatalog.EXPECT().
		Get(s.ctx, combatants.GetInput{ID: "ghost"}).
		Return(nil, errors.NotFound("combatant not found"))

	out, err := s.resolver.Resolve(s.ctx, &resolver.ResolveInput{ID: "ghost"})
	s.Nil(out)
	s.True(errors.IsNotFound(err))
}

func (s *ResolverTestSuite) TestResolveImportsFromCompendium() {
	owlbear := &entities.Combatant{
		ID:            "owlbear",
		Name:          "Owlbear",
		Kind:          entities.KindNonPlayerCreature,
		Level:         3,
		CollectionTag: compendium.CollectionTag,
	}

	gomock.InOrder(
		s.mockCompendium.EXPECT().GetCombatant(s.ctx, "owlbear").Return(owlbear, nil),
		s.mockCatalog.EXPECT().
			Put(s.ctx, combatants.PutInput{Combatant: owlbear}).
			Return(&combatants.PutOutput{Combatant: owlbear, Created: true}, nil),
	)

	out, err := s.resolver.Resolve(s.ctx, &resolver.ResolveInput{
		ID:            "owlbear",
		CollectionTag: compendium.CollectionTag,
	})
	s.Require().NoError(err)
	s.Equal(owlbear, out.Combatant)
	s.True(out.Imported)
}

func (s *ResolverTestSuite) TestResolveCompendiumFailureSkipsImport() {
	s.mockCompendium.EXPECT().
		GetCombatant(s.ctx, "nothing").
		Return(nil, errors.NotFound("monster nothing not found in compendium"))

	_, err := s.resolver.Resolve(s.ctx, &resolver.ResolveInput{
		ID:            "nothing",
		CollectionTag: compendium.CollectionTag,
	})
	s.True(errors.IsNotFound(err))
}

func (s *ResolverTestSuite) TestResolveImportFailure() {
	owlbear := testutils.CreateTestCreature("owlbear", 3)
	s.mockCompendium.EXPECT().GetCombatant(s.ctx, "owlbear").Return(owlbear, nil)
	s.mockCatalog.EXPECT().
		Put(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	_, err := s.resolver.Resolve(s.ctx, &resolver.ResolveInput{
		ID:            "owlbear",
		CollectionTag: compendium.CollectionTag,
	})
	s.True(errors.IsInternal(err))
}

func (s *ResolverTestSuite) TestResolveUnknownCollection() {
	out, err := s.resolver.Resolve(s.ctx, &resolver.ResolveInput{
		ID:            "goblin",
		CollectionTag: "pf2e.pathfinder-bestiary",
	})
	s.Nil(out)
	s.True(errors.IsNotFound(err))
	s.Equal("pf2e.pathfinder-bestiary", errors.GetMeta(err)["collection_tag"])
}

func (s *ResolverTestSuite) TestResolveInvalidInput() {
	_, err := s.resolver.Resolve(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.resolver.Resolve(s.ctx, &resolver.ResolveInput{ID: " "})
	s.True(errors.IsInvalidArgument(err))
}

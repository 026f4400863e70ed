// Package encounter implements the encounter-building sessions: roster gestures,
// combatant resolution and the world catalog
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/encounter-builder/internal/orchestrators/encounter Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/encounter-builder/internal/auth"
	"github.com/KirkDiggler/encounter-builder/internal/engine/roster"
	"github.com/KirkDiggler/encounter-builder/internal/entities"
	"github.com/KirkDiggler/encounter-builder/internal/errors"
	"github.com/KirkDiggler/encounter-builder/internal/pkg/idgen"
	"github.com/KirkDiggler/encounter-builder/internal/repositories/combatants"
	"github.com/KirkDiggler/encounter-builder/internal/repositories/sessions"
	"github.com/KirkDiggler/encounter-builder/internal/resolver"
)

// Service defines the interface for encounter-building operations
type Service interface {
	// CreateSession opens a session with empty rosters. Only privileged callers may.
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSnapshot returns the session's current snapshot
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error)

	// AddAlly resolves a combatant and puts it on the ally side
	AddAlly(ctx context.Context, input *AddAllyInput) (*AddAllyOutput, error)

	// AddOpponent resolves a combatant and offers it to the opponent side
	AddOpponent(ctx context.Context, input *AddOpponentInput) (*AddOpponentOutput, error)

	// DropCombatant handles a drag-and-drop payload onto one side
	DropCombatant(ctx context.Context, input *DropCombatantInput) (*DropCombatantOutput, error)

	// RemoveCombatant removes one entry from one side
	RemoveCombatant(ctx context.Context, input *RemoveCombatantInput) (*RemoveCombatantOutput, error)

	// ClearRosters empties both sides
	ClearRosters(ctx context.Context, input *ClearRostersInput) (*ClearRostersOutput, error)

	// EndSession closes a session
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// RegisterCombatant adds or replaces a world catalog record. Only privileged callers may.
	RegisterCombatant(ctx context.Context, input *RegisterCombatantInput) (*RegisterCombatantOutput, error)

	// ListCombatants lists the world catalog
	ListCombatants(ctx context.Context, input *ListCombatantsInput) (*ListCombatantsOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	IDGenerator idgen.Generator
	Sessions    sessions.Repository
	Catalog     combatants.Repository
	Resolver    resolver.Resolver
	Authorizer  auth.Authorizer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Sessions == nil {
		vb.RequiredField("Sessions")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Authorizer == nil {
		vb.RequiredField("Authorizer")
	}

	return vb.Build()
}

type orchestrator struct {
	idGen      idgen.Generator
	sessions   sessions.Repository
	catalog    combatants.Repository
	resolver   resolver.Resolver
	authorizer auth.Authorizer
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		idGen:      cfg.IDGenerator,
		sessions:   cfg.Sessions,
		catalog:    cfg.Catalog,
		resolver:   cfg.Resolver,
		authorizer: cfg.Authorizer,
	}, nil
}

func (o *orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if !o.authorizer.IsPrivileged(ctx) {
		return nil, errors.PermissionDenied("only privileged users can create sessions")
	}

	sessionID := o.idGen.Generate()

	out, err := o.sessions.Create(ctx, &sessions.CreateInput{ID: sessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create session %s", sessionID)
	}

	slog.InfoContext(ctx, "session created", "session_id", sessionID)

	return &CreateSessionOutput{
		SessionID: sessionID,
		Snapshot:  out.Session.Snapshot(),
	}, nil
}

func (o *orchestrator) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSnapshotOutput{Snapshot: session.Snapshot()}, nil
}

func (o *orchestrator) AddAlly(ctx context.Context, input *AddAllyInput) (*AddAllyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, combatant, err := o.prepareAdd(ctx, input.SessionID, input.CombatantID, input.CollectionTag)
	if err != nil {
		return nil, err
	}

	snapshot := session.Mutate(func(store *roster.Store) {
		store.AddAlly(combatant)
	})

	slog.InfoContext(ctx, "ally added",
		"session_id", session.ID,
		"combatant_id", combatant.ID,
		"difficulty", snapshot.Difficulty.String())

	return &AddAllyOutput{
		Combatant: combatant,
		Snapshot:  snapshot,
	}, nil
}

func (o *orchestrator) AddOpponent(ctx context.Context, input *AddOpponentInput) (*AddOpponentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, combatant, err := o.prepareAdd(ctx, input.SessionID, input.CombatantID, input.CollectionTag)
	if err != nil {
		return nil, err
	}

	admitted, snapshot := addOpponent(session, combatant)
	logOpponent(ctx, session.ID, combatant, admitted, snapshot)

	return &AddOpponentOutput{
		Combatant: combatant,
		Admitted:  admitted,
		Snapshot:  snapshot,
	}, nil
}

func (o *orchestrator) DropCombatant(ctx context.Context, input *DropCombatantInput) (*DropCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if !input.Side.IsValid() {
		return nil, invalidSide(input.Side)
	}

	payload, err := entities.ParseDropPayload(input.Payload)
	if err != nil {
		return nil, err
	}

	session, combatant, err := o.prepareAdd(ctx, input.SessionID, payload.ID, payload.Pack)
	if err != nil {
		return nil, err
	}

	if input.Side == entities.SideAllies {
		snapshot := session.Mutate(func(store *roster.Store) {
			store.AddAlly(combatant)
		})
		slog.InfoContext(ctx, "ally dropped",
			"session_id", session.ID,
			"combatant_id", combatant.ID)

		return &DropCombatantOutput{
			Combatant: combatant,
			Admitted:  true,
			Snapshot:  snapshot,
		}, nil
	}

	admitted, snapshot := addOpponent(session, combatant)
	logOpponent(ctx, session.ID, combatant, admitted, snapshot)

	return &DropCombatantOutput{
		Combatant: combatant,
		Admitted:  admitted,
		Snapshot:  snapshot,
	}, nil
}

func (o *orchestrator) RemoveCombatant(ctx context.Context, input *RemoveCombatantInput) (*RemoveCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("side", string(input.Side), []string{string(entities.SideAllies), string(entities.SideOpponents)}, vb)
	if input.CombatantID == "" && input.Name == "" {
		vb.Field("combatant_id", "combatant_id or name is required")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	var removed bool
	snapshot := session.Mutate(func(store *roster.Store) {
		if input.CombatantID != "" {
			removed = store.Remove(input.Side, input.CombatantID)
			return
		}
		removed = store.RemoveByName(input.Side, input.Name)
	})

	slog.InfoContext(ctx, "combatant removal requested",
		"session_id", session.ID,
		"side", string(input.Side),
		"combatant_id", input.CombatantID,
		"name", input.Name,
		"removed", removed)

	return &RemoveCombatantOutput{
		Removed:  removed,
		Snapshot: snapshot,
	}, nil
}

func (o *orchestrator) ClearRosters(ctx context.Context, input *ClearRostersInput) (*ClearRostersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	snapshot := session.Mutate(func(store *roster.Store) {
		store.Clear()
	})

	slog.InfoContext(ctx, "rosters cleared", "session_id", session.ID)

	return &ClearRostersOutput{Snapshot: snapshot}, nil
}

func (o *orchestrator) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session_id is required")
	}

	if _, err := o.sessions.Delete(ctx, &sessions.DeleteInput{ID: input.SessionID}); err != nil {
		return nil, errors.Wrapf(err, "failed to end session %s", input.SessionID)
	}

	slog.InfoContext(ctx, "session ended", "session_id", input.SessionID)

	return &EndSessionOutput{}, nil
}

func (o *orchestrator) RegisterCombatant(ctx context.Context, input *RegisterCombatantInput) (*RegisterCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if !o.authorizer.IsPrivileged(ctx) {
		return nil, errors.PermissionDenied("only privileged users can register combatants")
	}

	out, err := o.catalog.Put(ctx, combatants.PutInput{Combatant: input.Combatant})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register combatant")
	}

	slog.InfoContext(ctx, "combatant registered",
		"combatant_id", out.Combatant.ID,
		"kind", string(out.Combatant.Kind),
		"created", out.Created)

	return &RegisterCombatantOutput{
		Combatant: out.Combatant,
		Created:   out.Created,
	}, nil
}

func (o *orchestrator) ListCombatants(ctx context.Context, input *ListCombatantsInput) (*ListCombatantsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.catalog.List(ctx, combatants.ListInput{Kind: input.Kind})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list combatants")
	}

	return &ListCombatantsOutput{Combatants: out.Combatants}, nil
}

func (o *orchestrator) getSession(ctx context.Context, sessionID string) (*sessions.Session, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session_id is required")
	}

	out, err := o.sessions.Get(ctx, &sessions.GetInput{ID: sessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get session %s", sessionID)
	}
	return out.Session, nil
}

// prepareAdd loads the session and resolves the combatant without touching the rosters
func (o *orchestrator) prepareAdd(ctx context.Context, sessionID, combatantID, collectionTag string) (*sessions.Session, *entities.Combatant, error) {
	if combatantID == "" {
		return nil, nil, errors.InvalidArgument("combatant_id is required")
	}

	session, err := o.getSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	out, err := o.resolver.Resolve(ctx, &resolver.ResolveInput{
		ID:            combatantID,
		CollectionTag: collectionTag,
	})
	if err != nil {
		slog.InfoContext(ctx, "combatant did not resolve",
			"session_id", sessionID,
			"combatant_id", combatantID,
			"collection_tag", collectionTag,
			"error", err)
		return nil, nil, errors.Wrapf(err, "failed to resolve combatant %s", combatantID)
	}

	return session, out.Combatant, nil
}

func addOpponent(session *sessions.Session, combatant *entities.Combatant) (bool, *entities.Snapshot) {
	var admitted bool
	snapshot := session.Mutate(func(store *roster.Store) {
		admitted = store.AddOpponent(combatant)
	})
	return admitted, snapshot
}

func logOpponent(ctx context.Context, sessionID string, combatant *entities.Combatant, admitted bool, snapshot *entities.Snapshot) {
	if !admitted {
		slog.InfoContext(ctx, "opponent rejected by level",
			"session_id", sessionID,
			"combatant_id", combatant.ID,
			"level", combatant.Level,
			"average_ally_level", snapshot.AverageAllyLevel)
		return
	}

	slog.InfoContext(ctx, "opponent added",
		"session_id", sessionID,
		"combatant_id", combatant.ID,
		"total_xp", snapshot.TotalXP,
		"difficulty", snapshot.Difficulty.String())
}

func invalidSide(side entities.Side) error {
	return errors.InvalidArgumentf("side must be one of: %s, %s", entities.SideAllies, entities.SideOpponents).
		WithMeta("side", string(side))
}

// Package v1alpha1 handles the EncounterBuilderService grpc interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	encounterbuilderv1alpha1 "github.com/KirkDiggler/encounter-builder/internal/api/encounterbuilder/v1alpha1"
	"github.com/KirkDiggler/encounter-builder/internal/entities"
	"github.com/KirkDiggler/encounter-builder/internal/errors"
	"github.com/KirkDiggler/encounter-builder/internal/orchestrators/encounter"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	EncounterService encounter.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.EncounterService == nil {
		return errors.InvalidArgument("encounter service is required")
	}
	return nil
}

// Handler implements the EncounterBuilderService gRPC service
type Handler struct {
	encounterbuilderv1alpha1.UnimplementedEncounterBuilderServiceServer
	encounterService encounter.Service
}

var _ encounterbuilderv1alpha1.EncounterBuilderServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		encounterService: cfg.EncounterService,
	}, nil
}

// CreateSession opens a session for a privileged caller
func (h *Handler) CreateSession(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.encounterService.CreateSession(ctx, &encounter.CreateSessionInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		keySessionID: output.SessionID,
		keySnapshot:  snapshotToMap(output.Snapshot),
	})
}

// GetSnapshot returns the session's snapshot
func (h *Handler) GetSnapshot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.encounterService.GetSnapshot(ctx, &encounter.GetSnapshotInput{
		SessionID: getString(req, keySessionID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		keySnapshot: snapshotToMap(output.Snapshot),
	})
}

// AddAlly adds a combatant to the allies
func (h *Handler) AddAlly(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.encounterService.AddAlly(ctx, &encounter.AddAllyInput{
		SessionID:     getString(req, keySessionID),
		CombatantID:   getString(req, keyCombatantID),
		CollectionTag: getString(req, keyCollectionTag),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		keyCombatant: combatantToMap(output.Combatant),
		keySnapshot:  snapshotToMap(output.Snapshot),
	})
}

// AddOpponent offers a combatant to the opponents
func (h *Handler) AddOpponent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.encounterService.AddOpponent(ctx, &encounter.AddOpponentInput{
		SessionID:     getString(req, keySessionID),
		CombatantID:   getString(req, keyCombatantID),
		CollectionTag: getString(req, keyCollectionTag),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		keyCombatant: combatantToMap(output.Combatant),
		keyAdmitted:  output.Admitted,
		keySnapshot:  snapshotToMap(output.Snapshot),
	})
}

// DropCombatant applies a drag-and-drop payload to one side
func (h *Handler) DropCombatant(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	payload, err := getPayload(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.encounterService.DropCombatant(ctx, &encounter.DropCombatantInput{
		SessionID: getString(req, keySessionID),
		Side:      entities.Side(getString(req, keySide)),
		Payload:   payload,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		keyCombatant: combatantToMap(output.Combatant),
		keyAdmitted:  output.Admitted,
		keySnapshot:  snapshotToMap(output.Snapshot),
	})
}

// RemoveCombatant removes a roster entry by identifier or by name
func (h *Handler) RemoveCombatant(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.encounterService.RemoveCombatant(ctx, &encounter.RemoveCombatantInput{
		SessionID:   getString(req, keySessionID),
		Side:        entities.Side(getString(req, keySide)),
		CombatantID: getString(req, keyCombatantID),
		Name:        getString(req, keyName),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		keyRemoved:  output.Removed,
		keySnapshot: snapshotToMap(output.Snapshot),
	})
}

// ClearRosters empties both rosters
func (h *Handler) ClearRosters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.encounterService.ClearRosters(ctx, &encounter.ClearRostersInput{
		SessionID: getString(req, keySessionID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		keySnapshot: snapshotToMap(output.Snapshot),
	})
}

// EndSession closes a session
func (h *Handler) EndSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if _, err := h.encounterService.EndSession(ctx, &encounter.EndSessionInput{
		SessionID: getString(req, keySessionID),
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// RegisterCombatant writes a record to the world catalog
func (h *Handler) RegisterCombatant(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	combatant, err := combatantFromStruct(req.GetFields()[keyCombatant].GetStructValue())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.encounterService.RegisterCombatant(ctx, &encounter.RegisterCombatantInput{
		Combatant: combatant,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		keyCombatant: combatantToMap(output.Combatant),
		keyCreated:   output.Created,
	})
}

// ListCombatants lists the world catalog, optionally filtered by kind
func (h *Handler) ListCombatants(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	kind := entities.Kind(getString(req, keyKind))
	if kind != "" && !kind.IsValid() {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("unknown kind %q", kind))
	}

	output, err := h.encounterService.ListCombatants(ctx, &encounter.ListCombatantsInput{Kind: kind})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		keyCombatants: combatantsToList(output.Combatants),
	})
}

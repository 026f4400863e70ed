package v1alpha1

import (
	"math"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/encounter-builder/internal/entities"
	"github.com/KirkDiggler/encounter-builder/internal/errors"
)

// Request and response keys
const (
	keySessionID     = "session_id"
	keyCombatantID   = "combatant_id"
	keyCollectionTag = "collection_tag"
	keySide          = "side"
	keyName          = "name"
	keyPayload       = "payload"
	keyKind          = "kind"
	keyCombatant     = "combatant"
	keyCombatants    = "combatants"
	keySnapshot      = "snapshot"
	keyAdmitted      = "admitted"
	keyRemoved       = "removed"
	keyCreated       = "created"
)

func getString(req *structpb.Struct, key string) string {
	return strings.TrimSpace(req.GetFields()[key].GetStringValue())
}

// getPayload accepts the drop payload either as its raw JSON string or as a nested object
func getPayload(req *structpb.Struct) ([]byte, error) {
	value, ok := req.GetFields()[keyPayload]
	if !ok {
		return nil, nil
	}

	switch kind := value.GetKind().(type) {
	case *structpb.Value_StringValue:
		return []byte(kind.StringValue), nil
	case *structpb.Value_StructValue:
		data, err := protojson.Marshal(kind.StructValue)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "payload could not be encoded")
		}
		return data, nil
	default:
		return nil, errors.InvalidArgument("payload must be a JSON string or an object")
	}
}

func combatantFromStruct(in *structpb.Struct) (*entities.Combatant, error) {
	if in == nil {
		return nil, errors.InvalidArgument("combatant is required")
	}

	c := &entities.Combatant{
		ID:            getString(in, "id"),
		Name:          getString(in, "name"),
		Kind:          entities.Kind(getString(in, "kind")),
		CollectionTag: getString(in, "collection_tag"),
	}

	if level, ok := in.GetFields()["level"]; ok {
		n, isNumber := level.GetKind().(*structpb.Value_NumberValue)
		if !isNumber || n.NumberValue != math.Trunc(n.NumberValue) {
			return nil, errors.InvalidArgument("combatant level must be a whole number").
				WithMeta("combatant_id", c.ID)
		}
		if math.Abs(n.NumberValue) > math.MaxInt32 {
			return nil, errors.InvalidArgument("combatant level is out of range").
				WithMeta("combatant_id", c.ID)
		}
		c.Level = int(n.NumberValue)
	}

	return c, nil
}

func combatantToMap(c *entities.Combatant) map[string]any {
	if c == nil {
		return nil
	}

	out := map[string]any{
		"id":    c.ID,
		"name":  c.Name,
		"kind":  string(c.Kind),
		"level": c.Level,
	}
	if c.CollectionTag != "" {
		out["collection_tag"] = c.CollectionTag
	}
	return out
}

func combatantsToList(list []*entities.Combatant) []any {
	out := make([]any, 0, len(list))
	for _, c := range list {
		out = append(out, combatantToMap(c))
	}
	return out
}

func snapshotToMap(s *entities.Snapshot) map[string]any {
	if s == nil {
		return nil
	}

	budgets := make(map[string]any, entities.TierCount)
	for _, tier := range entities.Tiers() {
		budgets[tier.String()] = s.Budgets.For(tier)
	}

	return map[string]any{
		"allies":             combatantsToList(s.Allies),
		"opponents":          combatantsToList(s.Opponents),
		"budgets":            budgets,
		"average_ally_level": s.AverageAllyLevel,
		"total_xp":           s.TotalXP,
		"per_ally_xp":        s.PerAllyXP,
		"difficulty":         s.Difficulty.String(),
	}
}

func toStruct(fields map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return out, nil
}

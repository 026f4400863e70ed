package entities

import (
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/encounter-builder/internal/errors"
)

// DropPayloadType is the only payload type a roster accepts
const DropPayloadType = "Actor"

// DropPayload is the transfer data attached to a drag gesture onto a roster
type DropPayload struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Pack string `json:"pack,omitempty"` // Collection tag when dragged from a compendium
}

// ParseDropPayload decodes a drop payload and rejects anything that does not name an actor
func ParseDropPayload(data []byte) (*DropPayload, error) {
	if len(data) == 0 {
		return nil, errors.InvalidArgument("drop payload is empty")
	}

	var payload DropPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "drop payload is not valid JSON")
	}

	if payload.Type != DropPayloadType {
		return nil, errors.InvalidArgumentf("drop payload type %q is not %s", payload.Type, DropPayloadType).
			WithMeta("payload_type", payload.Type)
	}

	if strings.TrimSpace(payload.ID) == "" {
		return nil, errors.InvalidArgument("drop payload id is required")
	}

	return &payload, nil
}

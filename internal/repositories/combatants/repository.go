// Package combatants provides the world catalog of character and creature records
// that roster gestures resolve against
package combatants

//go:generate mockgen -destination=mock/mock_repository.go -package=combatantsmock github.com/KirkDiggler/encounter-builder/internal/repositories/combatants Repository

import (
	"context"

	"github.com/KirkDiggler/encounter-builder/internal/entities"
)

// Repository defines the storage interface for combatant records
type Repository interface {
	// Get retrieves a combatant by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the combatant doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put creates or replaces a combatant record
	// Returns errors.InvalidArgument for validation failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// List returns every combatant in the catalog ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a combatant by ID
	// Returns errors.NotFound if the combatant doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a combatant
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a combatant
type GetOutput struct {
	Combatant *entities.Combatant
}

// PutInput defines the input for storing a combatant
type PutInput struct {
	Combatant *entities.Combatant
}

// PutOutput defines the output for storing a combatant
type PutOutput struct {
	Combatant *entities.Combatant
	Created   bool
}

// ListInput defines the input for listing combatants
type ListInput struct {
	Kind entities.Kind // Optional filter
}

// ListOutput defines the output for listing combatants
type ListOutput struct {
	Combatants []*entities.Combatant
}

// DeleteInput defines the input for deleting a combatant
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a combatant
type DeleteOutput struct{}

// Package resolver turns a combatant reference (an identifier plus an optional
// collection tag) into a full combatant record
package resolver

//go:generate mockgen -destination=mock/mock_resolver.go -package=resolvermock github.com/KirkDiggler/encounter-builder/internal/resolver Resolver

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/encounter-builder/internal/clients/compendium"
	"github.com/KirkDiggler/encounter-builder/internal/entities"
	"github.com/KirkDiggler/encounter-builder/internal/errors"
	"github.com/KirkDiggler/encounter-builder/internal/repositories/combatants"
)

// Resolver looks combatants up by reference
type Resolver interface {
	// Resolve returns the combatant the reference names
	// Without a collection tag the world catalog is consulted. With a known tag the
	// collection is consulted and the result is imported into the world catalog.
	// Returns errors.NotFound when nothing matches or the tag is unknown
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}

// ResolveInput names the combatant to resolve
type ResolveInput struct {
	ID            string
	CollectionTag string
}

// ResolveOutput carries the resolved combatant
type ResolveOutput struct {
	Combatant *entities.Combatant
	// Imported is set when the combatant was copied from a collection into the catalog
	Imported bool
}

// Config holds the dependencies for the resolver
type Config struct {
	Catalog    combatants.Repository
	Compendium compendium.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Compendium == nil {
		vb.RequiredField("Compendium")
	}
	return vb.Build()
}

type resolver struct {
	catalog    combatants.Repository
	compendium compendium.Client
}

// New creates a resolver backed by the world catalog and the compendium
func New(cfg *Config) (Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &resolver{
		catalog:    cfg.Catalog,
		compendium: cfg.Compendium,
	}, nil
}

func (r *resolver) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.InvalidArgument("combatant id is required")
	}

	switch input.CollectionTag {
	case "":
		out, err := r.catalog.Get(ctx, combatants.GetInput{ID: id})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve combatant %s", id)
		}
		return &ResolveOutput{Combatant: out.Combatant}, nil

	case compendium.CollectionTag:
		return r.importFromCompendium(ctx, id)

	default:
		return nil, errors.NotFoundf("unknown collection %q", input.CollectionTag).
			WithMeta("collection_tag", input.CollectionTag).
			WithMeta("combatant_id", id)
	}
}

func (r *resolver) importFromCompendium(ctx context.Context, key string) (*ResolveOutput, error) {
	combatant, err := r.compendium.GetCombatant(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s from %s", key, compendium.CollectionTag)
	}

	out, err := r.catalog.Put(ctx, combatants.PutInput{Combatant: combatant})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to import %s into catalog", key)
	}

	slog.InfoContext(ctx, "imported combatant from collection",
		"combatant_id", combatant.ID,
		"collection_tag", compendium.CollectionTag,
		"created", out.Created)

	return &ResolveOutput{
		Combatant: combatant,
		Imported:  true,
	}, nil
}

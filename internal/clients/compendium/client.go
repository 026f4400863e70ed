// Package compendium resolves combatants from the D&D 5e SRD monster compendium
package compendium

//go:generate mockgen -destination=mock/mock_client.go -package=compendiummock github.com/KirkDiggler/encounter-builder/internal/clients/compendium Client

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	dnd5eEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/encounter-builder/internal/entities"
	"github.com/KirkDiggler/encounter-builder/internal/errors"
)

// CollectionTag names the SRD monster collection in drop payloads and gestures
const CollectionTag = "dnd5e-srd"

// Client defines the interface for compendium lookups
type Client interface {
	// GetCombatant fetches a monster by its compendium key and maps it to a
	// non-player creature tagged with CollectionTag
	// Returns errors.NotFound if the compendium has no such monster
	GetCombatant(ctx context.Context, key string) (*entities.Combatant, error)
}

// monsterSource is the slice of dnd5e.Interface the compendium needs
type monsterSource interface {
	GetMonster(key string) (*dnd5eEntities.Monster, error)
}

// Config contains configuration options for the compendium client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.Field("http_timeout", "must not be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.Field("cache_ttl", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	monsters monsterSource
}

// New creates a compendium client backed by the cached dnd5e-api client.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &client{
		monsters: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) GetCombatant(ctx context.Context, key string) (*entities.Combatant, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return nil, errors.InvalidArgument("compendium key is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "compendium lookup canceled")
	}

	monster, err := c.monsters.GetMonster(key)
	if err != nil {
		slog.WarnContext(ctx, "compendium lookup failed",
			"key", key,
			"error", err)
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, "monster "+key+" not found in compendium").
			WithMeta("compendium_key", key)
	}
	if monster == nil {
		return nil, errors.NotFoundf("monster %s not found in compendium", key).
			WithMeta("compendium_key", key)
	}

	name := monster.Name
	if name == "" {
		name = key
	}

	return &entities.Combatant{
		ID:            key,
		Name:          name,
		Kind:          entities.KindNonPlayerCreature,
		Level:         LevelFromChallengeRating(float64(monster.ChallengeRating)),
		CollectionTag: CollectionTag,
	}, nil
}

// LevelFromChallengeRating maps a 5e challenge rating onto the level scale the
// budget tables use. Fractional ratings below 1/4 sit at -1, the remaining
// fractions at 0, and whole ratings keep their value.
func LevelFromChallengeRating(cr float64) int {
	switch {
	case cr < 0.25:
		return -1
	case cr < 1:
		return 0
	default:
		return int(math.Floor(cr))
	}
}

package combatants

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/encounter-builder/internal/entities"
	"github.com/KirkDiggler/encounter-builder/internal/errors"
	redisclient "github.com/KirkDiggler/encounter-builder/internal/redis"
)

const (
	combatantKeyPrefix = "combatant:"
	indexKey           = "combatant:index"

	// Level bounds a catalog record may carry
	minLevel = -1
	maxLevel = 30

	errCombatantNil = "combatant cannot be nil"
	errIDEmpty      = "combatant ID cannot be empty"
)

// RedisConfig contains configuration for the Redis combatant repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a new Redis-backed combatant repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	result, err := r.client.Get(ctx, combatantKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("combatant with ID %s not found", input.ID).
				WithMeta("combatant_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get combatant")
	}

	var combatant entities.Combatant
	if err := json.Unmarshal([]byte(result), &combatant); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal combatant %s", input.ID)
	}

	return &GetOutput{Combatant: &combatant}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Combatant == nil {
		return nil, errors.InvalidArgument(errCombatantNil)
	}

	c := input.Combatant
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", c.ID, vb)
	errors.ValidateRequired("name", c.Name, vb)
	errors.ValidateEnum("kind", string(c.Kind),
		[]string{string(entities.KindPlayerCharacter), string(entities.KindNonPlayerCreature)}, vb)
	errors.ValidateRange("level", c.Level, minLevel, maxLevel, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal combatant")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, combatantKeyPrefix+c.ID, data, 0)
	added := pipe.SAdd(ctx, indexKey, c.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store combatant")
	}

	return &PutOutput{
		Combatant: c,
		Created:   added.Val() > 0,
	}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list combatant index")
	}

	if len(ids) == 0 {
		return &ListOutput{Combatants: []*entities.Combatant{}}, nil
	}

	sort.Strings(ids)
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, combatantKeyPrefix+id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load combatants")
	}

	out := make([]*entities.Combatant, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Indexed but the record is gone
			slog.Warn("Combatant index entry has no record", "combatant_id", ids[i])
			continue
		}

		var combatant entities.Combatant
		if err := json.Unmarshal([]byte(raw), &combatant); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal combatant %s", ids[i])
		}

		if input.Kind != "" && combatant.Kind != input.Kind {
			continue
		}
		out = append(out, &combatant)
	}

	return &ListOutput{Combatants: out}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	pipe := r.client.TxPipeline()
	deleted := pipe.Del(ctx, combatantKeyPrefix+input.ID)
	pipe.SRem(ctx, indexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete combatant")
	}

	if deleted.Val() == 0 {
		return nil, errors.NotFoundf("combatant with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

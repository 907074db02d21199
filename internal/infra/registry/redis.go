package registry

import (
	"context"
	"log/slog"
	"strconv"

	"addressing/internal/domain/entity"
	"addressing/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const claimsKey = "house_numbers"

// releaseScript deletes the claim only while the caller still holds it.
var releaseScript = redis.NewScript(`
if redis.call("HGET", KEYS[1], ARGV[1]) == ARGV[2] then
	return redis.call("HDEL", KEYS[1], ARGV[1])
end
return 0
`)

// redisRegistry stores claims in one hash so several worker processes share
// uniqueness.
type redisRegistry struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// NewRedisRegistry creates a registry stored under "<prefix>:house_numbers".
func NewRedisRegistry(client *redis.Client, keyPrefix string, logger *slog.Logger) service.HouseNumberRegistry {
	key := claimsKey
	if keyPrefix != "" {
		key = keyPrefix + ":" + claimsKey
	}

	return &redisRegistry{client: client, key: key, logger: logger}
}

// Seed merges claims with HSETNX so numbers claimed by other processes since
// their last write survive.
func (r *redisRegistry) Seed(ctx context.Context, claims []entity.HouseNumberClaim) error {
	if len(claims) == 0 {
		return nil
	}

	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, claim := range claims {
			pipe.HSetNX(ctx, r.key,
				strconv.FormatInt(claim.Number, 10),
				strconv.FormatInt(claim.BuildingID, 10),
			)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "seed house number registry")
	}

	r.logger.InfoContext(ctx, "House number registry seeded",
		slog.String("key", r.key),
		slog.Int("claims", len(claims)),
	)

	return nil
}

func (r *redisRegistry) Snapshot(ctx context.Context) ([]entity.HouseNumberClaim, error) {
	raw, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "read house number registry")
	}

	claims := make([]entity.HouseNumberClaim, 0, len(raw))
	for field, value := range raw {
		number, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "house number field %q", field)
		}
		buildingID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "building id of house number %d", number)
		}
		claims = append(claims, entity.HouseNumberClaim{Number: number, BuildingID: buildingID})
	}

	return claims, nil
}

func (r *redisRegistry) Claim(ctx context.Context, number, buildingID int64) (bool, error) {
	field := strconv.FormatInt(number, 10)
	holder := strconv.FormatInt(buildingID, 10)

	set, err := r.client.HSetNX(ctx, r.key, field, holder).Result()
	if err != nil {
		return false, errors.Wrapf(err, "claim house number %d", number)
	}
	if set {
		return true, nil
	}

	current, err := r.client.HGet(ctx, r.key, field).Result()
	if errors.Is(err, redis.Nil) {
		// Released between the two calls; try once more.
		set, err = r.client.HSetNX(ctx, r.key, field, holder).Result()
		if err != nil {
			return false, errors.Wrapf(err, "claim house number %d", number)
		}

		return set, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "read holder of house number %d", number)
	}

	return current == holder, nil
}

func (r *redisRegistry) Release(ctx context.Context, number, buildingID int64) error {
	err := releaseScript.Run(ctx, r.client, []string{r.key},
		strconv.FormatInt(number, 10),
		strconv.FormatInt(buildingID, 10),
	).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return errors.Wrapf(err, "release house number %d", number)
	}

	return nil
}

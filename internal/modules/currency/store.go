// README: Currency store keeps exchange-rate overrides in a Redis hash.
package currency

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const ratesKey = "fx:rates"

var ErrInvalidRate = errors.New("exchange rate must be positive")

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// LoadRates reads every override. Values that do not parse are returned as
// non-positive so Table.Apply skips them.
func (s *Store) LoadRates(ctx context.Context) (map[string]float64, error) {
	raw, err := s.redis.HGetAll(ctx, ratesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("load fx rates: %w", err)
	}
	out := make(map[string]float64, len(raw))
	for code, v := range raw {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			rate = 0
		}
		out[Normalize(code)] = rate
	}
	return out, nil
}

func (s *Store) SetRate(ctx context.Context, code string, rate float64) error {
	if rate <= 0 {
		return ErrInvalidRate
	}
	if err := s.redis.HSet(ctx, ratesKey, Normalize(code), strconv.FormatFloat(rate, 'f', -1, 64)).Err(); err != nil {
		return fmt.Errorf("set fx rate %s: %w", code, err)
	}
	return nil
}

func (s *Store) DeleteRate(ctx context.Context, code string) error {
	return s.redis.HDel(ctx, ratesKey, Normalize(code)).Err()
}

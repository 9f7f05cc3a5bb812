// README: Conditions store loads location profiles from PostgreSQL.
package conditions

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadProfiles reads traffic_profiles and weather_profiles, ordered by
// position, and groups them per location. Rows with unknown labels are
// rejected through Profile.Validate when the set is built.
func (s *Store) LoadProfiles(ctx context.Context) ([]Profile, error) {
	byLocation := make(map[string]*Profile)
	get := func(name string) *Profile {
		p, ok := byLocation[name]
		if !ok {
			p = &Profile{Location: name, Traffic: make(map[TimePeriod]TrafficTable)}
			byLocation[name] = p
		}
		return p
	}

	rows, err := s.db.Query(ctx, `
        SELECT location, period, level, weight
        FROM traffic_profiles
        ORDER BY location, period, position`)
	if err != nil {
		return nil, fmt.Errorf("query traffic profiles: %w", err)
	}
	for rows.Next() {
		var location, period, level string
		var weight int
		if err := rows.Scan(&location, &period, &level, &weight); err != nil {
			rows.Close()
			return nil, err
		}
		p := get(location)
		tp := TimePeriod(period)
		p.Traffic[tp] = append(p.Traffic[tp], TrafficWeight{Level: TrafficLevel(level), Weight: weight})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query(ctx, `
        SELECT location, level, weight
        FROM weather_profiles
        ORDER BY location, position`)
	if err != nil {
		return nil, fmt.Errorf("query weather profiles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var location, level string
		var weight int
		if err := rows.Scan(&location, &level, &weight); err != nil {
			return nil, err
		}
		p := get(location)
		p.Weather = append(p.Weather, WeatherWeight{Level: WeatherLevel(level), Weight: weight})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]Profile, 0, len(byLocation))
	for _, p := range byLocation {
		out = append(out, *p)
	}
	return out, nil
}

// LoadProfileSet overlays stored profiles on top of the built-in ones.
func (s *Store) LoadProfileSet(ctx context.Context) (*ProfileSet, error) {
	stored, err := s.LoadProfiles(ctx)
	if err != nil {
		return nil, err
	}
	return MustBuiltinProfileSet().With(stored...)
}

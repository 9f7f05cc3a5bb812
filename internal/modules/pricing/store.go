// README: Pricing store backed by PostgreSQL.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrRateNotFound = errors.New("vehicle rate not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) GetRate(ctx context.Context, class VehicleClass) (Rate, error) {
	row := s.db.QueryRow(ctx, `
        SELECT vehicle_class, base_fare, per_km, per_minute
        FROM vehicle_rates
        WHERE vehicle_class = $1`, string(class),
	)
	var r Rate
	var name string
	err := row.Scan(&name, &r.BaseFare, &r.PerKm, &r.PerMinute)
	if errors.Is(err, pgx.ErrNoRows) {
		return Rate{}, ErrRateNotFound
	}
	if err != nil {
		return Rate{}, err
	}
	r.Class = VehicleClass(name)
	return r, nil
}

// LoadRates returns every stored row; unknown class names are kept so the
// caller can report them.
func (s *Store) LoadRates(ctx context.Context) ([]Rate, error) {
	rows, err := s.db.Query(ctx, `
        SELECT vehicle_class, base_fare, per_km, per_minute
        FROM vehicle_rates
        ORDER BY vehicle_class`)
	if err != nil {
		return nil, fmt.Errorf("query vehicle rates: %w", err)
	}
	defer rows.Close()

	var out []Rate
	for rows.Next() {
		var r Rate
		var name string
		if err := rows.Scan(&name, &r.BaseFare, &r.PerKm, &r.PerMinute); err != nil {
			return nil, err
		}
		r.Class = VehicleClass(name)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) UpsertRate(ctx context.Context, r Rate) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO vehicle_rates (vehicle_class, base_fare, per_km, per_minute)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (vehicle_class) DO UPDATE
        SET base_fare = EXCLUDED.base_fare,
            per_km = EXCLUDED.per_km,
            per_minute = EXCLUDED.per_minute`,
		string(r.Class), r.BaseFare, r.PerKm, r.PerMinute,
	)
	return err
}

package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/platform/obs"
)

// SQLResolutionCache is a Postgres-backed cache mapping normalized postal
// codes to destination resolutions.
type SQLResolutionCache struct {
	DB *sql.DB
}

func NewSQLResolutionCache(db *sql.DB) *SQLResolutionCache {
	return &SQLResolutionCache{DB: db}
}

// EnsureSchema creates the cache table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS resolution_cache (
		postal_code  TEXT PRIMARY KEY,
		municipality TEXT NOT NULL,
		uf           TEXT NOT NULL,
		lat          DOUBLE PRECISION NOT NULL,
		lon          DOUBLE PRECISION NOT NULL,
		ibge_code    INTEGER NOT NULL DEFAULT 0
	);`

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure resolution_cache schema: %w", err)
	}
	return nil
}

// Get fetches a cached resolution for the given postal code.
func (s *SQLResolutionCache) Get(
	ctx context.Context,
	postalCode string,
) (_ domain.DestinationResolution, _ bool, err error) {
	defer obs.Time(ctx, "resolution.cache.Get")(&err)

	if s.DB == nil {
		return domain.DestinationResolution{}, false, errors.New("resolution cache: db is nil")
	}

	const q = `
	SELECT municipality, uf, lat, lon, ibge_code
	FROM resolution_cache
	WHERE postal_code = $1;`

	var res domain.DestinationResolution
	err = s.DB.QueryRowContext(ctx, q, postalCode).Scan(
		&res.Municipality, &res.UF, &res.Location.Lat, &res.Location.Lon, &res.IBGECode,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DestinationResolution{}, false, nil
	}
	if err != nil {
		return domain.DestinationResolution{}, false, fmt.Errorf("get resolution cache: query: %w", err)
	}

	return res, true, nil
}

// Put stores a postal code -> resolution mapping.
func (s *SQLResolutionCache) Put(
	ctx context.Context,
	postalCode string,
	res domain.DestinationResolution,
) error {
	if s.DB == nil {
		return errors.New("resolution cache: db is nil")
	}
	if postalCode == "" {
		return errors.New("insert resolution cache: empty postal code key")
	}

	const q = `
	INSERT INTO resolution_cache (postal_code, municipality, uf, lat, lon, ibge_code)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (postal_code) DO UPDATE
	SET municipality = EXCLUDED.municipality,
		uf           = EXCLUDED.uf,
		lat          = EXCLUDED.lat,
		lon          = EXCLUDED.lon,
		ibge_code    = EXCLUDED.ibge_code;`

	if _, err := s.DB.ExecContext(ctx, q,
		postalCode, res.Municipality, res.UF, res.Location.Lat, res.Location.Lon, res.IBGECode,
	); err != nil {
		return fmt.Errorf("insert resolution cache postal_code=%q: %w", postalCode, err)
	}

	return nil
}

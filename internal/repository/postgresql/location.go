package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/location"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/database"
)

type locationRepositoryImpl struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepositoryImpl{db: db}
}

const locationColumns = `
	id, code, name, latitude, longitude, radius_meters, is_office,
	morning_start, morning_end, night_start, night_end, active, created_at, updated_at
`

func scanLocation(row pgx.Row) (location.Location, error) {
	var loc location.Location
	err := row.Scan(
		&loc.ID, &loc.Code, &loc.Name, &loc.Latitude, &loc.Longitude,
		&loc.RadiusMeters, &loc.IsOffice,
		&loc.MorningShift.Start, &loc.MorningShift.End,
		&loc.NightShift.Start, &loc.NightShift.End,
		&loc.Active, &loc.CreatedAt, &loc.UpdatedAt,
	)
	return loc, err
}

// Create implements location.LocationRepository.
func (l *locationRepositoryImpl) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO locations (
			code, name, latitude, longitude, radius_meters, is_office,
			morning_start, morning_end, night_start, night_end, active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + locationColumns

	created, err := scanLocation(q.QueryRow(ctx, query,
		loc.Code, loc.Name, loc.Latitude, loc.Longitude, loc.RadiusMeters,
		loc.IsOffice, loc.MorningShift.Start, loc.MorningShift.End,
		loc.NightShift.Start, loc.NightShift.End, loc.Active,
	))
	if err != nil {
		if strings.Contains(err.Error(), "locations_code_key") {
			return location.Location{}, location.ErrCodeExists
		}
		return location.Location{}, fmt.Errorf("failed to create location: %w", err)
	}
	return created, nil
}

// GetByID implements location.LocationRepository.
func (l *locationRepositoryImpl) GetByID(ctx context.Context, id string) (location.Location, error) {
	q := GetQuerier(ctx, l.db)

	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`

	loc, err := scanLocation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to get location: %w", err)
	}
	return loc, nil
}

// Update implements location.LocationRepository.
func (l *locationRepositoryImpl) Update(ctx context.Context, loc location.Location) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE locations
		SET name = $1, latitude = $2, longitude = $3, radius_meters = $4,
			is_office = $5, morning_start = $6, morning_end = $7,
			night_start = $8, night_end = $9, active = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		loc.Name, loc.Latitude, loc.Longitude, loc.RadiusMeters, loc.IsOffice,
		loc.MorningShift.Start, loc.MorningShift.End,
		loc.NightShift.Start, loc.NightShift.End, loc.Active, loc.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.ErrLocationNotFound
		}
		return fmt.Errorf("failed to update location: %w", err)
	}
	return nil
}

// List implements location.LocationRepository.
func (l *locationRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]location.Location, error) {
	q := GetQuerier(ctx, l.db)

	query := `SELECT ` + locationColumns + ` FROM locations`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY code ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []location.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return locations, nil
}

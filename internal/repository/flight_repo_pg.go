package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airline-records/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Flight names are not unique; every lookup takes the first match in id
// order, and update/delete touch only that row.
type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByName(ctx context.Context, flightName string) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flightName, newName string) (*domain.Flight, error)
	Delete(ctx context.Context, flightName string) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT id, flight_name FROM flights ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.FlightName); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByName(ctx context.Context, flightName string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT id, flight_name FROM flights WHERE flight_name=$1 ORDER BY id LIMIT 1`, flightName)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (flight_name) VALUES ($1) RETURNING id`,
		flight.FlightName).Scan(&flight.ID)
}

func (r *PGFlightRepository) Update(ctx context.Context, flightName, newName string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `UPDATE flights SET flight_name=$1
		WHERE id = (SELECT id FROM flights WHERE flight_name=$2 ORDER BY id LIMIT 1)
		RETURNING id, flight_name`, newName, flightName)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, flightName string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM flights
		WHERE id = (SELECT id FROM flights WHERE flight_name=$1 ORDER BY id LIMIT 1)
		RETURNING id, flight_name`, flightName)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)

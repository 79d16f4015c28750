package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airline-records/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TicketRepository is not wired into the router; the ticket service and its
// tests are the only callers for now.
type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByCode(ctx context.Context, ticketCode string) (*domain.Ticket, error)
	Create(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, ticketCode string) (*domain.Ticket, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

func (r *PGTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT id, ticket, ticket_code FROM tickets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Ticket, &t.TicketCode); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *PGTicketRepository) GetByCode(ctx context.Context, ticketCode string) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `SELECT id, ticket, ticket_code FROM tickets WHERE ticket_code=$1 ORDER BY id LIMIT 1`, ticketCode)
	var t domain.Ticket
	if err := row.Scan(&t.ID, &t.Ticket, &t.TicketCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *PGTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	return r.db.QueryRow(ctx, `INSERT INTO tickets (ticket, ticket_code) VALUES ($1, $2) RETURNING id`,
		ticket.Ticket, ticket.TicketCode).Scan(&ticket.ID)
}

func (r *PGTicketRepository) Delete(ctx context.Context, ticketCode string) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM tickets
		WHERE id = (SELECT id FROM tickets WHERE ticket_code=$1 ORDER BY id LIMIT 1)
		RETURNING id, ticket, ticket_code`, ticketCode)
	var t domain.Ticket
	if err := row.Scan(&t.ID, &t.Ticket, &t.TicketCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

var _ TicketRepository = (*PGTicketRepository)(nil)

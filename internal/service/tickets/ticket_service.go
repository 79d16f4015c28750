package tickets

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airline-records/internal/domain"
	"github.com/Domenick1991/airline-records/internal/repository"
	"github.com/google/uuid"
)

var ErrMissingField = errors.New("missing required field")

// TicketUseCase has no HTTP routes yet; it exists for callers that manage
// tickets directly.
type TicketUseCase interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByCode(ctx context.Context, ticketCode string) (*domain.Ticket, error)
	Create(ctx context.Context, input CreateTicketInput) (*domain.Ticket, error)
	Delete(ctx context.Context, ticketCode string) (*domain.Ticket, error)
}

type CreateTicketInput struct {
	Ticket     string `json:"ticket"`
	TicketCode string `json:"ticket_code"`
}

type TicketService struct {
	repo repository.TicketRepository
}

func NewTicketService(repo repository.TicketRepository) *TicketService {
	return &TicketService{repo: repo}
}

func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.repo.List(ctx)
}

func (s *TicketService) GetByCode(ctx context.Context, ticketCode string) (*domain.Ticket, error) {
	return s.repo.GetByCode(ctx, ticketCode)
}

// Create stores a ticket; when no code is supplied a fresh one is generated
// for this row. Codes are never shared between rows.
func (s *TicketService) Create(ctx context.Context, input CreateTicketInput) (*domain.Ticket, error) {
	if input.Ticket == "" {
		return nil, fmt.Errorf("%w: ticket", ErrMissingField)
	}

	code := input.TicketCode
	if code == "" {
		code = uuid.NewString()
	}

	ticket := &domain.Ticket{Ticket: input.Ticket, TicketCode: code}
	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, ticketCode string) (*domain.Ticket, error) {
	return s.repo.Delete(ctx, ticketCode)
}

var _ TicketUseCase = (*TicketService)(nil)

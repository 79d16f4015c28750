package flights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/airline-records/internal/domain"
	"github.com/Domenick1991/airline-records/internal/events"
	"github.com/Domenick1991/airline-records/internal/repository"
	"github.com/google/uuid"
)

var ErrMissingField = errors.New("missing required field")

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByName(ctx context.Context, flightName string) (*domain.Flight, error)
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
	Update(ctx context.Context, flightName string, input UpdateFlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, flightName string) (*domain.Flight, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateFlightInput struct {
	FlightName string `json:"flight_name"`
}

type UpdateFlightInput struct {
	FlightName string `json:"flight_name"`
}

type FlightService struct {
	repo     repository.FlightRepository
	producer Producer
	topic    string
}

type FlightServiceOption func(*FlightService)

func WithEvents(producer Producer, topic string) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewFlightService(repo repository.FlightRepository, opts ...FlightServiceOption) *FlightService {
	service := &FlightService{repo: repo}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	return s.repo.List(ctx)
}

func (s *FlightService) GetByName(ctx context.Context, flightName string) (*domain.Flight, error) {
	return s.repo.GetByName(ctx, flightName)
}

func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	if input.FlightName == "" {
		return nil, fmt.Errorf("%w: flight_name", ErrMissingField)
	}

	flight := &domain.Flight{FlightName: input.FlightName}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}

	s.publish(ctx, "flight_created", flight)
	return flight, nil
}

// Update renames the first flight matching flightName. The original system
// wrote the new name to a field that did not exist, leaving the row
// unchanged; here the rename is applied for real.
func (s *FlightService) Update(ctx context.Context, flightName string, input UpdateFlightInput) (*domain.Flight, error) {
	if input.FlightName == "" {
		return nil, fmt.Errorf("%w: flight_name", ErrMissingField)
	}

	updated, err := s.repo.Update(ctx, flightName, input.FlightName)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "flight_updated", updated)
	return updated, nil
}

func (s *FlightService) Delete(ctx context.Context, flightName string) (*domain.Flight, error) {
	deleted, err := s.repo.Delete(ctx, flightName)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "flight_deleted", deleted)
	return deleted, nil
}

func (s *FlightService) publish(ctx context.Context, eventType string, flight *domain.Flight) {
	if s.producer == nil || s.topic == "" {
		return
	}

	record, err := json.Marshal(flight)
	if err != nil {
		log.Printf("marshal %s event: %v", eventType, err)
		return
	}
	event := events.RecordEvent{
		ID:     uuid.NewString(),
		Type:   eventType,
		Entity: "flight",
		Key:    flight.FlightName,
		Record: record,
		At:     time.Now(),
	}
	if err := s.producer.Publish(ctx, s.topic, flight.FlightName, event); err != nil {
		log.Printf("publish %s event for %s: %v", eventType, flight.FlightName, err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)

package users

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

// ErrMissingField is returned when a required field is absent from the
// request payload. Handlers translate it into a 400 response.
var ErrMissingField = errors.New("missing required field")

type UserUseCase interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, email string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, email string) (*domain.User, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UpdateUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserService struct {
	repo     repository.UserRepository
	producer Producer
	topic    string
}

type UserServiceOption func(*UserService)

// WithEvents enables best-effort publication of record-change events to the
// given topic. Publish failures are logged, never returned to the caller.
func WithEvents(producer Producer, topic string) UserServiceOption {
	return func(s *UserService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewUserService(repo repository.UserRepository, opts ...UserServiceOption) *UserService {
	service := &UserService{repo: repo}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username", ErrMissingField)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email", ErrMissingField)
	}

	user := &domain.User{Username: input.Username, Email: input.Email}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, "user_created", user)
	return user, nil
}

func (s *UserService) Update(ctx context.Context, email string, input UpdateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username", ErrMissingField)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email", ErrMissingField)
	}

	updated, err := s.repo.Update(ctx, email, input.Username, input.Email)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "user_updated", updated)
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, email string) (*domain.User, error) {
	deleted, err := s.repo.Delete(ctx, email)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "user_deleted", deleted)
	return deleted, nil
}

func (s *UserService) publish(ctx context.Context, eventType string, user *domain.User) {
	if s.producer == nil || s.topic == "" {
		return
	}

	record, err := json.Marshal(user)
	if err != nil {
		log.Printf("marshal %s event: %v", eventType, err)
		return
	}
	event := events.RecordEvent{
		ID:     uuid.NewString(),
		Type:   eventType,
		Entity: "user",
		Key:    user.Email,
		Record: record,
		At:     time.Now(),
	}
	if err := s.producer.Publish(ctx, s.topic, user.Email, event); err != nil {
		log.Printf("publish %s event for %s: %v", eventType, user.Email, err)
	}
}

var _ UserUseCase = (*UserService)(nil)

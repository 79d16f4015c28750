package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airline-records/internal/events"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event events.RecordEvent) error {
	fmt.Printf("notify about %s for %s %q\n", event.Type, event.Entity, event.Key)
	return nil
}

// Package events publishes batch lifecycle events for external consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

type EventType string

const (
	RunStarted   EventType = "run_started"
	ItemDone     EventType = "item_done"
	RunFinished  EventType = "run_finished"
	RunCancelled EventType = "run_cancelled"
	RunsReset    EventType = "runs_reset"
)

type Event struct {
	Type    EventType `json:"type"`
	RunID   string    `json:"run_id,omitempty"`
	UserID  int64     `json:"user_id,omitempty"`
	Index   int       `json:"index,omitempty"`
	Total   int       `json:"total,omitempty"`
	Success int       `json:"success,omitempty"`
	Outcome string    `json:"outcome,omitempty"`
	At      time.Time `json:"at"`
}

// IPublisher emits events. Publishing is best effort; callers only log errors.
//
//go:generate mockgen -source=events.go -destination=../../mocks/events/events.go -package=mocks
type IPublisher interface {
	Publish(ctx context.Context, ev Event) error
}

// INatsConn is the part of *nats.Conn the publisher uses.
type INatsConn interface {
	Publish(subject string, data []byte) error
}

type NatsPublisher struct {
	conn    INatsConn
	subject string
}

var _ IPublisher = (*NatsPublisher)(nil)

func (p *NatsPublisher) Publish(_ context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	subject := p.subject + "." + string(ev.Type)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}
	return nil
}

func NewNatsPublisher(conn INatsConn, subject string) *NatsPublisher {
	return &NatsPublisher{conn: conn, subject: subject}
}

// Dial connects to NATS.
func Dial(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url, nats.Name("tgsaver"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return conn, nil
}

// LogPublisher writes events to the log; used when no broker is configured.
type LogPublisher struct{}

var _ IPublisher = LogPublisher{}

func (LogPublisher) Publish(_ context.Context, ev Event) error {
	log.GetLogger(log.EventsModule).WithFields(logrus.Fields{
		"type": ev.Type, "run": ev.RunID, "user": ev.UserID, "index": ev.Index, "total": ev.Total,
	}).Debug(ev.Outcome)
	return nil
}

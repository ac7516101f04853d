// Package queue_publisher provides functions to publish ledger events to RabbitMQ.
// Errors are logged and returned to allow callers to ignore failures without
// interrupting the booking desk.
package queue_publisher

import (
    "context"
    "encoding/json"
    "fmt"
    "log/slog"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    q "github.com/iliyamo/airline-boarding/internal/queue"
)

// Publisher sends SeatEvents to a durable queue.  It dials per publish;
// the desk emits a handful of events per minute at most.
type Publisher struct {
    URL     string
    Queue   string
    Timeout time.Duration
    Log     *slog.Logger
}

// New returns a Publisher for url and queue with a five second publish
// timeout.
func New(url, queue string, log *slog.Logger) *Publisher {
    return &Publisher{URL: url, Queue: queue, Timeout: 5 * time.Second, Log: log}
}

// Publish sends event to the queue.  Messages are marked as persistent.
func (p *Publisher) Publish(ctx context.Context, event q.SeatEvent) error {
    if p.Timeout > 0 {
        var cancel context.CancelFunc
        ctx, cancel = context.WithTimeout(ctx, p.Timeout)
        defer cancel()
    }

    conn, err := amqp.DialConfig(p.URL, amqp.Config{Dial: amqp.DefaultDial(p.Timeout)})
    if err != nil {
        return p.fail("dial", event, err)
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        return p.fail("channel open", event, err)
    }
    defer func() { _ = ch.Close() }()

    // Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(
        p.Queue, // name
        true,    // durable
        false,   // autoDelete
        false,   // exclusive
        false,   // noWait
        nil,     // args
    ); err != nil {
        return p.fail("queue declare", event, err)
    }

    body, err := json.Marshal(event)
    if err != nil {
        return p.fail("marshal event", event, err)
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent, // store on disk
        Timestamp:    time.Now().UTC(),
        Type:         event.Type,
        Body:         body,
    }

    if err := ch.PublishWithContext(ctx,
        "",      // default exchange
        p.Queue, // routing key = queue name
        false,   // mandatory
        false,   // immediate
        pub,
    ); err != nil {
        return p.fail("publish", event, err)
    }
    return nil
}

func (p *Publisher) fail(step string, event q.SeatEvent, err error) error {
    if p.Log != nil {
        p.Log.Warn("rabbitmq: "+step+" failed", "type", event.Type, "seat", event.Seat, "err", err)
    }
    return fmt.Errorf("rabbitmq %s: %w", step, err)
}

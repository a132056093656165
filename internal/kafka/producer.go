package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// TicketEvent is published after a booking commits. The notifications
// worker turns it into a confirmation email.
type TicketEvent struct {
	EventID       string    `json:"event_id"`
	BookingID     int64     `json:"booking_id"`
	FlightID      int64     `json:"flight_id"`
	FlightNumber  string    `json:"flight_number"`
	SeatClass     string    `json:"seat_class"`
	PassengerName string    `json:"passenger_name"`
	Email         string    `json:"email"`
	Status        string    `json:"status"`
	BookedAt      time.Time `json:"booked_at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

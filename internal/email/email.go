package email

import (
	"fmt"
	"log"

	"github.com/Domenick1991/airtickets/config"
	"github.com/Domenick1991/airtickets/internal/kafka"
	"gopkg.in/gomail.v2"
)

type Sender struct {
	cfg config.SMTPConfig
}

func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send emails a booking confirmation. Without SMTP configured it logs the
// notification instead, so the worker stays usable in local setups.
func (s *Sender) Send(event kafka.TicketEvent) error {
	subject := fmt.Sprintf("Booking #%d confirmed: flight %s", event.BookingID, event.FlightNumber)
	body := fmt.Sprintf("Dear %s,\n\nYour %s class ticket for flight %s is %s.\nBooking reference: %d\n",
		event.PassengerName, event.SeatClass, event.FlightNumber, event.Status, event.BookingID)

	if s.cfg.Host == "" {
		log.Printf("smtp not configured, skipping email to %s: %s", event.Email, subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", event.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	return d.DialAndSend(m)
}

package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Mail job types consumed by the worker.
const (
	MailLeadAlert          = "LEAD_ALERT"   // operator inbox: new lead captured
	MailLeadWelcome        = "LEAD_WELCOME" // submitter acknowledgement
	MailCredentials        = "CREDENTIALS"  // client login delivery
	MailDescriptionRequest = "DESCRIPTION_REQUEST"
)

// MailJob is the durable outbox record. Mutations publish one of these and
// move on; delivery happens on the worker side, with failures dead-lettered.
type MailJob struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	To   string `json:"to"`

	LeadID    int    `json:"lead_id"`
	BrandName string `json:"brand_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Plan      string `json:"plan"`

	// Only set for CREDENTIALS jobs. The plaintext lives here and in the
	// issuance response, nowhere else.
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	// Only set for DESCRIPTION_REQUEST jobs.
	RequestedText string `json:"requested_text,omitempty"`
}

type MailProducerInterface interface {
	PublishMail(ctx context.Context, job MailJob) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishMail(ctx context.Context, job MailJob) error {

	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal mail job: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // survives broker restarts
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish mail job: %v", err)
	}

	return nil
}

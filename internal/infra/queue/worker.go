package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// MailSender is the delivery contract the worker drains the queue into.
type MailSender interface {
	SendLeadAlert(job MailJob) error
	SendLeadWelcome(job MailJob) error
	SendCredentials(job MailJob) error
	SendDescriptionRequestAlert(job MailJob) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  MailSender
}

func NewWorker(ch *amqp.Channel, sender MailSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var job MailJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Printf("❌ [WORKER] Invalid mail job JSON: %s", err)
				// Malformed message. Reject without requeue so it doesn't clog the queue.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Mail job %s (%s) for %s", job.ID, job.Type, job.To)

			if err := w.deliver(job); err != nil {
				log.Printf("❌ [WORKER] Delivery failed for job %s: %s", job.ID, err)
				// Dead-letter it; the DLQ keeps the record for manual retry.
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Delivered %s to %s", job.Type, job.To)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Mail worker running, waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) deliver(job MailJob) error {
	switch job.Type {
	case MailLeadAlert:
		return w.Sender.SendLeadAlert(job)

	case MailLeadWelcome:
		return w.Sender.SendLeadWelcome(job)

	case MailCredentials:
		return w.Sender.SendCredentials(job)

	case MailDescriptionRequest:
		return w.Sender.SendDescriptionRequestAlert(job)

	default:
		log.Printf("⚠️ [WORKER] Unknown mail job type: %s. Acking to drop it.", job.Type)
		return nil
	}
}

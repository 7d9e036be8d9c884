package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notifier define o contrato de notificação da equipe comercial
// (hoje email via SMTP; o worker não sabe o transporte).
type Notifier interface {
	NotificarNovoLead(ctx context.Context, payload LeadCapturadoPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier Notifier
}

func NewWorker(ch *amqp.Channel, notifier Notifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCapturadoPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Novo lead capturado: %s (%s)", payload.Nome, payload.Email)

			if err := w.Notifier.NotificarNovoLead(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Erro ao notificar equipe comercial: %s", err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Equipe comercial notificada sobre %s", payload.Email)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

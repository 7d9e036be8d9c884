package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/elfem/simulador-tributario/internal/entity"
)

// LeadCapturadoPayload é o evento publicado a cada simulação, consumido
// pelo worker de notificação da equipe comercial.
type LeadCapturadoPayload struct {
	EventID      string  `json:"event_id"`
	Nome         string  `json:"nome"`
	Telefone     string  `json:"telefone"`
	Email        string  `json:"email"`
	Faturamento  float64 `json:"faturamento"`
	TipoEmpresa  string  `json:"tipo_empresa"`
	DataCadastro string  `json:"data_cadastro"`
}

func NewLeadCapturadoPayload(lead *entity.Lead, faturamento float64) LeadCapturadoPayload {
	return LeadCapturadoPayload{
		EventID:      uuid.New().String(),
		Nome:         lead.Nome,
		Telefone:     lead.Telefone,
		Email:        lead.Email,
		Faturamento:  faturamento,
		TipoEmpresa:  lead.TipoEmpresa,
		DataCadastro: lead.DataCadastro,
	}
}

type ProducerInterface interface {
	PublishLeadCapturado(ctx context.Context, payload LeadCapturadoPayload) error
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

func (p *RabbitMQProducer) PublishLeadCapturado(ctx context.Context, payload LeadCapturadoPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}

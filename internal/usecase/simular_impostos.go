package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"github.com/elfem/simulador-tributario/internal/entity"
	"github.com/elfem/simulador-tributario/internal/infra/queue"
)

type SimulacaoInput struct {
	Nome        string `json:"nome"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`
	TipoEmpresa string `json:"tipo_empresa"`

	// Faturamento chega como número OU string do frontend; a coerção
	// acontece em CoerceFaturamento.
	Faturamento any `json:"faturamento"`
}

type SimulacaoOutput struct {
	Success               bool         `json:"success"`
	SimplesNacional       RegimeResult `json:"simples_nacional"`
	EquiparacaoHospitalar RegimeResult `json:"equiparacao_hospitalar"`
}

type SimularImpostosUseCase struct {
	Store    entity.LeadStoreInterface
	Producer queue.ProducerInterface // opcional; nil desliga os eventos
}

func NewSimularImpostosUseCase(store entity.LeadStoreInterface, producer queue.ProducerInterface) *SimularImpostosUseCase {
	return &SimularImpostosUseCase{
		Store:    store,
		Producer: producer,
	}
}

// Execute grava o lead e devolve a simulação dos dois regimes fixos.
// Falha ao gravar não derruba a simulação: o cálculo é o que o visitante
// veio buscar, então o erro de I/O só é logado.
func (uc *SimularImpostosUseCase) Execute(ctx context.Context, input SimulacaoInput) (*SimulacaoOutput, error) {
	faturamento := CoerceFaturamento(input.Faturamento)

	lead := &entity.Lead{
		Nome:        input.Nome,
		Telefone:    input.Telefone,
		Email:       input.Email,
		Faturamento: strconv.FormatFloat(faturamento, 'f', -1, 64),
		TipoEmpresa: input.TipoEmpresa,
	}

	if err := uc.Store.Append(ctx, lead); err != nil {
		log.Printf("❌ Erro ao salvar cadastro: %v", err)
	}

	if uc.Producer != nil {
		payload := queue.NewLeadCapturadoPayload(lead, faturamento)
		if err := uc.Producer.PublishLeadCapturado(ctx, payload); err != nil {
			log.Printf("⚠️ Falha ao publicar lead na fila: %v", err)
		}
	}

	return &SimulacaoOutput{
		Success:               true,
		SimplesNacional:       CalcularSimplesNacional(faturamento),
		EquiparacaoHospitalar: CalcularEquiparacaoHospitalar(faturamento),
	}, nil
}

// CoerceFaturamento aceita número, json.Number ou string numérica.
// Ausente ou inválido vira 0.
func CoerceFaturamento(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

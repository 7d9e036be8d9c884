package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elfem/simulador-tributario/internal/entity"
)

// TestLeadCapturadoPayloadMarshalling - o payload serializa e volta inteiro
func TestLeadCapturadoPayloadMarshalling(t *testing.T) {
	payload := LeadCapturadoPayload{
		EventID:      "evt-123",
		Nome:         "Ana Souza",
		Telefone:     "(11) 99999-9999",
		Email:        "ana@example.com",
		Faturamento:  10000,
		TipoEmpresa:  "clinica",
		DataCadastro: "29/08/2026 10:00:00",
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	assert.NotEmpty(t, body)

	var received LeadCapturadoPayload
	err = json.Unmarshal(body, &received)
	assert.NoError(t, err)
	assert.Equal(t, payload, received)
}

// TestLeadCapturadoPayloadChaves - as chaves do evento são contrato do worker
func TestLeadCapturadoPayloadChaves(t *testing.T) {
	payload := LeadCapturadoPayload{EventID: "evt-123", Nome: "Ana", Email: "ana@example.com"}

	body, _ := json.Marshal(payload)

	var data map[string]any
	json.Unmarshal(body, &data)

	for _, chave := range []string{"event_id", "nome", "telefone", "email", "faturamento", "tipo_empresa", "data_cadastro"} {
		assert.Contains(t, data, chave, "chave %s ausente", chave)
	}
}

// TestNewLeadCapturadoPayload - event_id vem preenchido e os campos copiam o lead
func TestNewLeadCapturadoPayload(t *testing.T) {
	lead := &entity.Lead{
		Nome:         "Ana",
		Telefone:     "111",
		Email:        "ana@example.com",
		TipoEmpresa:  "clinica",
		DataCadastro: "29/08/2026 10:00:00",
	}

	payload := NewLeadCapturadoPayload(lead, 10000)

	assert.NotEmpty(t, payload.EventID)
	assert.Equal(t, "Ana", payload.Nome)
	assert.Equal(t, "ana@example.com", payload.Email)
	assert.Equal(t, 10000.0, payload.Faturamento)
	assert.Equal(t, "29/08/2026 10:00:00", payload.DataCadastro)

	outro := NewLeadCapturadoPayload(lead, 10000)
	assert.NotEqual(t, payload.EventID, outro.EventID)
}

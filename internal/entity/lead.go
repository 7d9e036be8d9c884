package entity

import (
	"context"
	"errors"
)

// Status inicial de todo lead recém-cadastrado.
const StatusPendente = "pendente"

var ErrEmailObrigatorio = errors.New("Email não fornecido")

// Lead é um evento de simulação + contato submetido pelo site.
// As tags JSON seguem as chaves exibidas na área administrativa,
// que são as mesmas colunas do arquivo CSV.
type Lead struct {
	Nome          string `json:"Nome"`
	Telefone      string `json:"Telefone"`
	Email         string `json:"Email"`
	Faturamento   string `json:"Faturamento"`
	TipoEmpresa   string `json:"Tipo_Empresa"`
	DataCadastro  string `json:"Data_Cadastro"`
	StatusContato string `json:"Status_Contato"`
}

type LeadStoreInterface interface {

	// Append grava um novo lead no fim da tabela. DataCadastro e
	// StatusContato são preenchidos pelo store, não pelo chamador.
	Append(ctx context.Context, lead *Lead) error

	// ReadAll devolve todos os leads na ordem de inserção.
	ReadAll(ctx context.Context) ([]Lead, error)

	// UpdateStatusByEmail altera o Status_Contato do PRIMEIRO lead cujo
	// email for igual ao informado. Email vazio é ErrEmailObrigatorio.
	UpdateStatusByEmail(ctx context.Context, email, status string) error
}

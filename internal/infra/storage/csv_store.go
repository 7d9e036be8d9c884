package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/elfem/simulador-tributario/internal/entity"
)

// DateLayout é o formato de Data_Cadastro gravado no arquivo (hora local).
const DateLayout = "02/01/2006 15:04:05"

var header = []string{"Nome", "Telefone", "Email", "Faturamento", "Tipo_Empresa", "Data_Cadastro", "Status_Contato"}

// CSVLeadStore persiste leads em um único arquivo CSV com cabeçalho fixo.
// Um mutex serializa todas as operações: o deploy é single-process e o
// arquivo é o banco de dados inteiro.
type CSVLeadStore struct {
	path string
	mu   sync.Mutex
}

func NewCSVLeadStore(path string) *CSVLeadStore {
	return &CSVLeadStore{path: path}
}

func (s *CSVLeadStore) Append(ctx context.Context, lead *entity.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead.DataCadastro = time.Now().Format(DateLayout)
	lead.StatusContato = entity.StatusPendente

	_, statErr := os.Stat(s.path)
	novoArquivo := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("erro ao abrir %s: %w", s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if novoArquivo {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	if err := w.Write(leadToRow(lead)); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (s *CSVLeadStore) ReadAll(ctx context.Context) ([]entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *CSVLeadStore) UpdateStatusByEmail(ctx context.Context, email, status string) error {
	if email == "" {
		return entity.ErrEmailObrigatorio
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	leads, err := s.readAll()
	if err != nil {
		return err
	}
	if len(leads) == 0 {
		return nil
	}

	// Primeira ocorrência apenas: emails não são únicos na tabela.
	for i := range leads {
		if leads[i].Email == email {
			leads[i].StatusContato = status
			break
		}
	}

	return s.rewrite(leads)
}

// readAll assume que o mutex já está tomado.
func (s *CSVLeadStore) readAll() ([]entity.Lead, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao abrir %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// A ordem das colunas é contratual na escrita, mas a leitura resolve
	// pelo nome do cabeçalho.
	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		idx[name] = i
	}

	col := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	leads := make([]entity.Lead, 0, len(rows)-1)
	for _, row := range rows[1:] {
		lead := entity.Lead{
			Nome:          col(row, "Nome"),
			Telefone:      col(row, "Telefone"),
			Email:         col(row, "Email"),
			Faturamento:   col(row, "Faturamento"),
			TipoEmpresa:   col(row, "Tipo_Empresa"),
			DataCadastro:  col(row, "Data_Cadastro"),
			StatusContato: col(row, "Status_Contato"),
		}
		if lead.StatusContato == "" {
			lead.StatusContato = entity.StatusPendente
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

// rewrite troca o arquivo inteiro via temp + rename para que nenhum
// leitor enxergue a tabela pela metade.
func (s *CSVLeadStore) rewrite(leads []entity.Lead) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "dados_controle-*.csv")
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return err
	}
	for i := range leads {
		if err := w.Write(leadToRow(&leads[i])); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

func leadToRow(lead *entity.Lead) []string {
	return []string{
		lead.Nome,
		lead.Telefone,
		lead.Email,
		lead.Faturamento,
		lead.TipoEmpresa,
		lead.DataCadastro,
		lead.StatusContato,
	}
}

package usecase

import (
	"strings"
	"time"

	"github.com/elfem/simulador-tributario/internal/entity"
)

type Estatisticas struct {
	TotalUsuarios   int `json:"total_usuarios"`
	TotalSimulacoes int `json:"total_simulacoes"`
	CadastrosHoje   int `json:"cadastros_hoje"`
}

// CalcularEstatisticas resume a tabela de leads: usuários distintos por
// email não vazio, total de simulações e cadastros cuja Data_Cadastro
// contém a data de hoje (dd/mm/aaaa).
func CalcularEstatisticas(leads []entity.Lead, agora time.Time) Estatisticas {
	hoje := agora.Format("02/01/2006")

	emails := make(map[string]struct{})
	cadastrosHoje := 0

	for _, lead := range leads {
		if strings.Contains(lead.DataCadastro, hoje) {
			cadastrosHoje++
		}
		if lead.Email != "" {
			emails[lead.Email] = struct{}{}
		}
	}

	return Estatisticas{
		TotalUsuarios:   len(emails),
		TotalSimulacoes: len(leads),
		CadastrosHoje:   cadastrosHoje,
	}
}

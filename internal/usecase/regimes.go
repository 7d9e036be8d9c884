package usecase

import "math"

// Alíquotas fixas da faixa 2 de cada regime.
const (
	AliquotaSimplesNacional       = 16.75
	AliquotaEquiparacaoHospitalar = 5.93
)

type RegimeResult struct {
	Mensal   float64 `json:"mensal"`
	Anual    float64 `json:"anual"`
	Aliquota float64 `json:"aliquota"`
}

// CalcularSimplesNacional aplica a alíquota do Simples Nacional (Faixa 2)
// direto sobre o faturamento mensal. Faturamento zero ou negativo não é
// rejeitado: o resultado apenas acompanha o sinal.
func CalcularSimplesNacional(faturamento float64) RegimeResult {
	mensal := round2(faturamento * AliquotaSimplesNacional / 100)
	return RegimeResult{
		Mensal:   mensal,
		Anual:    round2(mensal * 12),
		Aliquota: AliquotaSimplesNacional,
	}
}

// CalcularEquiparacaoHospitalar aplica a alíquota da Equiparação
// Hospitalar (Faixa 2) direto sobre o faturamento mensal.
func CalcularEquiparacaoHospitalar(faturamento float64) RegimeResult {
	mensal := round2(faturamento * AliquotaEquiparacaoHospitalar / 100)
	return RegimeResult{
		Mensal:   mensal,
		Anual:    round2(mensal * 12),
		Aliquota: AliquotaEquiparacaoHospitalar,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

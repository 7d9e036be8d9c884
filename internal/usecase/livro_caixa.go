package usecase

import "math"

type LivroCaixaResult struct {
	Mensal   float64 `json:"mensal"`
	Anual    float64 `json:"anual"`
	Aliquota float64 `json:"aliquota"`
	Base     float64 `json:"base"`
}

// CalcularLivroCaixa estima a carga do regime Livro Caixa: a base de
// cálculo é 20% do faturamento, sobre a qual incide a tabela progressiva
// do IRPF, somada a ISS (5%) e INSS (11%) sobre o faturamento cheio.
// IRPF negativo nas faixas baixas é tratado como zero. Com faturamento
// zero a alíquota efetiva é reportada como 0 em vez de NaN.
func CalcularLivroCaixa(faturamento float64) LivroCaixaResult {
	base := faturamento * 0.2

	var irpf float64
	switch {
	case base <= 2259.20:
		irpf = 0
	case base <= 2826.65:
		irpf = base*0.075 - 169.44
	case base <= 3751.05:
		irpf = base*0.15 - 381.44
	case base <= 4664.68:
		irpf = base*0.225 - 662.77
	default:
		irpf = base*0.275 - 896.00
	}

	iss := faturamento * 0.05
	inss := faturamento * 0.11

	mensal := math.Max(0, irpf) + iss + inss

	aliquota := 0.0
	if faturamento != 0 {
		aliquota = mensal / faturamento * 100
	}

	return LivroCaixaResult{
		Mensal:   mensal,
		Anual:    mensal * 12,
		Aliquota: aliquota,
		Base:     base,
	}
}

package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCalcularLivroCaixaCenarioReferencia - faturamento de R$ 10.000:
// base 2.000 fica na faixa isenta, sobra ISS + INSS
func TestCalcularLivroCaixaCenarioReferencia(t *testing.T) {
	result := CalcularLivroCaixa(10000)

	assert.Equal(t, 2000.0, result.Base)
	assert.InDelta(t, 1600.0, result.Mensal, 1e-9) // 500 ISS + 1100 INSS
	assert.InDelta(t, 19200.0, result.Anual, 1e-9)
	assert.InDelta(t, 16.0, result.Aliquota, 1e-9)
}

// TestCalcularLivroCaixaFaixaSuperior - base na quarta faixa do IRPF
func TestCalcularLivroCaixaFaixaSuperior(t *testing.T) {
	result := CalcularLivroCaixa(20000)

	assert.Equal(t, 4000.0, result.Base)
	// irpf = 4000*0.225 - 662.77 = 237.23; iss = 1000; inss = 2200
	assert.InDelta(t, 3437.23, result.Mensal, 1e-9)
}

// TestCalcularLivroCaixaContinuidadeNasFaixas - a tabela progressiva é
// contínua em cada limite de faixa
func TestCalcularLivroCaixaContinuidadeNasFaixas(t *testing.T) {
	limites := []float64{2259.20, 2826.65, 3751.05, 4664.68}

	for _, base := range limites {
		faturamento := base / 0.2
		abaixo := CalcularLivroCaixa(faturamento)
		acima := CalcularLivroCaixa(faturamento * (1 + 1e-9))

		assert.InDelta(t, abaixo.Mensal, acima.Mensal, 1e-4, "limite %v", base)
	}
}

// TestCalcularLivroCaixaIRPFNuncaNegativo - na primeira faixa o IRPF é
// zero, então mensal = 16% do faturamento exato
func TestCalcularLivroCaixaIRPFNuncaNegativo(t *testing.T) {
	// base = 2259.20 ainda é isenta
	result := CalcularLivroCaixa(2259.20 / 0.2)
	assert.InDelta(t, (2259.20/0.2)*0.16, result.Mensal, 1e-9)
}

// TestCalcularLivroCaixaFaturamentoZero - alíquota efetiva reportada como
// 0 em vez de divisão por zero
func TestCalcularLivroCaixaFaturamentoZero(t *testing.T) {
	result := CalcularLivroCaixa(0)

	assert.Equal(t, 0.0, result.Mensal)
	assert.Equal(t, 0.0, result.Anual)
	assert.Equal(t, 0.0, result.Aliquota)
	assert.Equal(t, 0.0, result.Base)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/elfem/simulador-tributario/internal/infra/http/middleware"
	"github.com/elfem/simulador-tributario/internal/usecase"
)

type SimulacaoHandler struct {
	SimularImpostosUC *usecase.SimularImpostosUseCase
}

func NewSimulacaoHandler(uc *usecase.SimularImpostosUseCase) *SimulacaoHandler {
	return &SimulacaoHandler{SimularImpostosUC: uc}
}

// Handle é o POST /calcular: grava o lead e devolve a simulação dos dois
// regimes. Qualquer falha vira envelope {success:false} com 500.
func (h *SimulacaoHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SimulacaoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "JSON inválido: "+err.Error())
		return
	}

	output, err := h.SimularImpostosUC.Execute(r.Context(), input)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.RecordSimulacao(input.TipoEmpresa)
	writeJSON(w, http.StatusOK, output)
}

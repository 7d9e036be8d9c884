package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/elfem/simulador-tributario/internal/entity"
	"github.com/elfem/simulador-tributario/internal/infra/http/middleware"
	"github.com/elfem/simulador-tributario/internal/usecase"
)

// AdminHandler agrupa as rotas da área administrativa. A autenticação é
// um único par usuário/senha vindo do ambiente; o frontend guarda o
// resultado do login e as demais rotas não exigem sessão.
type AdminHandler struct {
	Store   entity.LeadStoreInterface
	Usuario string
	Senha   string
}

func NewAdminHandler(store entity.LeadStoreInterface, usuario, senha string) *AdminHandler {
	return &AdminHandler{
		Store:   store,
		Usuario: usuario,
		Senha:   senha,
	}
}

type LoginRequest struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

type DadosResponse struct {
	Success bool          `json:"success"`
	Dados   []entity.Lead `json:"dados"`
	Total   int           `json:"total"`
}

type EstatisticasResponse struct {
	Success         bool `json:"success"`
	TotalUsuarios   int  `json:"total_usuarios"`
	TotalSimulacoes int  `json:"total_simulacoes"`
	CadastrosHoje   int  `json:"cadastros_hoje"`
}

type MarcarContatoRequest struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

// HandleLogin é o POST /admin/login. 200 no par exato, 401 em qualquer
// outra combinação.
func (h *AdminHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	json.NewDecoder(r.Body).Decode(&req)

	if req.Usuario == h.Usuario && req.Senha == h.Senha {
		middleware.RecordLoginAttempt("success")
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}

	middleware.RecordLoginAttempt("failure")
	writeJSON(w, http.StatusUnauthorized, map[string]bool{"success": false})
}

// HandleDados é o GET /admin/dados: dump completo da tabela, do mais
// antigo para o mais novo.
func (h *AdminHandler) HandleDados(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Store.ReadAll(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if leads == nil {
		leads = []entity.Lead{}
	}

	writeJSON(w, http.StatusOK, DadosResponse{
		Success: true,
		Dados:   leads,
		Total:   len(leads),
	})
}

// HandleEstatisticas é o GET /admin/estatisticas.
func (h *AdminHandler) HandleEstatisticas(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Store.ReadAll(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	stats := usecase.CalcularEstatisticas(leads, time.Now())
	writeJSON(w, http.StatusOK, EstatisticasResponse{
		Success:         true,
		TotalUsuarios:   stats.TotalUsuarios,
		TotalSimulacoes: stats.TotalSimulacoes,
		CadastrosHoje:   stats.CadastrosHoje,
	})
}

// HandleMarcarContato é o POST /admin/marcar_contato. O contrato herdado
// do frontend responde 200 mesmo em falha, com success:false no corpo.
func (h *AdminHandler) HandleMarcarContato(w http.ResponseWriter, r *http.Request) {
	var req MarcarContatoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusOK, "JSON inválido: "+err.Error())
		return
	}

	if err := h.Store.UpdateStatusByEmail(r.Context(), req.Email, req.Status); err != nil {
		writeErrorResponse(w, http.StatusOK, err.Error())
		return
	}

	middleware.RecordContactUpdate(req.Status)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

package mail

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/elfem/simulador-tributario/internal/infra/queue"
	"github.com/elfem/simulador-tributario/internal/usecase"
)

func NewEmailSender(host string, port int, user, password, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		To:       to,
	}
}

// NotificarNovoLead avisa a equipe comercial que um lead novo simulou
// impostos, já com os números dos três regimes no corpo do email.
func (s *EmailSender) NotificarNovoLead(ctx context.Context, payload queue.LeadCapturadoPayload) error {
	simples := usecase.CalcularSimplesNacional(payload.Faturamento)
	equiparacao := usecase.CalcularEquiparacaoHospitalar(payload.Faturamento)
	livroCaixa := usecase.CalcularLivroCaixa(payload.Faturamento)

	data := NovoLeadEmailData{
		Nome:              payload.Nome,
		Email:             payload.Email,
		Telefone:          payload.Telefone,
		TipoEmpresa:       payload.TipoEmpresa,
		Faturamento:       fmt.Sprintf("R$ %.2f", payload.Faturamento),
		DataCadastro:      payload.DataCadastro,
		SimplesMensal:     fmt.Sprintf("R$ %.2f", simples.Mensal),
		EquiparacaoMensal: fmt.Sprintf("R$ %.2f", equiparacao.Mensal),
		LivroCaixaMensal:  fmt.Sprintf("R$ %.2f", livroCaixa.Mensal),
	}

	tmplPath := filepath.Join("templates", "novo_lead.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.User)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Novo lead no simulador: %s 📈", payload.Nome))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

package mail

type NovoLeadEmailData struct {
	Nome              string
	Email             string
	Telefone          string
	TipoEmpresa       string
	Faturamento       string
	DataCadastro      string
	SimplesMensal     string
	EquiparacaoMensal string
	LivroCaixaMensal  string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string
}

package domain

import "time"

// StatusAnalise é a máquina de estados da análise EPR:
// pendente -> confirmada | cancelada (terminais, sem transições de saída).
type StatusAnalise string

const (
	AnalisePendente   StatusAnalise = "PE"
	AnaliseConfirmada StatusAnalise = "CO"
	AnaliseCancelada  StatusAnalise = "CA"
)

// Descricao retorna o rótulo humano do status, usado nas mensagens de erro
// de transição inválida.
func (s StatusAnalise) Descricao() string {
	switch s {
	case AnalisePendente:
		return "pendente"
	case AnaliseConfirmada:
		return "confirmada"
	case AnaliseCancelada:
		return "cancelada"
	}
	return string(s)
}

// DadosLinhaEPR é o payload extraído de uma linha da planilha EPR no momento
// da análise. O valor da comissão vem da venda já cadastrada, pois a planilha
// EPR não possui essa coluna. A exportação usa exatamente esses dados
// congelados, nunca uma nova consulta.
type DadosLinhaEPR struct {
	VendaID                   string  `json:"venda_id"`
	NomeEmpreendimento        string  `json:"nome_empreendimento"`
	NumeroContrato            string  `json:"numero_contrato"`
	NomeMutuario              string  `json:"nome_mutuario"`
	CPFCNPJ                   string  `json:"cpf_cnpj"`
	DataAssinatura            string  `json:"data_assinatura"`
	ValorFinanciamento        float64 `json:"valor_financiamento"`
	ValorFinanciamentoTerreno float64 `json:"valor_financiamento_terreno"`
	ValorSubsidio             float64 `json:"valor_subsidio"`
	ValorFGTS                 float64 `json:"valor_fgts"`
	ValorRecursosProprios     float64 `json:"valor_recursos_proprios"`
	ValorCompraVenda          float64 `json:"valor_compra_venda"`
	ValorComissao             float64 `json:"valor_comissao"`
	MesReferencia             string  `json:"mes_referencia"`
	EmpreendimentoSistema     string  `json:"empreendimento_sistema"`
}

// AnaliseEPR é o artefato intermediário do fluxo analisar/confirmar.
// Depois de sair de pendente só o status e o timestamp de confirmação mudam.
type AnaliseEPR struct {
	ID               string          `json:"id"`
	Status           StatusAnalise   `json:"status"`
	VendasIDs        []string        `json:"vendas_ids"`
	DadosEPR         []DadosLinhaEPR `json:"dados_epr"`
	TotalEncontradas int             `json:"total_encontradas"`
	ResumoPorMes     map[string]int  `json:"resumo_por_mes"`
	CreatedAt        time.Time       `json:"created_at"`
	ConfirmadoEm     *time.Time      `json:"confirmado_em,omitempty"`
}

// PreviaLinhaEPR é a visão resumida de uma linha para a resposta da análise.
type PreviaLinhaEPR struct {
	VendaID        string  `json:"venda_id"`
	Cliente        string  `json:"cliente"`
	Empreendimento string  `json:"empreendimento"`
	ValorComissao  float64 `json:"valor_comissao"`
}

// ResultadoAnaliseEPR é a resposta do passo de análise. Quando nenhuma venda
// pendente é encontrada, AnaliseID fica vazio e nenhum registro é criado.
type ResultadoAnaliseEPR struct {
	AnaliseID         string                      `json:"analise_id,omitempty"`
	Mensagem          string                      `json:"message"`
	TotalLinhas       int                         `json:"total_linhas_epr"`
	VendasEncontradas int                         `json:"vendas_encontradas"`
	ResumoPorMes      map[string]int              `json:"resumo_por_mes,omitempty"`
	DetalhesPorMes    map[string][]PreviaLinhaEPR `json:"detalhes_por_mes,omitempty"`
}

// ConfirmacaoAnalise é a resposta da confirmação. VendasFaturadas pode ser
// menor que o total encontrado na análise se alguma venda mudou de estado
// nesse meio tempo; isso é reportado, não é erro.
type ConfirmacaoAnalise struct {
	AnaliseID       string    `json:"analise_id"`
	VendasFaturadas int64     `json:"vendas_faturadas"`
	ConfirmadoEm    time.Time `json:"confirmado_em"`
}

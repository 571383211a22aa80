package domain

// ResumoVendas agrega os números gerais exibidos no painel.
type ResumoVendas struct {
	TotalVendas       int     `json:"total_vendas"`
	VendasPendentes   int     `json:"vendas_pendentes"`
	VendasFaturadas   int     `json:"vendas_faturadas"`
	TotalValorVendas  float64 `json:"total_valor_vendas"`
	TotalComissao     float64 `json:"total_comissao"`
	ComissaoPendente  float64 `json:"comissao_pendente"`
	ComissaoFaturada  float64 `json:"comissao_faturada"`
	VendasAVista      int     `json:"vendas_a_vista"`
	VendasFinanciadas int     `json:"vendas_financiadas"`
}

// ResumoMensal agrega os números de uma tabela mensal.
type ResumoMensal struct {
	TabelaMensalID   string  `json:"tabela_id"`
	MesReferencia    string  `json:"mes_referencia"`
	TotalVendas      int     `json:"total_vendas"`
	Pendentes        int     `json:"pendentes"`
	Faturadas        int     `json:"faturadas"`
	TotalComissao    float64 `json:"total_comissao"`
	ComissaoFaturada float64 `json:"comissao_faturada"`
}

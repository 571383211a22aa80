package domain

import "time"

// StatusVenda representa o ciclo de vida de uma venda.
type StatusVenda string

const (
	StatusPendente StatusVenda = "PE"
	StatusFaturado StatusVenda = "FA"
)

// FormaPagamento é opcional na venda e só é conhecida após a importação
// da planilha de gestão.
type FormaPagamento string

const (
	PagamentoAVista     FormaPagamento = "AV"
	PagamentoFinanciado FormaPagamento = "FI"
	PagamentoDesconto   FormaPagamento = "DE"
)

// Venda pertence a exatamente uma tabela mensal e referencia um cliente e
// um empreendimento. A tupla (cliente, empreendimento, unidade, data da venda)
// é única: reimportações devem atualizar, nunca duplicar.
type Venda struct {
	ID               string         `json:"id"`
	ClienteID        string         `json:"cliente_id"`
	EmpreendimentoID string         `json:"empreendimento_id"`
	TabelaMensalID   string         `json:"tabela_mensal_id"`
	DataVenda        time.Time      `json:"data_venda"`
	Status           StatusVenda    `json:"status"`
	FormaPagamento   FormaPagamento `json:"forma_pagamento,omitempty"`
	ValorVenda       *float64       `json:"valor_venda,omitempty"`
	ValorComissao    *float64       `json:"valor_comissao,omitempty"`
	FGTS             *float64       `json:"fgts,omitempty"`
	Corretor         *string        `json:"corretor,omitempty"`
	Imobiliaria      *string        `json:"imobiliaria,omitempty"`
	Unidade          *string        `json:"unidade,omitempty"`
	Etapa            *string        `json:"etapa,omitempty"`
	Observacoes      *string        `json:"observacoes,omitempty"`
	DataFaturamento  *time.Time     `json:"data_faturamento,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// VendaDetalhada carrega a venda junto dos nomes resolvidos por join,
// usados na construção dos índices de matching e nos relatórios.
type VendaDetalhada struct {
	Venda
	ClienteNome        string `json:"cliente_nome"`
	EmpreendimentoNome string `json:"empreendimento_nome"`
	MesReferencia      string `json:"mes_referencia"`
}

// FiltroVendas restringe consultas por igualdade de campos.
type FiltroVendas struct {
	FormaPagamento *FormaPagamento
	Status         *StatusVenda
	TabelaMensalID *string
}

// AtualizacaoAcompanhamento é o conjunto de campos que a planilha de
// acompanhamento pode enriquecer em uma venda existente. Nenhum outro
// campo é tocado por essa importação.
type AtualizacaoAcompanhamento struct {
	VendaID     string
	Corretor    *string
	Imobiliaria *string
	Etapa       *string
	FGTS        *float64
	Observacoes *string
}

// AtualizacaoPagamento é o conjunto de campos que a planilha de gestão
// pode enriquecer: forma de pagamento, valor e a comissão derivada.
type AtualizacaoPagamento struct {
	VendaID        string
	FormaPagamento FormaPagamento
	ValorVenda     *float64
	ValorComissao  *float64
}

// ResultadoImportacao resume uma importação: quantas vendas foram criadas,
// quantas atualizadas e uma amostra dos nomes sem correspondência.
type ResultadoImportacao struct {
	Criadas              int      `json:"vendas_criadas"`
	Atualizadas          int      `json:"vendas_atualizadas"`
	TotalNaoEncontrados  int      `json:"total_nao_encontrados"`
	NaoEncontrados       []string `json:"nao_encontrados,omitempty"`
	ClientesCriados      int      `json:"clientes_criados,omitempty"`
	EmpreendimentosNovos int      `json:"empreendimentos_criados,omitempty"`
}

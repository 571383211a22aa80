package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recebimentos-api/internal/domain"
	"github.com/vfg2006/recebimentos-api/internal/usecases/managing"
	"github.com/vfg2006/recebimentos-api/pkg/apiErrors"
	"github.com/vfg2006/recebimentos-api/pkg/utils"
)

// CriarVendaRequest aceita a data no formato YYYY-MM-DD. A tabela mensal é
// opcional; quando ausente é derivada do mês da data da venda.
type CriarVendaRequest struct {
	ClienteID        string   `json:"cliente_id"`
	EmpreendimentoID string   `json:"empreendimento_id"`
	TabelaMensalID   string   `json:"tabela_mensal_id,omitempty"`
	DataVenda        string   `json:"data_venda"`
	FormaPagamento   string   `json:"forma_pagamento,omitempty"`
	ValorVenda       *float64 `json:"valor_venda,omitempty"`
	Unidade          *string  `json:"unidade,omitempty"`
	Corretor         *string  `json:"corretor,omitempty"`
	Imobiliaria      *string  `json:"imobiliaria,omitempty"`
	Etapa            *string  `json:"etapa,omitempty"`
	Observacoes      *string  `json:"observacoes,omitempty"`
}

func escreverErroGestao(w http.ResponseWriter, err error) {
	var managementErr *managing.ManagementError
	if errors.As(err, &managementErr) {
		apiErrors.WriteError(w, managementErr.Code, managementErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
}

func CriarVenda(service managing.ManagementService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CriarVenda")

		var req CriarVendaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		dataVenda, err := utils.ParseDate(req.DataVenda)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da venda inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		venda := &domain.Venda{
			ClienteID:        req.ClienteID,
			EmpreendimentoID: req.EmpreendimentoID,
			TabelaMensalID:   req.TabelaMensalID,
			DataVenda:        *dataVenda,
			FormaPagamento:   domain.FormaPagamento(req.FormaPagamento),
			ValorVenda:       req.ValorVenda,
			Unidade:          req.Unidade,
			Corretor:         req.Corretor,
			Imobiliaria:      req.Imobiliaria,
			Etapa:            req.Etapa,
			Observacoes:      req.Observacoes,
		}

		venda, err = service.CriarVenda(r.Context(), venda)
		if err != nil {
			logrus.Error("Erro ao criar venda:", err)
			escreverErroGestao(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(venda); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func BuscarVenda(service managing.ManagementService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vendaID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		venda, err := service.BuscarVenda(vendaID)
		if err != nil {
			escreverErroGestao(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(venda); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func RemoverVenda(service managing.ManagementService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vendaID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.RemoverVenda(vendaID); err != nil {
			escreverErroGestao(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ListarVendas aceita os filtros opcionais status, forma_pagamento e tabela.
func ListarVendas(service managing.ManagementService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var filtro domain.FiltroVendas

		if status := r.URL.Query().Get("status"); status != "" {
			s := domain.StatusVenda(status)
			filtro.Status = &s
		}

		if forma := r.URL.Query().Get("forma_pagamento"); forma != "" {
			f := domain.FormaPagamento(forma)
			filtro.FormaPagamento = &f
		}

		if tabela := r.URL.Query().Get("tabela"); tabela != "" {
			filtro.TabelaMensalID = &tabela
		}

		vendas, err := service.ListarVendas(filtro)
		if err != nil {
			logrus.Error("Erro ao listar vendas:", err)
			escreverErroGestao(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(vendas); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

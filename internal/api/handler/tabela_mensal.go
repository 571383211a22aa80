package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recebimentos-api/internal/domain"
	"github.com/vfg2006/recebimentos-api/internal/usecases/managing"
	"github.com/vfg2006/recebimentos-api/pkg/apiErrors"
)

// TabelaComVendas é a resposta do detalhe de uma tabela mensal.
type TabelaComVendas struct {
	Tabela *domain.TabelaMensal     `json:"tabela"`
	Vendas []*domain.VendaDetalhada `json:"vendas"`
}

func ListarTabelas(service managing.ManagementService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tabelas, err := service.ListarTabelas()
		if err != nil {
			logrus.Error("Erro ao listar tabelas mensais:", err)
			escreverErroGestao(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tabelas); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DetalharTabela(service managing.ManagementService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tabelaID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		tabela, err := service.BuscarTabela(tabelaID)
		if err != nil {
			escreverErroGestao(w, err)
			return
		}

		vendas, err := service.VendasDaTabela(tabelaID)
		if err != nil {
			escreverErroGestao(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(TabelaComVendas{Tabela: tabela, Vendas: vendas}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func RemoverTabela(service managing.ManagementService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tabelaID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.RemoverTabela(tabelaID); err != nil {
			escreverErroGestao(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

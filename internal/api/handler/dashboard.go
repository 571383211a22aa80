package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recebimentos-api/internal/usecases/reporting"
	"github.com/vfg2006/recebimentos-api/pkg/apiErrors"
)

func escreverErroRelatorio(w http.ResponseWriter, err error) {
	var reportingErr *reporting.ReportingError
	if errors.As(err, &reportingErr) {
		apiErrors.WriteError(w, reportingErr.Code, reportingErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório", nil)
}

func DashboardResumo(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resumo, err := service.Resumo()
		if err != nil {
			logrus.Error("Erro no resumo do painel:", err)
			escreverErroRelatorio(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resumo); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DashboardResumoMensal(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resumos, err := service.ResumoPorMes()
		if err != nil {
			logrus.Error("Erro no resumo mensal do painel:", err)
			escreverErroRelatorio(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resumos); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

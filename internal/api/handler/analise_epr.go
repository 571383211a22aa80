package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recebimentos-api/internal/domain"
	"github.com/vfg2006/recebimentos-api/internal/usecases/analyzing"
	"github.com/vfg2006/recebimentos-api/pkg/apiErrors"
)

func escreverErroAnalise(w http.ResponseWriter, err error) {
	var analysisErr *analyzing.AnalysisError
	if errors.As(err, &analysisErr) {
		apiErrors.WriteError(w, analysisErr.Code, analysisErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar análise EPR", nil)
}

// AnalisarEPR recebe a planilha EPR e cria uma análise pendente com a prévia
// do faturamento. Nenhuma venda é alterada até a confirmação.
func AnalisarEPR(service analyzing.AnalysisService, maxUploadBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AnalisarEPR")

		file, ok := abrirPlanilha(w, r, maxUploadBytes)
		if !ok {
			return
		}
		defer file.Close()

		resultado, err := service.Analisar(r.Context(), file)
		if err != nil {
			logrus.Error("Erro na análise EPR:", err)
			escreverErroAnalise(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resultado); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ConfirmarAnalise(service analyzing.AnalysisService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		analiseID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		confirmacao, err := service.Confirmar(r.Context(), analiseID)
		if err != nil {
			logrus.Error("Erro ao confirmar análise:", err)
			escreverErroAnalise(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(confirmacao); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CancelarAnalise(service analyzing.AnalysisService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		analiseID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Cancelar(r.Context(), analiseID); err != nil {
			logrus.Error("Erro ao cancelar análise:", err)
			escreverErroAnalise(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{
			"message": "Análise cancelada",
		}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ExportarAnalise devolve a planilha de recebimentos de uma análise
// confirmada. O parâmetro opcional mes restringe a um mês de referência.
func ExportarAnalise(service analyzing.AnalysisService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		analiseID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		mes := r.URL.Query().Get("mes")

		planilha, nomeArquivo, err := service.Exportar(r.Context(), analiseID, mes)
		if err != nil {
			logrus.Error("Erro ao exportar análise:", err)
			escreverErroAnalise(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nomeArquivo))

		if _, err := w.Write(planilha); err != nil {
			logrus.Error("Erro ao enviar planilha:", err)
		}
	})
}

func ListarAnalises(service analyzing.AnalysisService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var status *domain.StatusAnalise
		if filtro := r.URL.Query().Get("status"); filtro != "" {
			s := domain.StatusAnalise(filtro)
			status = &s
		}

		analises, err := service.Listar(status)
		if err != nil {
			logrus.Error("Erro ao listar análises:", err)
			escreverErroAnalise(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analises); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DetalharAnalise(service analyzing.AnalysisService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		analiseID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		analise, err := service.Detalhar(analiseID)
		if err != nil {
			logrus.Error("Erro ao detalhar análise:", err)
			escreverErroAnalise(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analise); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

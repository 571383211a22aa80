package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recebimentos-api/internal/usecases/importing"
	"github.com/vfg2006/recebimentos-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// abrirPlanilha extrai o arquivo "file" do corpo multipart. O limite de
// tamanho é aplicado antes do parse para cortar uploads abusivos cedo.
func abrirPlanilha(w http.ResponseWriter, r *http.Request, maxUploadBytes int64) (multipart.File, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo multipart inválido ou arquivo grande demais", nil)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo da planilha não enviado no campo 'file'", nil)
		return nil, false
	}

	return file, true
}

func escreverErroImportacao(w http.ResponseWriter, err error) {
	var importErr *importing.ImportError
	if errors.As(err, &importErr) {
		apiErrors.WriteError(w, importErr.Code, importErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar importação", nil)
}

// ImportarAcompanhamento recebe a planilha de acompanhamento. O campo
// opcional mes_referencia força todas as linhas para uma única tabela mensal.
func ImportarAcompanhamento(service importing.ImportService, maxUploadBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportarAcompanhamento")

		file, ok := abrirPlanilha(w, r, maxUploadBytes)
		if !ok {
			return
		}
		defer file.Close()

		mesReferencia := r.FormValue("mes_referencia")

		resultado, err := service.ImportarAcompanhamento(r.Context(), file, mesReferencia)
		if err != nil {
			logrus.Error("Erro na importação de acompanhamento:", err)
			escreverErroImportacao(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resultado); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ImportarGestao(service importing.ImportService, maxUploadBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportarGestao")

		file, ok := abrirPlanilha(w, r, maxUploadBytes)
		if !ok {
			return
		}
		defer file.Close()

		resultado, err := service.ImportarGestao(r.Context(), file)
		if err != nil {
			logrus.Error("Erro na importação de gestão:", err)
			escreverErroImportacao(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resultado); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ImportarSienge(service importing.ImportService, maxUploadBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportarSienge")

		file, ok := abrirPlanilha(w, r, maxUploadBytes)
		if !ok {
			return
		}
		defer file.Close()

		resultado, err := service.ImportarSienge(r.Context(), file)
		if err != nil {
			logrus.Error("Erro na importação do Sienge:", err)
			escreverErroImportacao(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resultado); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

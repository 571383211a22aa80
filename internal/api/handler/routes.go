package handler

import (
	"net/http"

	"github.com/vfg2006/recebimentos-api/internal/api/handler/router"
	"github.com/vfg2006/recebimentos-api/internal/usecases/analyzing"
	"github.com/vfg2006/recebimentos-api/internal/usecases/authenticating"
	"github.com/vfg2006/recebimentos-api/internal/usecases/importing"
	"github.com/vfg2006/recebimentos-api/internal/usecases/managing"
	"github.com/vfg2006/recebimentos-api/internal/usecases/reporting"
	"github.com/vfg2006/recebimentos-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DiretorOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DiretorOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DiretorOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
	}
}

// Importacoes agrupa os uploads de planilha, um endpoint por sistema de origem.
func Importacoes(service importing.ImportService, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/importacoes/acompanhamento",
			Method:      http.MethodPost,
			Handler:     ImportarAcompanhamento(service, maxUploadBytes),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/importacoes/gestao",
			Method:      http.MethodPost,
			Handler:     ImportarGestao(service, maxUploadBytes),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/importacoes/sienge",
			Method:      http.MethodPost,
			Handler:     ImportarSienge(service, maxUploadBytes),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
	}
}

// Analises agrupa o fluxo analisar/confirmar/cancelar/exportar da EPR.
func Analises(service analyzing.AnalysisService, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analises",
			Method:      http.MethodPost,
			Handler:     AnalisarEPR(service, maxUploadBytes),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/analises",
			Method:      http.MethodGet,
			Handler:     ListarAnalises(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/analises/:id",
			Method:      http.MethodGet,
			Handler:     DetalharAnalise(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/analises/:id/confirmar",
			Method:      http.MethodPost,
			Handler:     ConfirmarAnalise(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/analises/:id/cancelar",
			Method:      http.MethodPost,
			Handler:     CancelarAnalise(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/analises/:id/exportar",
			Method:      http.MethodGet,
			Handler:     ExportarAnalise(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
	}
}

func Vendas(service managing.ManagementService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/vendas",
			Method:      http.MethodPost,
			Handler:     CriarVenda(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/vendas",
			Method:      http.MethodGet,
			Handler:     ListarVendas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/vendas/:id",
			Method:      http.MethodGet,
			Handler:     BuscarVenda(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/vendas/:id",
			Method:      http.MethodDelete,
			Handler:     RemoverVenda(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DiretorOnly()},
		},
	}
}

func Tabelas(service managing.ManagementService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tabelas",
			Method:      http.MethodGet,
			Handler:     ListarTabelas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/tabelas/:id",
			Method:      http.MethodGet,
			Handler:     DetalharTabela(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/tabelas/:id",
			Method:      http.MethodDelete,
			Handler:     RemoverTabela(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DiretorOnly()},
		},
	}
}

func Dashboard(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/resumo",
			Method:      http.MethodGet,
			Handler:     DashboardResumo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
		{
			Path:        "/v1/dashboard/resumo-mensal",
			Method:      http.MethodGet,
			Handler:     DashboardResumoMensal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPerfis()},
		},
	}
}

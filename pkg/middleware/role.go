package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recebimentos-api/internal/domain"
	"github.com/vfg2006/recebimentos-api/pkg/apiErrors"
)

// PerfilMiddleware cria um middleware que restringe o acesso com base no
// perfil do usuário autenticado
func PerfilMiddleware(allowedPerfis []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, perfil := range allowedPerfis {
				if userClaims.UserPerfil == perfil {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%d, Perfil=%d", userClaims.UserID, userClaims.UserPerfil)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// DiretorOnly permite acesso apenas ao perfil diretor
func DiretorOnly() func(http.Handler) http.Handler {
	return PerfilMiddleware([]int{domain.PerfilDiretor})
}

// TodosPerfis permite acesso a qualquer usuário autenticado
func TodosPerfis() func(http.Handler) http.Handler {
	return PerfilMiddleware([]int{domain.PerfilDiretor, domain.PerfilGestor})
}

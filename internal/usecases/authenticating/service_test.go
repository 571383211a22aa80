package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/recebimentos-api/infrastructure/repository/mocks"
	"github.com/vfg2006/recebimentos-api/internal/config"
	"github.com/vfg2006/recebimentos-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func novoService(userRepo *mocks.MockUserRepository) *Service {
	return &Service{
		userRepo: userRepo,
		cfg: &config.Config{
			Auth: config.Auth{
				SecretKey:     "segredo-de-teste",
				TokenTTLHours: 24,
				BCryptCost:    bcrypt.MinCost,
			},
		},
	}
}

func usuarioAtivo(t *testing.T, senha string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           1,
		Name:         "Vinicius",
		Lastname:     "Gonçalves",
		Email:        "vinicius@example.com",
		PasswordHash: string(hash),
		Active:       true,
		Perfil:       domain.PerfilDiretor,
	}
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := novoService(userRepo)

	userRepo.EXPECT().
		GetUserByEmail("vinicius@example.com").
		Return(usuarioAtivo(t, "Senha@123"), nil)

	token, err := service.LoginUser(" Vinicius@Example.com ", "Senha@123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// O token emitido valida com a mesma chave e carrega o perfil
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, domain.PerfilDiretor, claims.UserPerfil)
}

func TestLoginUser_SenhaIncorreta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := novoService(userRepo)

	userRepo.EXPECT().
		GetUserByEmail("vinicius@example.com").
		Return(usuarioAtivo(t, "Senha@123"), nil)

	_, err := service.LoginUser("vinicius@example.com", "errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_ContaDesativada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := novoService(userRepo)

	user := usuarioAtivo(t, "Senha@123")
	user.Active = false

	userRepo.EXPECT().GetUserByEmail("vinicius@example.com").Return(user, nil)

	_, err := service.LoginUser("vinicius@example.com", "Senha@123")
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLoginUser_NaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := novoService(userRepo)

	userRepo.EXPECT().GetUserByEmail("ninguem@example.com").Return(nil, nil)

	_, err := service.LoginUser("ninguem@example.com", "Senha@123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := novoService(userRepo)

	userRepo.EXPECT().GetUserByEmail("novo@example.com").Return(nil, nil)
	userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			// Senha nunca é persistida em claro e usuário nasce inativo
			assert.NotEqual(t, "Senha@123", user.PasswordHash)
			assert.False(t, user.Active)
			assert.Equal(t, domain.PerfilGestor, user.Perfil)
			return user, nil
		})

	_, err := service.CreateUser(&domain.User{
		Name:         "Novo",
		Lastname:     "Usuário",
		Email:        "Novo@Example.com",
		PasswordHash: "Senha@123",
	})
	require.NoError(t, err)
}

func TestCreateUser_EmailJaCadastrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := novoService(userRepo)

	userRepo.EXPECT().
		GetUserByEmail("vinicius@example.com").
		Return(usuarioAtivo(t, "Senha@123"), nil)

	_, err := service.CreateUser(&domain.User{
		Name:         "Outro",
		Lastname:     "Usuário",
		Email:        "vinicius@example.com",
		PasswordHash: "Senha@123",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestGenerateStrongPassword_SomenteDiretor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := novoService(userRepo)

	gestor := usuarioAtivo(t, "Senha@123")
	gestor.Perfil = domain.PerfilGestor

	userRepo.EXPECT().GetUserByID(1).Return(gestor, nil)

	_, err := service.GenerateStrongPassword(1, 2)
	assert.ErrorIs(t, err, ErrNoAdminPrivileges)
}

func TestValidatePasswordStrength(t *testing.T) {
	service := novoService(nil)
	service.cfg.Auth.MinPasswordChars = 8

	tests := []struct {
		name    string
		senha   string
		wantErr bool
	}{
		{name: "senha forte", senha: "Abc@1234", wantErr: false},
		{name: "curta demais", senha: "Ab@1", wantErr: true},
		{name: "sem maiúscula", senha: "abc@1234", wantErr: true},
		{name: "sem número", senha: "Abcd@efg", wantErr: true},
		{name: "sem caractere especial", senha: "Abcd1234", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.senha)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso: diretor enxerga e administra tudo, gestor opera as
// importações e consultas do dia a dia.
const (
	PerfilDiretor = 1
	PerfilGestor  = 2
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	Perfil       int        `json:"perfil"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
	Email    *string `json:"email"`
	Active   *bool   `json:"active"`
	Perfil   *int    `json:"perfil"`
	Deleted  *bool   `json:"deleted"`
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserPerfil   int
	jwt.RegisteredClaims
}

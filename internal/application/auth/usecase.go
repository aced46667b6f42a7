package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-system/internal/application/dto"
	"github.com/jhoicas/inventario-system/internal/domain"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
	"github.com/jhoicas/inventario-system/internal/domain/repository"
	"github.com/jhoicas/inventario-system/pkg/jwt"
)

// JWTConfig configuración para generación y validación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
	Audience   string
}

func (c JWTConfig) toPkg() jwt.Config {
	return jwt.Config{Secret: c.Secret, Issuer: c.Issuer, Audience: c.Audience, ExpMinutes: c.ExpMinutes}
}

// AuthUseCase casos de uso de autenticación: registro, login y validación de token.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	jwtCfg     JWTConfig
	bcryptCost int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, bcryptCost: bcrypt.DefaultCost}
}

// WithBcryptCost ajusta el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.bcryptCost = cost
	return uc
}

// NormalizeEmail recorta espacios y pliega mayúsculas para comparar emails sin distinguir caso.
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

// Register crea un usuario activo, hashea el password con bcrypt y emite un token.
// Devuelve ErrEmailAlreadyExists / ErrUsernameAlreadyExists si ya existen (sin distinguir mayúsculas).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := NormalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)
	if email == "" || username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmpleado
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	exists, err := uc.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.issue(user)
}

// Login verifica email/password y emite un token.
// El password se verifica antes que el estado: un password incorrecto siempre es ErrInvalidCredentials,
// y solo con credenciales correctas se informa ErrUserInactive.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	return uc.issue(user)
}

// ValidateToken verifica firma, issuer, audience y expiración. No hay refresh ni revocación.
func (uc *AuthUseCase) ValidateToken(token string) bool {
	_, err := jwt.Parse(uc.jwtCfg.toPkg(), token)
	return err == nil
}

// Me devuelve el resumen del usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// HashPassword expuesto para el seeding del administrador inicial.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("auth: password vacío")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (uc *AuthUseCase) issue(user *entity.User) (*dto.AuthResponse, error) {
	token, exp, err := jwt.Generate(uc.jwtCfg.toPkg(), user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: exp,
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

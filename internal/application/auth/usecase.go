package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
	"github.com/jhoicas/tiendapyme-api/internal/domain/screen"
	"github.com/jhoicas/tiendapyme-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	storeRepo repository.StoreRepository
	tx        ports.TxRunner
	jwtCfg    JWTConfig
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, storeRepo repository.StoreRepository, tx ports.TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, storeRepo: storeRepo, tx: tx, jwtCfg: jwtCfg, now: time.Now}
}

// NormalizeEmail minúsculas y sin espacios; los emails se guardan así.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword bcrypt con costo por defecto.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Register crea el usuario sme y su tienda en una transacción y devuelve token + usuario.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y contraseña son obligatorios", domain.ErrInvalidInput)
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	name := strings.TrimSpace(in.Name)
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         entity.RoleSME,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	store := &entity.Store{
		ID:               uuid.New().String(),
		UserID:           user.ID,
		BusinessName:     entity.DefaultStoreName(name),
		OnboardingStatus: entity.OnboardingNotStarted,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	err = uc.tx.RunAuth(ctx, func(users repository.UserRepository, stores repository.StoreRepository) error {
		existing, err := users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return stores.Create(ctx, store)
	})
	if err != nil {
		return nil, err
	}
	return uc.issue(user, store.ID)
}

// Login verifica email/password, registra last_login y retorna token + usuario.
// Distingue ErrUserNotFound y ErrUnauthorized para el log; el handler responde igual a ambos.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive() {
		return nil, domain.ErrForbidden
	}
	storeID := ""
	if user.Role == entity.RoleSME {
		store, err := uc.storeRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if store != nil {
			storeID = store.ID
		}
	}
	if err := uc.userRepo.UpdateLastLogin(ctx, user.ID, uc.now()); err != nil {
		return nil, err
	}
	return uc.issue(user, storeID)
}

// Me perfil de la sesión con la pantalla derivada de rol y onboarding.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := &dto.MeResponse{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role}
	sess := screen.Session{Authenticated: true, Role: user.Role}
	store, err := uc.storeRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if store != nil {
		out.StoreID = store.ID
		out.BusinessName = store.BusinessName
		out.OnboardingStatus = string(store.OnboardingStatus)
		sess.Onboarding = store.OnboardingStatus
	}
	out.Screen = string(screen.Derive(sess))
	return out, nil
}

func (uc *AuthUseCase) issue(user *entity.User, storeID string) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.TTL, jwt.Identity{
		UserID:  user.ID,
		Email:   user.Email,
		StoreID: storeID,
		Role:    user.Role,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// EnsureSuperadmin crea la cuenta superadmin si el email no existe. No cambia una cuenta existente.
// Devuelve ErrConflict si el email ya pertenece a una cuenta sme.
func (uc *AuthUseCase) EnsureSuperadmin(ctx context.Context, name, email, password string) (created bool, err error) {
	email = NormalizeEmail(email)
	if email == "" || len(password) < 6 {
		return false, fmt.Errorf("%w: email y contraseña (mínimo 6) son obligatorios", domain.ErrInvalidInput)
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if existing.Role != entity.RoleSuperadmin {
			return false, fmt.Errorf("%w: %s es una cuenta de tienda", domain.ErrConflict, email)
		}
		return false, nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	now := uc.now()
	err = uc.userRepo.Create(ctx, &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Role:         entity.RoleSuperadmin,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return err == nil, err
}

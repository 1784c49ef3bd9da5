package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/screen"
)

// Session arma las entradas de la máquina de pantallas. userID vacío = sin sesión.
// Un usuario borrado después de emitir el token cuenta como sesión cerrada.
func (uc *AuthUseCase) Session(ctx context.Context, userID string) (screen.Session, error) {
	if userID == "" {
		return screen.Session{}, nil
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return screen.Session{}, err
	}
	if user == nil || !user.IsActive() {
		return screen.Session{}, nil
	}
	sess := screen.Session{Authenticated: true, Role: user.Role}
	store, err := uc.storeRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return screen.Session{}, err
	}
	if store != nil {
		sess.Onboarding = store.OnboardingStatus
	}
	return sess, nil
}

// Screen reconcilia la pantalla actual del cliente con la sesión.
func (uc *AuthUseCase) Screen(ctx context.Context, userID, current string) (*dto.ScreenResponse, error) {
	sess, err := uc.Session(ctx, userID)
	if err != nil {
		return nil, err
	}
	cur := screen.Parse(current)
	if current == "" {
		cur = screen.Derive(sess)
	}
	return &dto.ScreenResponse{Screen: string(screen.Reconcile(cur, sess))}, nil
}

// Navigate aplica una acción explícita de navegación.
func (uc *AuthUseCase) Navigate(ctx context.Context, userID string, in dto.NavigateRequest) (*dto.ScreenResponse, error) {
	sess, err := uc.Session(ctx, userID)
	if err != nil {
		return nil, err
	}
	next, err := screen.Navigate(screen.Parse(in.Current), screen.Action(in.Action), sess)
	if err != nil {
		var unknown screen.ErrUnknownAction
		if errors.As(err, &unknown) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
		}
		return nil, err
	}
	return &dto.ScreenResponse{Screen: string(next)}, nil
}

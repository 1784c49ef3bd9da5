// Package screen decide qué pantalla del panel corresponde a una sesión.
//
// Derive calcula la pantalla objetivo a partir de autenticación, rol y onboarding.
// Reconcile aplica la regla reactiva sobre la pantalla actual y Navigate resuelve
// las acciones explícitas del usuario mediante una tabla de despacho.
package screen

import (
	"fmt"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// Screen identificador de pantalla.
type Screen string

const (
	Landing         Screen = "landing"
	Login           Screen = "login"
	OnboardingStep1 Screen = "onboardingStep1"
	OnboardingStep2 Screen = "onboardingStep2"
	App             Screen = "app"
	Settings        Screen = "settings"
	Storefront      Screen = "storefront"
	Cart            Screen = "cart"
	OrdersDashboard Screen = "ordersDashboard"
	MarketingAI     Screen = "marketingAI"
	SuperadminPanel Screen = "superadminPanel"

	// Fallback pantalla de carga para valores desconocidos.
	Fallback Screen = "loading"
)

var known = map[Screen]bool{
	Landing: true, Login: true, OnboardingStep1: true, OnboardingStep2: true,
	App: true, Settings: true, Storefront: true, Cart: true,
	OrdersDashboard: true, MarketingAI: true, SuperadminPanel: true,
}

// authSensitive pantallas que se re-evalúan siempre que cambia la sesión.
var authSensitive = map[Screen]bool{
	Landing: true, Login: true, OnboardingStep1: true, OnboardingStep2: true, SuperadminPanel: true,
}

// postOnboarding pantallas a las que solo se llega por navegación explícita.
var postOnboarding = map[Screen]bool{
	Settings: true, Storefront: true, Cart: true, OrdersDashboard: true, MarketingAI: true,
}

// Parse convierte texto a Screen; desconocido → Fallback.
func Parse(s string) Screen {
	if known[Screen(s)] {
		return Screen(s)
	}
	return Fallback
}

// Session entradas de la derivación.
type Session struct {
	Authenticated bool
	Role          string
	Onboarding    entity.OnboardingStatus
}

// Derive devuelve la pantalla objetivo de la sesión.
func Derive(s Session) Screen {
	if !s.Authenticated {
		return Landing
	}
	if s.Role == entity.RoleSuperadmin {
		return SuperadminPanel
	}
	switch s.Onboarding {
	case entity.OnboardingNotStarted:
		return OnboardingStep1
	case entity.OnboardingBusinessInfoSubmitted:
		return OnboardingStep2
	}
	return App
}

// Reconcile aplica la regla reactiva sobre la pantalla actual.
// En login sin sesión no fuerza navegación. Las pantallas post-onboarding se conservan
// mientras el objetivo sea App.
func Reconcile(current Screen, s Session) Screen {
	if current == Login && !s.Authenticated {
		return Login
	}
	target := Derive(s)
	if target == App && postOnboarding[current] {
		return current
	}
	if current != target || authSensitive[current] {
		return target
	}
	return current
}

// Action acción de navegación explícita.
type Action string

const (
	ToLogin       Action = "toLogin"
	ToSettings    Action = "toSettings"
	ToStorefront  Action = "toStorefront"
	ToCart        Action = "toCart"
	ToApp         Action = "toApp"
	ToOrders      Action = "toOrders"
	ToMarketingAI Action = "toMarketingAI"
)

var dispatch = map[Action]func(Session) Screen{
	ToLogin:       func(Session) Screen { return Login },
	ToSettings:    func(Session) Screen { return Settings },
	ToStorefront:  func(Session) Screen { return Storefront },
	ToCart:        func(Session) Screen { return Cart },
	ToOrders:      func(Session) Screen { return OrdersDashboard },
	ToMarketingAI: func(Session) Screen { return MarketingAI },
	ToApp: func(s Session) Screen {
		if s.Role == entity.RoleSuperadmin {
			return SuperadminPanel
		}
		return App
	},
}

// ErrUnknownAction acción no registrada en la tabla.
type ErrUnknownAction struct{ Action Action }

func (e ErrUnknownAction) Error() string {
	return fmt.Sprintf("acción de navegación desconocida: %q", string(e.Action))
}

// Navigate resuelve la acción y reconcilia el resultado con la sesión,
// de modo que una sesión sin onboarding completo no salta a pantallas internas.
func Navigate(current Screen, a Action, s Session) (Screen, error) {
	next, ok := dispatch[a]
	if !ok {
		return current, ErrUnknownAction{Action: a}
	}
	return Reconcile(next(s), s), nil
}

package dto

// ScreenResponse pantalla resultante.
type ScreenResponse struct {
	Screen string `json:"screen"`
}

// NavigateRequest navegación explícita desde la pantalla actual.
type NavigateRequest struct {
	Current string `json:"current"`
	Action  string `json:"action" validate:"required"`
}

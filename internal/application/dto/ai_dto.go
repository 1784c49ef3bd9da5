package dto

// GenerateDescriptionRequest datos del producto para redactar la descripción.
type GenerateDescriptionRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Category string `json:"category" validate:"omitempty,max=100"`
	Price    string `json:"price" validate:"omitempty,max=32"`
	Idea     string `json:"idea" validate:"omitempty,max=2000"`
}

// GenerateDescriptionResponse descripción generada.
type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}

// SuggestCategoriesRequest nombre e idea del producto.
type SuggestCategoriesRequest struct {
	ProductName string `json:"productName" validate:"required,max=200"`
	ProductIdea string `json:"productIdea" validate:"omitempty,max=2000"`
}

// SuggestCategoriesResponse categorías sugeridas, siempre de la lista predefinida.
type SuggestCategoriesResponse struct {
	Categories []string `json:"categories"`
}

// MarketingContentRequest instrucción libre para el asistente de marketing.
type MarketingContentRequest struct {
	Prompt string `json:"prompt" validate:"required,max=4000"`
}

// MarketingContentResponse texto generado.
type MarketingContentResponse struct {
	Content string `json:"content"`
}

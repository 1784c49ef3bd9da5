package dto

// ProductRequest entrada de creación y de PUT completo.
type ProductRequest struct {
	Name                 string   `json:"name" validate:"required,min=1,max=200"`
	Category             string   `json:"category" validate:"omitempty,max=100"`
	Price                string   `json:"price" validate:"omitempty,max=32"`
	Idea                 string   `json:"idea" validate:"omitempty,max=2000"`
	GeneratedDescription string   `json:"generatedDescription"`
	ImagePreviewURLs     []string `json:"imagePreviewUrls" validate:"omitempty,max=10"`
	Status               string   `json:"status" validate:"omitempty,oneof=Activo Inactivo Agotado"`
	Stock                *int     `json:"stock" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto. CreatedAt en milisegundos Unix.
type ProductResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	Price                string   `json:"price"`
	Idea                 string   `json:"idea"`
	GeneratedDescription string   `json:"generatedDescription"`
	ImagePreviewURLs     []string `json:"imagePreviewUrls"`
	Status               string   `json:"status"`
	Stock                *int     `json:"stock,omitempty"`
	CreatedAt            int64    `json:"createdAt"`
}

// ProductListQuery filtros de catálogo en query string.
type ProductListQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Status   string `query:"status"`
	Sort     string `query:"sort"`
}

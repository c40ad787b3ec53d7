package dto

import "time"

// CategoryForm campos del formulario de categoría (alta y edición).
type CategoryForm struct {
	Name string `json:"name" form:"name" validate:"required,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package dto

// CategoryRequest entrada para crear o actualizar una categoría.
type CategoryRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

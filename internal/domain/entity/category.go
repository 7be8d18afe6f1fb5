package entity

// Category agrupa productos. El nombre se guarda normalizado (minúsculas, sin espacios sobrantes).
type Category struct {
	ID          int64
	Name        string
	Description string
}

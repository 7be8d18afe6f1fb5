package entity

// Niveles de acceso (1 es el más privilegiado).
const (
	AccessAdmin    = 1
	AccessManager  = 2
	AccessEmployee = 3
)

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt; nunca se devuelve en respuestas
	AccessType   int
}

// ValidAccessType indica si n es un nivel de acceso conocido.
func ValidAccessType(n int) bool {
	return n >= AccessAdmin && n <= AccessEmployee
}

package dto

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	AccessType *int64 `json:"accessType"`
}

// UpdateUserRequest entrada para actualizar un usuario. Password vacío conserva el actual.
type UpdateUserRequest struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	AccessType *int64 `json:"accessType"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	AccessType int    `json:"accessType"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT y datos del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

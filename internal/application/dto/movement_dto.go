package dto

import "time"

// MovementRequest entrada para crear o actualizar un movimiento. UserID por defecto es el usuario del token.
type MovementRequest struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	Quantity  int64  `json:"quantity"`
	ProductID int64  `json:"productId"`
	UserID    int64  `json:"userId"`
}

// ProductRef producto embebido en un movimiento.
type ProductRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID         int64        `json:"id"`
	Data       time.Time    `json:"data"`
	Tipo       string       `json:"tipo"`
	Usuario    string       `json:"usuario"`
	Quantidade int64        `json:"quantidade"`
	Produtos   []ProductRef `json:"produtos"`
}

package entity

import "time"

// MovementTypeEntrada tipo del movimiento generado al crear un lote.
const MovementTypeEntrada = "Entrada"

// StockMovement movimiento de stock (entrada, saída u otro tipo libre).
type StockMovement struct {
	ID        int64
	Date      time.Time
	Type      string
	Quantity  int64
	ProductID int64 // producto principal
	UserID    int64
	UserName  string // solo en lecturas
}

// MovementProduct cantidad de un producto dentro de un movimiento.
type MovementProduct struct {
	MovementID  int64
	ProductID   int64
	ProductName string // solo en lecturas
	Quantity    int64
}

// MovementDetail movimiento con sus productos.
type MovementDetail struct {
	StockMovement
	Products []MovementProduct
}

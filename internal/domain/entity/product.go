package entity

// Product representa un producto del inventario.
// UnitPriceCents es el precio unitario en centavos; CategoryName solo se completa en lecturas.
type Product struct {
	ID             int64
	Name           string
	Description    string
	UnitPriceCents int64
	CategoryID     int64
	CategoryName   string
}

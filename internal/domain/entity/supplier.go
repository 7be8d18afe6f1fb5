package entity

// Supplier representa un fornecedor. Phone y CNPJ se guardan solo con dígitos.
type Supplier struct {
	ID      int64
	Name    string
	Phone   string
	Address string
	CNPJ    string
}

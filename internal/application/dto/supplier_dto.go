package dto

// SupplierRequest entrada para crear o actualizar un fornecedor.
type SupplierRequest struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Telephone string `json:"telephone"`
	Address   string `json:"address"`
	CNPJ      string `json:"cnpj"`
}

// SupplierResponse salida de un fornecedor.
type SupplierResponse struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
	CNPJ     string `json:"cnpj"`
}

// SupplierListQuery filtros de GET /suppliers.
type SupplierListQuery struct {
	Name string `query:"name"`
	CNPJ string `query:"cnpj"`
	PageRequest
}

package validation

// Mensajes devueltos al cliente (pt-BR).
const (
	MsgUserNameRequired       = "O nome é obrigatório."
	MsgUserEmailRequired      = "O e-mail é obrigatório."
	MsgUserPasswordRequired   = "A senha é obrigatória."
	MsgUserAccessTypeRequired = "O tipo de acesso deve ser 1, 2 ou 3."

	MsgSupplierNameRequired      = "O nome deve ter no mínimo 3 caracteres."
	MsgSupplierNameTooBig        = "O nome deve ter no máximo 50 caracteres."
	MsgSupplierNameInvalid       = "O nome contém caracteres inválidos."
	MsgSupplierTelephoneRequired = "O telefone é obrigatório."
	MsgSupplierTelephoneSize     = "O telefone deve ter 10 ou 11 dígitos."
	MsgSupplierAddressRequired   = "O endereço deve ter no mínimo 5 caracteres."
	MsgSupplierCNPJRequired      = "O CNPJ é obrigatório."

	MsgProductNameRequired        = "O nome deve ter no mínimo 3 caracteres."
	MsgProductNameTooBig          = "O nome deve ter no máximo 40 caracteres."
	MsgProductNameInvalid         = "O nome contém caracteres inválidos."
	MsgProductDescriptionRequired = "A descrição deve ter no mínimo 10 caracteres."
	MsgProductDescriptionTooBig   = "A descrição deve ter no máximo 60 caracteres."
	MsgProductUnitPriceInvalid    = "O preço unitário deve ser maior que zero."
	MsgProductCategoryIDRequired  = "A categoria é obrigatória."

	MsgPriceTooBig = "O preço excede o valor máximo permitido."

	MsgCategoryNameRequired        = "O nome deve ter no mínimo 3 caracteres."
	MsgCategoryNameTooBig          = "O nome deve ter no máximo 20 caracteres."
	MsgCategoryNameInvalid         = "O nome contém caracteres inválidos."
	MsgCategoryDescriptionRequired = "A descrição deve ter no mínimo 10 caracteres."
	MsgCategoryDescriptionTooBig   = "A descrição deve ter no máximo 50 caracteres."

	MsgBatchPriceRequired      = "O preço é obrigatório."
	MsgBatchPriceNegative      = "O preço não pode ser negativo."
	MsgBatchPriceMinCents      = "O preço deve ser de no mínimo 0,01."
	MsgBatchQuantityNotNull    = "A quantidade é obrigatória."
	MsgBatchInvalidDate        = "Data de validade inválida."
	MsgBatchDateOnPast         = "A data de validade não pode estar no passado."
	MsgBatchSupplierIDRequired = "O fornecedor é obrigatório."
	MsgBatchProductsInvalid    = "Informe ao menos um produto com quantidade maior que zero."

	MsgMovementDateInvalid       = "Data inválida."
	MsgMovementDateFuture        = "A data não pode estar no futuro."
	MsgMovementTypeRequired      = "O tipo é obrigatório."
	MsgMovementQuantityRequired  = "A quantidade é obrigatória."
	MsgMovementQuantityInvalid   = "A quantidade deve ser maior que zero."
	MsgMovementProductIDRequired = "O produto é obrigatório."
	MsgMovementUserIDRequired    = "O usuário é obrigatório."
)

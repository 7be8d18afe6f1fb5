package validation

import (
	"regexp"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// Nombres: letras (incluye acentuadas), dígitos y espacios.
var namePattern = regexp.MustCompile(`^[A-Za-zÀ-ÿ0-9\s]+$`)

// Now reloj usado por las reglas de fecha.
var Now = time.Now

// Claves de campo compartidas por los payloads.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldAccessType  = "accessType"
	FieldTelephone   = "telephone"
	FieldAddress     = "address"
	FieldCNPJ        = "cnpj"
	FieldUnitPrice   = "unitPrice"
	FieldCategoryID  = "categoryId"
	FieldPrice       = "price"
	FieldQuantity    = "quantity"
	FieldValidity    = "validity"
	FieldSupplierID  = "supplierId"
	FieldProducts    = "products"
	FieldDate        = "date"
	FieldType        = "type"
	FieldProductID   = "productId"
	FieldUserID      = "userId"
)

// UserCreate reglas para crear usuario.
func UserCreate() RuleSet {
	rs := UserUpdate()
	rs[FieldPassword] = []Rule{Required(MsgUserPasswordRequired)}
	return rs
}

// UserUpdate reglas para actualizar usuario (la contraseña es opcional).
func UserUpdate() RuleSet {
	return RuleSet{
		FieldName:       {Required(MsgUserNameRequired)},
		FieldEmail:      {Required(MsgUserEmailRequired)},
		FieldAccessType: {OneOf(MsgUserAccessTypeRequired, entity.AccessAdmin, entity.AccessManager, entity.AccessEmployee)},
	}
}

// Supplier reglas de fornecedor (create y update).
func Supplier() RuleSet {
	return RuleSet{
		FieldName: {
			MinLen(3, MsgSupplierNameRequired),
			MaxLen(50, MsgSupplierNameTooBig),
			Pattern(namePattern, MsgSupplierNameInvalid),
		},
		FieldTelephone: {
			Required(MsgSupplierTelephoneRequired),
			DigitsBetween(10, 11, MsgSupplierTelephoneSize),
		},
		FieldAddress: {MinLen(5, MsgSupplierAddressRequired)},
		FieldCNPJ:    {Required(MsgSupplierCNPJRequired)},
	}
}

// Product reglas de producto (create y update).
func Product() RuleSet {
	return RuleSet{
		FieldName: {
			MinLen(3, MsgProductNameRequired),
			MaxLen(40, MsgProductNameTooBig),
			Pattern(namePattern, MsgProductNameInvalid),
		},
		FieldDescription: {
			MinLen(10, MsgProductDescriptionRequired),
			MaxLen(60, MsgProductDescriptionTooBig),
		},
		FieldUnitPrice: {
			Positive(MsgProductUnitPriceInvalid),
			Cents(1, MsgProductUnitPriceInvalid, MsgPriceTooBig),
		},
		FieldCategoryID: {Positive(MsgProductCategoryIDRequired)},
	}
}

// Category reglas de categoría (create y update).
func Category() RuleSet {
	return RuleSet{
		FieldName: {
			MinLen(3, MsgCategoryNameRequired),
			MaxLen(20, MsgCategoryNameTooBig),
			Pattern(namePattern, MsgCategoryNameInvalid),
		},
		FieldDescription: {
			MinLen(10, MsgCategoryDescriptionRequired),
			MaxLen(50, MsgCategoryDescriptionTooBig),
		},
	}
}

// Batch reglas de lote. withProducts agrega la lista de productos (solo en create).
func Batch(withProducts bool) RuleSet {
	rs := RuleSet{
		FieldPrice: {
			Required(MsgBatchPriceRequired),
			NotNegative(MsgBatchPriceNegative),
			Cents(1, MsgBatchPriceMinCents, MsgPriceTooBig),
		},
		FieldQuantity: {Required(MsgBatchQuantityNotNull)},
		FieldValidity: {
			ValidDate(MsgBatchInvalidDate),
			NotPast(now, MsgBatchDateOnPast),
		},
		FieldSupplierID: {Positive(MsgBatchSupplierIDRequired)},
	}
	if withProducts {
		rs[FieldProducts] = []Rule{Each(MsgBatchProductsInvalid, func(it entity.BatchItem) bool {
			return it.ProductID > 0 && it.Quantity > 0
		})}
	}
	return rs
}

// StockMovement reglas de movimiento (create y update).
func StockMovement() RuleSet {
	return RuleSet{
		FieldDate: {
			ValidDate(MsgMovementDateInvalid),
			NotFuture(now, MsgMovementDateFuture),
		},
		FieldType: {Required(MsgMovementTypeRequired)},
		FieldQuantity: {
			Required(MsgMovementQuantityRequired),
			Positive(MsgMovementQuantityInvalid),
		},
		FieldProductID: {Positive(MsgMovementProductIDRequired)},
		FieldUserID:    {Positive(MsgMovementUserIDRequired)},
	}
}

func now() time.Time { return Now() }

package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/domain/validation"
	"github.com/jhoicas/estoque-api/pkg/cnpj"
	"github.com/jhoicas/estoque-api/pkg/normalize"
)

// Mensajes de fornecedor.
const (
	MsgSupplierNotFound          = "Fornecedor não encontrado."
	MsgSupplierDuplicateOnCreate = "Fornecedor com esse nome ja existe."
	MsgSupplierDuplicateOnUpdate = "Já existe um fornecedor com esse nome."
	MsgSupplierInvalidCNPJ       = "CNPJ inválido."
	MsgSupplierDuplicateCNPJ     = "CNPJ já cadastrado."
	MsgSupplierDuplicatePhone    = "Telefone já cadastrado."
	MsgSupplierReferenced        = "Não é possível excluir o fornecedor, pois existem lotes associados a ele."
)

// SupplierUseCase casos de uso CRUD para fornecedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List lista fornecedores filtrando por nombre y CNPJ (coincidencia parcial).
func (uc *SupplierUseCase) List(ctx context.Context, q dto.SupplierListQuery) (*dto.PageResult[dto.SupplierResponse], error) {
	q.Normalize()
	list, total, err := uc.repo.List(ctx, repository.SupplierFilter{
		Name: q.Name,
		CNPJ: normalize.Digits(q.CNPJ),
		Page: repository.Page{Limit: q.PageSize, Offset: q.Offset()},
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSupplierResponse(s))
	}
	res := dto.NewPageResult(out, total, q.PageRequest)
	return &res, nil
}

// GetByID obtiene un fornecedor; NotFoundError si no existe.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toSupplierResponse(s)
	return &out, nil
}

// Create reglas → normalización → nombre único → CNPJ válido → CNPJ único → teléfono único.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.prepare(ctx, 0, in, MsgSupplierDuplicateOnCreate)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, mapSupplierDuplicate(err, MsgSupplierDuplicateOnCreate)
	}
	out := toSupplierResponse(s)
	return &out, nil
}

// Update reemplaza los datos del fornecedor; las verificaciones de unicidad excluyen al propio registro.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.SupplierRequest) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	s, err := uc.prepare(ctx, id, in, MsgSupplierDuplicateOnUpdate)
	if err != nil {
		return err
	}
	return mapSupplierDuplicate(uc.repo.Update(ctx, s), MsgSupplierDuplicateOnUpdate)
}

// Delete elimina el fornecedor si ningún lote lo referencia.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	n, err := uc.repo.CountBatches(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.NewGeneric(MsgSupplierReferenced)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrReferenced) {
			return domain.NewGeneric(MsgSupplierReferenced)
		}
		return err
	}
	return nil
}

func (uc *SupplierUseCase) prepare(ctx context.Context, id int64, in dto.SupplierRequest, dupNameMsg string) (*entity.Supplier, error) {
	data := validation.Data{
		validation.FieldName:      in.Name,
		validation.FieldTelephone: in.Telephone,
		validation.FieldAddress:   in.Address,
		validation.FieldCNPJ:      in.CNPJ,
	}
	if err := validation.Check(ctx, data, validation.Supplier()); err != nil {
		return nil, err
	}
	s := &entity.Supplier{
		ID:      id,
		Name:    normalize.Name(in.Name),
		Phone:   normalize.Digits(in.Telephone),
		Address: in.Address,
		CNPJ:    cnpj.Normalize(in.CNPJ),
	}

	byName, err := uc.repo.GetByName(ctx, s.Name)
	if err != nil {
		return nil, err
	}
	if byName != nil && byName.ID != id {
		return nil, domain.NewGeneric(dupNameMsg)
	}
	if !cnpj.IsValid(s.CNPJ) {
		return nil, domain.NewGeneric(MsgSupplierInvalidCNPJ)
	}
	byCNPJ, err := uc.repo.GetByCNPJ(ctx, s.CNPJ)
	if err != nil {
		return nil, err
	}
	if byCNPJ != nil && byCNPJ.ID != id {
		return nil, domain.NewGeneric(MsgSupplierDuplicateCNPJ)
	}
	byPhone, err := uc.repo.GetByPhone(ctx, s.Phone)
	if err != nil {
		return nil, err
	}
	if byPhone != nil && byPhone.ID != id {
		return nil, domain.NewGeneric(MsgSupplierDuplicatePhone)
	}
	return s, nil
}

func (uc *SupplierUseCase) find(ctx context.Context, id int64) (*entity.Supplier, error) {
	if id <= 0 {
		return nil, domain.NewNotFound(MsgSupplierNotFound)
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NewNotFound(MsgSupplierNotFound)
	}
	return s, nil
}

// mapSupplierDuplicate traduce una violación de unicidad que escapó a las verificaciones previas
// (escrituras concurrentes) al mensaje del campo repetido.
func mapSupplierDuplicate(err error, nameMsg string) error {
	if !errors.Is(err, domain.ErrDuplicate) {
		return err
	}
	switch domain.ConstraintField(err) {
	case validation.FieldName:
		return domain.NewGeneric(nameMsg)
	case validation.FieldTelephone:
		return domain.NewGeneric(MsgSupplierDuplicatePhone)
	default:
		return domain.NewGeneric(MsgSupplierDuplicateCNPJ)
	}
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{ID: s.ID, Nome: s.Name, Telefone: s.Phone, Endereco: s.Address, CNPJ: s.CNPJ}
}

package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/domain/validation"
	"github.com/jhoicas/estoque-api/pkg/money"
	"github.com/jhoicas/estoque-api/pkg/normalize"
)

// Mensajes de producto.
const (
	MsgProductNotFound   = "Produto não encontrado."
	MsgProductDuplicate  = "Produto com esse nome ja existe."
	MsgProductReferenced = "Não é possível excluir o produto, pois existem lotes ou movimentações associados a ele."
)

// ProductUseCase casos de uso CRUD para productos. El precio unitario se guarda en centavos.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// List lista productos con filtros por nombre y nombre de categoría, paginado.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery) (*dto.PageResult[dto.ProductResponse], error) {
	q.Normalize()
	list, total, err := uc.repo.List(ctx, repository.ProductFilter{
		Name:     q.Name,
		Category: q.Category,
		Page:     repository.Page{Limit: q.PageSize, Offset: q.Offset()},
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	res := dto.NewPageResult(out, total, q.PageRequest)
	return &res, nil
}

// GetByID obtiene un producto; NotFoundError si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// ListBySupplier productos distintos que aparecen en lotes del fornecedor.
func (uc *ProductUseCase) ListBySupplier(ctx context.Context, supplierID int64) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Create valida, verifica nombre único y categoría existente, y persiste.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.prepare(ctx, 0, in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, uc.mapWriteErr(err)
	}
	out := toProductResponse(p)
	return &out, nil
}

// Update reemplaza todos los campos del producto.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	p, err := uc.prepare(ctx, id, in)
	if err != nil {
		return err
	}
	return uc.mapWriteErr(uc.repo.Update(ctx, p))
}

// Delete elimina el producto; GenericError si lotes o movimientos lo referencian.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrReferenced) {
			return domain.NewGeneric(MsgProductReferenced)
		}
		return err
	}
	return nil
}

func (uc *ProductUseCase) prepare(ctx context.Context, id int64, in dto.ProductRequest) (*entity.Product, error) {
	data := validation.Data{
		validation.FieldName:        in.Name,
		validation.FieldDescription: in.Description,
		validation.FieldUnitPrice:   in.UnitPrice,
		validation.FieldCategoryID:  in.CategoryID,
	}
	if err := validation.Check(ctx, data, validation.Product()); err != nil {
		return nil, err
	}
	cents, err := money.ToCents(in.UnitPrice)
	if err != nil {
		return nil, domain.NewValidationError(map[string]string{validation.FieldUnitPrice: validation.MsgPriceTooBig})
	}
	p := &entity.Product{
		ID:             id,
		Name:           normalize.Name(in.Name),
		Description:    in.Description,
		UnitPriceCents: cents,
		CategoryID:     in.CategoryID,
	}
	existing, err := uc.repo.GetByName(ctx, p.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, domain.NewGeneric(MsgProductDuplicate)
	}
	cat, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.NewNotFound(MsgCategoryNotFound)
	}
	p.CategoryName = cat.Name
	return p, nil
}

func (uc *ProductUseCase) mapWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDuplicate):
		return domain.NewGeneric(MsgProductDuplicate)
	case errors.Is(err, domain.ErrForeignKey):
		return domain.NewNotFound(MsgCategoryNotFound)
	}
	return err
}

func (uc *ProductUseCase) find(ctx context.Context, id int64) (*entity.Product, error) {
	if id <= 0 {
		return nil, domain.NewNotFound(MsgProductNotFound)
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFound(MsgProductNotFound)
	}
	return p, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:            p.ID,
		Nome:          p.Name,
		Descricao:     p.Description,
		PrecoUnitario: money.FromCents(p.UnitPriceCents),
		CategoriaID:   p.CategoryID,
	}
	if p.CategoryName != "" {
		out.Categoria = &dto.CategoryRef{ID: p.CategoryID, Nome: p.CategoryName}
	}
	return out
}

package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/domain/validation"
	"github.com/jhoicas/estoque-api/pkg/normalize"
)

// Mensajes de categoría.
const (
	MsgCategoryNotFound   = "Categoria não encontrada."
	MsgCategoryDuplicate  = "Categoria com esse nome ja existe."
	MsgCategoryReferenced = "Não é possível excluir a categoria, pois existem produtos associados a ela."
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	products repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, products: products}
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// GetByID obtiene una categoría; NotFoundError si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// Create valida, normaliza el nombre y persiste la categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := validation.Check(ctx, categoryData(in), validation.Category()); err != nil {
		return nil, err
	}
	c := &entity.Category{Name: normalize.Name(in.Name), Description: in.Description}
	if err := uc.ensureUniqueName(ctx, c.Name, 0); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewGeneric(MsgCategoryDuplicate)
		}
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// Update reemplaza nombre y descripción. La existencia se verifica antes que las reglas.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := validation.Check(ctx, categoryData(in), validation.Category()); err != nil {
		return err
	}
	c := &entity.Category{ID: id, Name: normalize.Name(in.Name), Description: in.Description}
	if err := uc.ensureUniqueName(ctx, c.Name, id); err != nil {
		return err
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.NewGeneric(MsgCategoryDuplicate)
		}
		return err
	}
	return nil
}

// Delete elimina la categoría si ningún producto la referencia.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	n, err := uc.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.NewGeneric(MsgCategoryReferenced)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrReferenced) {
			return domain.NewGeneric(MsgCategoryReferenced)
		}
		return err
	}
	return nil
}

func (uc *CategoryUseCase) find(ctx context.Context, id int64) (*entity.Category, error) {
	if id <= 0 {
		return nil, domain.NewNotFound(MsgCategoryNotFound)
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFound(MsgCategoryNotFound)
	}
	return c, nil
}

func (uc *CategoryUseCase) ensureUniqueName(ctx context.Context, name string, selfID int64) error {
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.NewGeneric(MsgCategoryDuplicate)
	}
	return nil
}

func categoryData(in dto.CategoryRequest) validation.Data {
	return validation.Data{
		validation.FieldName:        in.Name,
		validation.FieldDescription: in.Description,
	}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Nome: c.Name, Descricao: c.Description}
}

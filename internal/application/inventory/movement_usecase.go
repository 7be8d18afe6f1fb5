package inventory

import (
	"context"
	"errors"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/domain/validation"
)

// Mensajes de movimiento.
const (
	MsgMovementNotFound       = "Movimentação não encontrada."
	MsgMovementProductMissing = "Produto não encontrado."
	MsgMovementUserMissing    = "Usuário não encontrado."
	MsgMovementRemovedSuccess = "Movimentação removida com sucesso."
)

// MovementUseCase casos de uso de movimientos de stock. Cada escritura corre en una transacción
// que incluye el movimiento y su fila de producto.
type MovementUseCase struct {
	txRunner  TxRunner
	movements repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movements repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movements: movements}
}

// List lista movimientos paginado, con nombre del usuario y productos.
func (uc *MovementUseCase) List(ctx context.Context, p dto.PageRequest) (*dto.PageResult[dto.MovementResponse], error) {
	p.Normalize()
	list, total, err := uc.movements.List(ctx, repository.Page{Limit: p.PageSize, Offset: p.Offset()})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	res := dto.NewPageResult(out, total, p)
	return &res, nil
}

// GetByID obtiene un movimiento; NotFoundError si no existe.
func (uc *MovementUseCase) GetByID(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	m, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toMovementResponse(m)
	return &out, nil
}

// Create registra un movimiento. Si UserID se omite se usa el usuario autenticado.
func (uc *MovementUseCase) Create(ctx context.Context, authUserID int64, in dto.MovementRequest) (*dto.MovementResponse, error) {
	mov, err := uc.prepare(ctx, 0, authUserID, in)
	if err != nil {
		return nil, err
	}
	items := []entity.BatchItem{{ProductID: mov.ProductID, Quantity: mov.Quantity}}
	err = uc.txRunner.Run(ctx, func(_ repository.BatchRepository, movRepo repository.StockMovementRepository) error {
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		return movRepo.AddProducts(ctx, mov.ID, items)
	})
	if err != nil {
		return nil, mapMovementErr(err)
	}
	return uc.GetByID(ctx, mov.ID)
}

// Update reemplaza los campos del movimiento y su fila de producto.
func (uc *MovementUseCase) Update(ctx context.Context, id, authUserID int64, in dto.MovementRequest) error {
	mov, err := uc.prepare(ctx, id, authUserID, in)
	if err != nil {
		return err
	}
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	items := []entity.BatchItem{{ProductID: mov.ProductID, Quantity: mov.Quantity}}
	err = uc.txRunner.Run(ctx, func(_ repository.BatchRepository, movRepo repository.StockMovementRepository) error {
		if err := movRepo.Update(ctx, mov); err != nil {
			return err
		}
		return movRepo.ReplaceProducts(ctx, id, items)
	})
	return mapMovementErr(err)
}

// Delete elimina el movimiento; sus filas de producto se borran en cascada.
func (uc *MovementUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.movements.Delete(ctx, id)
}

func (uc *MovementUseCase) prepare(ctx context.Context, id, authUserID int64, in dto.MovementRequest) (*entity.StockMovement, error) {
	userID := in.UserID
	if userID == 0 {
		userID = authUserID
	}
	data := validation.Data{
		validation.FieldDate:      in.Date,
		validation.FieldType:      in.Type,
		validation.FieldQuantity:  in.Quantity,
		validation.FieldProductID: in.ProductID,
		validation.FieldUserID:    userID,
	}
	if err := validation.Check(ctx, data, validation.StockMovement()); err != nil {
		return nil, err
	}
	date, _ := validation.ParseDate(in.Date)
	return &entity.StockMovement{
		ID:        id,
		Date:      date,
		Type:      in.Type,
		Quantity:  in.Quantity,
		ProductID: in.ProductID,
		UserID:    userID,
	}, nil
}

func (uc *MovementUseCase) find(ctx context.Context, id int64) (*entity.MovementDetail, error) {
	if id <= 0 {
		return nil, domain.NewNotFound(MsgMovementNotFound)
	}
	m, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NewNotFound(MsgMovementNotFound)
	}
	return m, nil
}

func mapMovementErr(err error) error {
	if !errors.Is(err, domain.ErrForeignKey) {
		return err
	}
	if domain.ConstraintField(err) == validation.FieldUserID {
		return domain.NewGeneric(MsgMovementUserMissing)
	}
	return domain.NewGeneric(MsgMovementProductMissing)
}

func toMovementResponse(m *entity.MovementDetail) dto.MovementResponse {
	out := dto.MovementResponse{
		ID:         m.ID,
		Data:       m.Date,
		Tipo:       m.Type,
		Usuario:    m.UserName,
		Quantidade: m.Quantity,
		Produtos:   make([]dto.ProductRef, 0, len(m.Products)),
	}
	for _, p := range m.Products {
		out.Produtos = append(out.Produtos, dto.ProductRef{ID: p.ProductID, Nome: p.ProductName})
	}
	return out
}

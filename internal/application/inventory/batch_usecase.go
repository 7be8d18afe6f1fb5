package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/domain/validation"
	"github.com/jhoicas/estoque-api/pkg/logger"
	"github.com/jhoicas/estoque-api/pkg/money"
)

// Mensajes de lote.
const (
	MsgBatchNotFound         = "Lote não encontrado."
	MsgBatchSupplierNotFound = "Fornecedor não encontrado."
	MsgBatchProductNotFound  = "Produto não encontrado."
	MsgBatchInvalidFilter    = "Data de validade inválida. Use o formato dd/mm/aaaa."
)

// BatchUseCase casos de uso de lotes. Create es atómico: lote, asociaciones y movimiento de entrada.
type BatchUseCase struct {
	txRunner  TxRunner
	batches   repository.BatchRepository
	suppliers repository.SupplierRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(
	txRunner TxRunner,
	batches repository.BatchRepository,
	suppliers repository.SupplierRepository,
	log *logger.Logger,
) *BatchUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &BatchUseCase{
		txRunner:  txRunner,
		batches:   batches,
		suppliers: suppliers,
		log:       log.Component("batch"),
		now:       time.Now,
	}
}

// Create valida la entrada, verifica el fornecedor y en una sola transacción crea el lote
// (cantidad = suma de los productos), sus asociaciones, un movimiento "Entrada" con la misma
// cantidad atribuido al primer producto y al usuario creador, y una fila por producto del movimiento.
func (uc *BatchUseCase) Create(ctx context.Context, userID int64, in dto.CreateBatchRequest) (*dto.CreatedBatchResponse, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	items := toItems(in.Products)
	total := entity.TotalQuantity(items)
	quantity := in.Quantity
	if quantity == 0 {
		quantity = total
	}
	data := validation.Data{
		validation.FieldPrice:      in.Price,
		validation.FieldQuantity:   quantity,
		validation.FieldValidity:   in.Validity,
		validation.FieldSupplierID: in.SupplierID,
		validation.FieldProducts:   items,
	}
	if err := validation.Check(ctx, data, validation.Batch(true)); err != nil {
		return nil, err
	}
	if err := uc.ensureSupplier(ctx, in.SupplierID); err != nil {
		return nil, err
	}
	cents, err := money.ToCents(in.Price)
	if err != nil {
		return nil, domain.NewValidationError(map[string]string{validation.FieldPrice: validation.MsgPriceTooBig})
	}
	validity, _ := validation.ParseDate(in.Validity)

	batch := &entity.Batch{
		PriceCents: cents,
		Quantity:   total,
		Validity:   validity,
		SupplierID: in.SupplierID,
	}
	mov := &entity.StockMovement{
		Date:      uc.now(),
		Type:      entity.MovementTypeEntrada,
		Quantity:  total,
		ProductID: items[0].ProductID,
		UserID:    userID,
	}
	err = uc.txRunner.Run(ctx, func(batchRepo repository.BatchRepository, movRepo repository.StockMovementRepository) error {
		if err := batchRepo.Create(ctx, batch); err != nil {
			return err
		}
		if err := batchRepo.AddProducts(ctx, batch.ID, items); err != nil {
			return err
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		return movRepo.AddProducts(ctx, mov.ID, items)
	})
	if err != nil {
		uc.log.Warn().Err(err).Int64("supplier_id", in.SupplierID).Msg("creación de lote revertida")
		if errors.Is(err, domain.ErrForeignKey) {
			return nil, domain.NewGeneric(MsgBatchProductNotFound)
		}
		return nil, err
	}
	uc.log.Info().
		Int64("batch_id", batch.ID).
		Int64("movement_id", mov.ID).
		Int64("quantity", total).
		Msg("lote creado")

	return &dto.CreatedBatchResponse{
		ID:           batch.ID,
		Preco:        money.FromCents(batch.PriceCents),
		Quantidade:   batch.Quantity,
		Validade:     batch.Validity,
		FornecedorID: batch.SupplierID,
		MovimentID:   mov.ID,
		MovimentType: mov.Type,
		MovimentDate: mov.Date,
	}, nil
}

// Update reemplaza precio, cantidad, vencimiento y fornecedor del lote (no toca asociaciones).
func (uc *BatchUseCase) Update(ctx context.Context, id int64, in dto.UpdateBatchRequest) error {
	data := validation.Data{
		validation.FieldPrice:      in.Price,
		validation.FieldQuantity:   in.Quantity,
		validation.FieldValidity:   in.Validity,
		validation.FieldSupplierID: in.SupplierID,
	}
	if err := validation.Check(ctx, data, validation.Batch(false)); err != nil {
		return err
	}
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := uc.ensureSupplier(ctx, in.SupplierID); err != nil {
		return err
	}
	cents, err := money.ToCents(in.Price)
	if err != nil {
		return domain.NewValidationError(map[string]string{validation.FieldPrice: validation.MsgPriceTooBig})
	}
	validity, _ := validation.ParseDate(in.Validity)
	err = uc.batches.Update(ctx, &entity.Batch{
		ID:         id,
		PriceCents: cents,
		Quantity:   in.Quantity,
		Validity:   validity,
		SupplierID: in.SupplierID,
	})
	if errors.Is(err, domain.ErrForeignKey) {
		return domain.NewGeneric(MsgBatchSupplierNotFound)
	}
	return err
}

// Delete elimina el lote; sus asociaciones se borran en cascada.
func (uc *BatchUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.batches.Delete(ctx, id)
}

// GetByID detalle del lote con nombre del fornecedor y productos.
func (uc *BatchUseCase) GetByID(ctx context.Context, id int64) (*dto.BatchDetailResponse, error) {
	b, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.BatchDetailResponse{
		ID:         b.ID,
		Preco:      money.FromCents(b.PriceCents),
		Quantidade: b.Quantity,
		Validade:   b.Validity,
		Fornecedor: b.SupplierName,
		Produtos:   make([]dto.BatchProductResponse, 0, len(b.Products)),
	}
	for _, p := range b.Products {
		out.Produtos = append(out.Produtos, dto.BatchProductResponse{Nome: p.ProductName, Quantidade: p.Quantity})
	}
	return out, nil
}

// List lista lotes filtrando por fornecedor y por día de vencimiento (dd/mm/aaaa, día local completo).
func (uc *BatchUseCase) List(ctx context.Context, q dto.BatchListQuery) (*dto.PageResult[dto.BatchResponse], error) {
	q.Normalize()
	f := repository.BatchFilter{
		SupplierID: q.SupplierID,
		Page:       repository.Page{Limit: q.PageSize, Offset: q.Offset()},
	}
	if v := strings.TrimSpace(q.Validity); v != "" {
		day, err := time.ParseInLocation("2/1/2006", v, time.Local)
		if err != nil {
			return nil, domain.NewGeneric(MsgBatchInvalidFilter)
		}
		end := day.AddDate(0, 0, 1).Add(-time.Millisecond)
		f.ValidityFrom, f.ValidityTo = &day, &end
	}
	list, total, err := uc.batches.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BatchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.BatchResponse{
			ID:         b.ID,
			Preco:      money.FromCents(b.PriceCents),
			Quantidade: b.Quantity,
			Validade:   b.Validity,
			Fornecedor: dto.SupplierRef{ID: b.SupplierID, Nome: b.SupplierName},
		})
	}
	res := dto.NewPageResult(out, total, q.PageRequest)
	return &res, nil
}

// El fornecedor inexistente es un error genérico (400), no NotFoundError.
func (uc *BatchUseCase) ensureSupplier(ctx context.Context, supplierID int64) error {
	s, err := uc.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.NewGeneric(MsgBatchSupplierNotFound)
	}
	return nil
}

func (uc *BatchUseCase) find(ctx context.Context, id int64) (*entity.BatchDetail, error) {
	if id <= 0 {
		return nil, domain.NewNotFound(MsgBatchNotFound)
	}
	b, err := uc.batches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.NewNotFound(MsgBatchNotFound)
	}
	return b, nil
}

func toItems(in []dto.BatchItemRequest) []entity.BatchItem {
	items := make([]entity.BatchItem, 0, len(in))
	for _, p := range in {
		items = append(items, entity.BatchItem{ProductID: p.ID, Quantity: p.Quantidade})
	}
	return items
}

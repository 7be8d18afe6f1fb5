package inventory_test

import (
	"context"
	"maps"
	"slices"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/domain/validation"
)

// memStore base en memoria compartida por los repos fake; txRunner la restaura si fn falla.
type memStore struct {
	nextID     int64
	users      map[int64]string
	products   map[int64]string
	suppliers  map[int64]*entity.Supplier
	batches    map[int64]entity.Batch
	batchItems map[int64][]entity.BatchItem
	movements  map[int64]entity.StockMovement
	movItems   map[int64][]entity.BatchItem
}

func newMemStore() *memStore {
	return &memStore{
		nextID:     100,
		users:      map[int64]string{1: "admin"},
		products:   map[int64]string{1: "suco", 2: "água"},
		suppliers:  map[int64]*entity.Supplier{1: {ID: 1, Name: "distribuidora"}},
		batches:    map[int64]entity.Batch{},
		batchItems: map[int64][]entity.BatchItem{},
		movements:  map[int64]entity.StockMovement{},
		movItems:   map[int64][]entity.BatchItem{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) snapshot() *memStore {
	return &memStore{
		nextID:     s.nextID,
		users:      s.users,
		products:   s.products,
		suppliers:  s.suppliers,
		batches:    maps.Clone(s.batches),
		batchItems: maps.Clone(s.batchItems),
		movements:  maps.Clone(s.movements),
		movItems:   maps.Clone(s.movItems),
	}
}

type fakeTxRunner struct {
	s         *memStore
	runs      int
	rollbacks int
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(repository.BatchRepository, repository.StockMovementRepository) error) error {
	r.runs++
	snap := r.s.snapshot()
	if err := fn(&fakeBatchRepo{s: r.s}, &fakeMovRepo{s: r.s}); err != nil {
		r.rollbacks++
		*r.s = *snap
		return err
	}
	return nil
}

type fakeSupplierRepo struct {
	repository.SupplierRepository
	s *memStore
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	return f.s.suppliers[id], nil
}

type fakeBatchRepo struct{ s *memStore }

func (f *fakeBatchRepo) Create(_ context.Context, b *entity.Batch) error {
	if _, ok := f.s.suppliers[b.SupplierID]; !ok {
		return domain.ErrForeignKey
	}
	b.ID = f.s.id()
	f.s.batches[b.ID] = *b
	return nil
}

// AddProducts inserta en orden y falla en el primer producto inexistente (escrituras parciales).
func (f *fakeBatchRepo) AddProducts(_ context.Context, batchID int64, items []entity.BatchItem) error {
	for _, it := range items {
		if _, ok := f.s.products[it.ProductID]; !ok {
			return domain.ErrForeignKey
		}
		f.s.batchItems[batchID] = append(slices.Clone(f.s.batchItems[batchID]), it)
	}
	return nil
}

func (f *fakeBatchRepo) GetByID(_ context.Context, id int64) (*entity.BatchDetail, error) {
	b, ok := f.s.batches[id]
	if !ok {
		return nil, nil
	}
	b.SupplierName = f.s.suppliers[b.SupplierID].Name
	d := &entity.BatchDetail{Batch: b}
	for _, it := range f.s.batchItems[id] {
		d.Products = append(d.Products, entity.BatchProduct{ProductID: it.ProductID, ProductName: f.s.products[it.ProductID], Quantity: it.Quantity})
	}
	return d, nil
}

func (f *fakeBatchRepo) Update(_ context.Context, b *entity.Batch) error {
	f.s.batches[b.ID] = *b
	return nil
}

func (f *fakeBatchRepo) Delete(_ context.Context, id int64) error {
	delete(f.s.batches, id)
	delete(f.s.batchItems, id)
	return nil
}

func (f *fakeBatchRepo) List(_ context.Context, bf repository.BatchFilter) ([]*entity.Batch, int, error) {
	var out []*entity.Batch
	for _, id := range slices.Sorted(maps.Keys(f.s.batches)) {
		b := f.s.batches[id]
		if bf.SupplierID != 0 && b.SupplierID != bf.SupplierID {
			continue
		}
		if bf.ValidityFrom != nil && (b.Validity.Before(*bf.ValidityFrom) || b.Validity.After(*bf.ValidityTo)) {
			continue
		}
		out = append(out, &b)
	}
	return out, len(out), nil
}

type fakeMovRepo struct{ s *memStore }

// checkRefs imita las claves foráneas de stock_movements: producto y usuario deben existir.
func (f *fakeMovRepo) checkRefs(m *entity.StockMovement) error {
	if _, ok := f.s.products[m.ProductID]; !ok {
		return &domain.ConstraintError{Field: validation.FieldProductID, Err: domain.ErrForeignKey}
	}
	if _, ok := f.s.users[m.UserID]; !ok {
		return &domain.ConstraintError{Field: validation.FieldUserID, Err: domain.ErrForeignKey}
	}
	return nil
}

func (f *fakeMovRepo) Create(_ context.Context, m *entity.StockMovement) error {
	if err := f.checkRefs(m); err != nil {
		return err
	}
	m.ID = f.s.id()
	f.s.movements[m.ID] = *m
	return nil
}

func (f *fakeMovRepo) AddProducts(_ context.Context, movementID int64, items []entity.BatchItem) error {
	for _, it := range items {
		if _, ok := f.s.products[it.ProductID]; !ok {
			return &domain.ConstraintError{Field: validation.FieldProductID, Err: domain.ErrForeignKey}
		}
		f.s.movItems[movementID] = append(slices.Clone(f.s.movItems[movementID]), it)
	}
	return nil
}

func (f *fakeMovRepo) ReplaceProducts(ctx context.Context, movementID int64, items []entity.BatchItem) error {
	delete(f.s.movItems, movementID)
	return f.AddProducts(ctx, movementID, items)
}

func (f *fakeMovRepo) GetByID(_ context.Context, id int64) (*entity.MovementDetail, error) {
	m, ok := f.s.movements[id]
	if !ok {
		return nil, nil
	}
	m.UserName = f.s.users[m.UserID]
	d := &entity.MovementDetail{StockMovement: m}
	for _, it := range f.s.movItems[id] {
		d.Products = append(d.Products, entity.MovementProduct{MovementID: id, ProductID: it.ProductID, ProductName: f.s.products[it.ProductID], Quantity: it.Quantity})
	}
	return d, nil
}

func (f *fakeMovRepo) Update(_ context.Context, m *entity.StockMovement) error {
	if err := f.checkRefs(m); err != nil {
		return err
	}
	f.s.movements[m.ID] = *m
	return nil
}

func (f *fakeMovRepo) Delete(_ context.Context, id int64) error {
	delete(f.s.movements, id)
	delete(f.s.movItems, id)
	return nil
}

func (f *fakeMovRepo) List(ctx context.Context, p repository.Page) ([]*entity.MovementDetail, int, error) {
	ids := slices.Sorted(maps.Keys(f.s.movements))
	total := len(ids)
	ids = ids[min(p.Offset, total):min(p.Offset+p.Limit, total)]
	out := make([]*entity.MovementDetail, 0, len(ids))
	for _, id := range ids {
		d, _ := f.GetByID(ctx, id)
		out = append(out, d)
	}
	return out, total, nil
}

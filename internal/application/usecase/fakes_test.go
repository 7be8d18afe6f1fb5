package usecase_test

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

type fakeCategoryRepo struct {
	nextID int64
	rows   map[int64]entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{rows: map[int64]entity.Category{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	f.nextID++
	c.ID = f.nextID
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range f.rows {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeCategoryRepo) List(context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, id := range slices.Sorted(maps.Keys(f.rows)) {
		c := f.rows[id]
		out = append(out, &c)
	}
	return out, nil
}

type fakeProductRepo struct {
	nextID     int64
	rows       map[int64]entity.Product
	referenced map[int64]bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{rows: map[int64]entity.Product{}, referenced: map[int64]bool{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.nextID++
	p.ID = f.nextID
	f.rows[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	for _, p := range f.rows {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.rows[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if f.referenced[id] {
		return domain.ErrReferenced
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, pf repository.ProductFilter) ([]*entity.Product, int, error) {
	var all []*entity.Product
	for _, id := range slices.Sorted(maps.Keys(f.rows)) {
		p := f.rows[id]
		if pf.Name != "" && !strings.Contains(p.Name, strings.ToLower(pf.Name)) {
			continue
		}
		all = append(all, &p)
	}
	total := len(all)
	return all[min(pf.Offset, total):min(pf.Offset+pf.Limit, total)], total, nil
}

func (f *fakeProductRepo) ListBySupplier(context.Context, int64) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) CountByCategory(_ context.Context, categoryID int64) (int, error) {
	n := 0
	for _, p := range f.rows {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

type fakeSupplierRepo struct {
	nextID  int64
	rows    map[int64]entity.Supplier
	batches map[int64]int
	// writeErr simula la constraint que falla cuando otra escritura gana la carrera.
	writeErr error
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{rows: map[int64]entity.Supplier{}, batches: map[int64]int{}}
}

func (f *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.nextID++
	s.ID = f.nextID
	f.rows[s.ID] = *s
	return nil
}

func (f *fakeSupplierRepo) find(match func(entity.Supplier) bool) *entity.Supplier {
	for _, s := range f.rows {
		if match(s) {
			return &s
		}
	}
	return nil
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	return f.find(func(s entity.Supplier) bool { return s.ID == id }), nil
}

func (f *fakeSupplierRepo) GetByName(_ context.Context, name string) (*entity.Supplier, error) {
	return f.find(func(s entity.Supplier) bool { return s.Name == name }), nil
}

func (f *fakeSupplierRepo) GetByCNPJ(_ context.Context, cnpj string) (*entity.Supplier, error) {
	return f.find(func(s entity.Supplier) bool { return s.CNPJ == cnpj }), nil
}

func (f *fakeSupplierRepo) GetByPhone(_ context.Context, phone string) (*entity.Supplier, error) {
	return f.find(func(s entity.Supplier) bool { return s.Phone == phone }), nil
}

func (f *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.rows[s.ID] = *s
	return nil
}

func (f *fakeSupplierRepo) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeSupplierRepo) List(_ context.Context, sf repository.SupplierFilter) ([]*entity.Supplier, int, error) {
	var out []*entity.Supplier
	for _, id := range slices.Sorted(maps.Keys(f.rows)) {
		s := f.rows[id]
		if sf.CNPJ != "" && !strings.Contains(s.CNPJ, sf.CNPJ) {
			continue
		}
		out = append(out, &s)
	}
	return out, len(out), nil
}

func (f *fakeSupplierRepo) CountBatches(_ context.Context, id int64) (int, error) {
	return f.batches[id], nil
}

type fakeUserRepo struct {
	nextID int64
	rows   map[int64]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{rows: map[int64]entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.nextID++
	u.ID = f.nextID
	f.rows[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.rows {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cur := f.rows[u.ID]
	if u.PasswordHash == "" {
		u.PasswordHash = cur.PasswordHash
	}
	f.rows[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, p repository.Page) ([]*entity.User, int, error) {
	var all []*entity.User
	for _, id := range slices.Sorted(maps.Keys(f.rows)) {
		u := f.rows[id]
		all = append(all, &u)
	}
	total := len(all)
	return all[min(p.Offset, total):min(p.Offset+p.Limit, total)], total, nil
}

// seed puebla una base vacía con datos de demostración: categorías, fornecedores, productos,
// un usuario por nivel de acceso y dos lotes creados por el flujo normal (con su movimiento de entrada).
//
// Uso: go run ./cmd/seed
// Si ya hay categorías registradas no hace nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estoque-api/pkg/cnpj"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

const seedPassword = "Estoque@123"

type seedSupplier struct {
	name, phone, address, cnpjBase string
}

type seedProduct struct {
	name, description, price string
	category                 int // índice en categories
}

var (
	categories = []dto.CategoryRequest{
		{Name: "Bebidas", Description: "Sucos refrigerantes e águas"},
		{Name: "Mercearia", Description: "Grãos massas e enlatados"},
		{Name: "Limpeza", Description: "Produtos de limpeza doméstica"},
	}
	suppliers = []seedSupplier{
		{"Distribuidora Norte", "1133334444", "Rua das Flores 120 São Paulo", "112223330001"},
		{"Atacado Central", "21988887777", "Avenida Brasil 5000 Rio de Janeiro", "457812340001"},
	}
	products = []seedProduct{
		{"Suco de Laranja 1L", "Suco integral sem adição de açúcar", "8.90", 0},
		{"Agua Mineral 500ml", "Água mineral sem gás garrafa pet", "2.50", 0},
		{"Arroz Tipo 1 5kg", "Arroz branco agulhinha tipo 1", "27.40", 1},
		{"Feijao Carioca 1kg", "Feijão carioca selecionado", "8.10", 1},
		{"Detergente 500ml", "Detergente líquido neutro para louças", "2.99", 2},
	}
	users = []struct {
		name, email string
		access      int64
	}{
		{"Administrador", "admin@estoque.local", entity.AccessAdmin},
		{"Gerente", "gerente@estoque.local", entity.AccessManager},
		{"Funcionario", "funcionario@estoque.local", entity.AccessEmployee},
	}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	userUC := usecase.NewUserUseCase(postgres.NewUserRepository(pool), cfg.Auth.BcryptCost)
	batchUC := inventory.NewBatchUseCase(postgres.NewTxRunner(pool), postgres.NewBatchRepository(pool), supplierRepo, log)

	existing, err := categoryUC.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("listar categorías")
	}
	if len(existing) > 0 {
		log.Info().Int("categorias", len(existing)).Msg("la base ya tiene datos, no se siembra nada")
		return
	}

	if err := seed(ctx, categoryUC, productUC, supplierUC, userUC, batchUC); err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().
		Int("categorias", len(categories)).
		Int("fornecedores", len(suppliers)).
		Int("produtos", len(products)).
		Int("usuarios", len(users)).
		Str("password", seedPassword).
		Msg("seed completo")
}

func seed(
	ctx context.Context,
	categoryUC *usecase.CategoryUseCase,
	productUC *usecase.ProductUseCase,
	supplierUC *usecase.SupplierUseCase,
	userUC *usecase.UserUseCase,
	batchUC *inventory.BatchUseCase,
) error {
	categoryIDs := make([]int64, 0, len(categories))
	for _, c := range categories {
		out, err := categoryUC.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("categoría %q: %w", c.Name, err)
		}
		categoryIDs = append(categoryIDs, out.ID)
	}

	supplierIDs := make([]int64, 0, len(suppliers))
	for _, s := range suppliers {
		doc, err := cnpj.Complete(s.cnpjBase)
		if err != nil {
			return err
		}
		out, err := supplierUC.Create(ctx, dto.SupplierRequest{Name: s.name, Telephone: s.phone, Address: s.address, CNPJ: doc})
		if err != nil {
			return fmt.Errorf("fornecedor %q: %w", s.name, err)
		}
		supplierIDs = append(supplierIDs, out.ID)
	}

	productIDs := make([]int64, 0, len(products))
	for _, p := range products {
		out, err := productUC.Create(ctx, dto.ProductRequest{
			Name:        p.name,
			Description: p.description,
			UnitPrice:   decimal.RequireFromString(p.price),
			CategoryID:  categoryIDs[p.category],
		})
		if err != nil {
			return fmt.Errorf("producto %q: %w", p.name, err)
		}
		productIDs = append(productIDs, out.ID)
	}

	var adminID int64
	for _, u := range users {
		access := u.access
		out, err := userUC.Create(ctx, dto.CreateUserRequest{Name: u.name, Email: u.email, Password: seedPassword, AccessType: &access})
		if err != nil {
			return fmt.Errorf("usuario %q: %w", u.email, err)
		}
		if u.access == entity.AccessAdmin {
			adminID = out.ID
		}
	}

	// Un lote que vence pronto (aparece en el dashboard) y otro a largo plazo.
	batches := []dto.CreateBatchRequest{
		{
			Price:      decimal.RequireFromString("350.00"),
			Validity:   time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
			SupplierID: supplierIDs[0],
			Products:   []dto.BatchItemRequest{{ID: productIDs[0], Quantidade: 12}, {ID: productIDs[1], Quantidade: 48}},
		},
		{
			Price:      decimal.RequireFromString("1280.50"),
			Validity:   time.Now().AddDate(1, 0, 0).Format("2006-01-02"),
			SupplierID: supplierIDs[1],
			Products: []dto.BatchItemRequest{
				{ID: productIDs[2], Quantidade: 30},
				{ID: productIDs[3], Quantidade: 15},
				{ID: productIDs[4], Quantidade: 60},
			},
		},
	}
	for i, b := range batches {
		if _, err := batchUC.Create(ctx, adminID, b); err != nil {
			return fmt.Errorf("lote %d: %w", i+1, err)
		}
	}
	return nil
}

// seed prepara una base nueva: usuario administrador, configuración de turnos y,
// opcionalmente, el cardápio desde un CSV.
//
// Uso: go run ./cmd/seed [-menu cardapio.csv] [-latin1]
//
// El CSV usa ";" como separador y la cabecera
// categoria;titulo_categoria;item;descripcion;precio
// (exportación típica de planillas en pt-BR, de ahí la opción ISO-8859-1).
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/postgres"
	"github.com/jhoicas/restaurante-api/pkg/config"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

func main() {
	menuPath := flag.String("menu", "", "CSV del cardápio (opcional)")
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed")

	if _, err := postgres.Migrate(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clock := ports.SystemClock(cfg.App.Location())
	userRepo := postgres.NewUserRepository(pool)

	email := auth.NormalizeEmail(envOr("SEED_ADMIN_EMAIL", "admin@restaurante.com.br"))
	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar administrador")
	}
	if existing == nil {
		password := os.Getenv("SEED_ADMIN_PASSWORD")
		if password == "" {
			log.Fatal().Msg("SEED_ADMIN_PASSWORD es obligatorio para crear el administrador")
		}
		users := usecase.NewUserUseCase(userRepo, cfg.Security.BcryptCost, clock)
		if _, err := users.Create(ctx, dto.CreateUserRequest{
			Name: "Administrador", Email: email, Password: password, Role: entity.RoleAdmin,
		}); err != nil {
			log.Fatal().Err(err).Msg("crear administrador")
		}
		log.Info().Str("email", email).Msg("administrador creado; cambie la contraseña tras el primer login")
	} else {
		log.Info().Str("email", email).Msg("administrador ya existe")
	}

	if err := usecase.NewShiftConfigUseCase(postgres.NewShiftConfigRepository(pool), clock).EnsureDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("configuración de turnos")
	}

	if *menuPath == "" {
		return
	}
	f, err := os.Open(*menuPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	rows, err := readMenuCSV(f, *latin1)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}
	menu := usecase.NewMenuUseCase(postgres.NewMenuCategoryRepository(pool), postgres.NewMenuItemRepository(pool), clock)
	cats, items, err := importMenu(ctx, menu, rows)
	if err != nil {
		log.Fatal().Err(err).Msg("importar cardápio")
	}
	log.Info().Int("categorias", cats).Int("items", items).Msg("cardápio importado")
}

// menuRow una línea del CSV.
type menuRow struct {
	Category     string
	CategoryName string
	Item         string
	Description  string
	Price        decimal.Decimal
}

// readMenuCSV lee el CSV (separador ";"); la primera línea es cabecera.
// Acepta precios con coma decimal ("45,90").
func readMenuCSV(r io.Reader, latin1 bool) ([]menuRow, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = 5
	cr.TrimLeadingSpace = true

	var rows []menuRow
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 1 {
			continue
		}
		price, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(rec[4]), ",", "."))
		if err != nil {
			return nil, fmt.Errorf("línea %d: precio %q inválido", line, rec[4])
		}
		rows = append(rows, menuRow{
			Category:     strings.TrimSpace(rec[0]),
			CategoryName: strings.TrimSpace(rec[1]),
			Item:         strings.TrimSpace(rec[2]),
			Description:  strings.TrimSpace(rec[3]),
			Price:        price,
		})
	}
	return rows, nil
}

type menuImporter interface {
	ListCategories(ctx context.Context) ([]dto.MenuCategoryResponse, error)
	CreateCategory(ctx context.Context, in dto.CreateMenuCategoryRequest) (*dto.MenuCategoryResponse, error)
	CreateItem(ctx context.Context, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error)
}

// importMenu crea las categorías que falten (en orden de aparición) y todos los ítems.
func importMenu(ctx context.Context, menu menuImporter, rows []menuRow) (categories, items int, err error) {
	existing, err := menu.ListCategories(ctx)
	if err != nil {
		return 0, 0, err
	}
	ids := make(map[string]string, len(existing))
	for _, c := range existing {
		ids[c.Name] = c.ID
	}

	for i, row := range rows {
		id, ok := ids[row.Category]
		if !ok {
			order := len(ids) + 1
			c, err := menu.CreateCategory(ctx, dto.CreateMenuCategoryRequest{
				Name: row.Category, DisplayName: row.CategoryName, Order: &order,
			})
			if err != nil {
				return categories, items, fmt.Errorf("categoría %s: %w", row.Category, err)
			}
			id = c.ID
			ids[row.Category] = id
			categories++
		}
		price := row.Price
		order := i + 1
		in := dto.CreateMenuItemRequest{CategoryID: id, Name: row.Item, Price: &price, Order: &order}
		if row.Description != "" {
			desc := row.Description
			in.Description = &desc
		}
		if _, err := menu.CreateItem(ctx, in); err != nil {
			return categories, items, fmt.Errorf("ítem %s: %w", row.Item, err)
		}
		items++
	}
	return categories, items, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

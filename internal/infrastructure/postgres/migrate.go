package postgres

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jhoicas/restaurante-api/migrations"
	"github.com/jhoicas/restaurante-api/pkg/config"
)

// Migrate aplica las migraciones embebidas pendientes. Sin cambios no es error.
func Migrate(cfg config.DBConfig) (uint, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("abrir migraciones: %w", err)
	}
	dbURL, err := migrateURL(cfg.ConnectionString())
	if err != nil {
		return 0, err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return 0, fmt.Errorf("iniciar migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("aplicar migraciones: %w", err)
	}
	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("leer versión: %w", err)
	}
	return version, nil
}

// migrateURL el driver pgx/v5 de migrate se registra con el esquema pgx5.
func migrateURL(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("DSN inválido: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("esquema de DSN no soportado: %q", u.Scheme)
	}
	u.Scheme = "pgx5"
	return u.String(), nil
}

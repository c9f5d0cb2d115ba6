package config

import (
	"context"
	"database/sql"
	"envelope-orchestrator/migrations"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"
)

// gooseUp : подменяется в тестах
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// RunMigrations : применяет встроенные миграции к БД аккаунтов
func RunMigrations(ctx context.Context, database *Database) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("ошибка выбора диалекта миграций: %w", err)
	}

	if err := gooseUp(ctx, database.DB.DB, "."); err != nil {
		return fmt.Errorf("ошибка применения миграций: %w", err)
	}

	log.Println("Миграции БД применены")
	return nil
}

package migrations

import "embed"

// Migrations : схема хранилища аккаунтов, применяется goose при старте
//
//go:embed *.sql
var Migrations embed.FS

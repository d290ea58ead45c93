// Package users содержит SQL миграции схемы сервиса пользователей.
package users

import "embed"

// FS - встроенные файлы миграций в формате golang-migrate.
//
//go:embed *.sql
var FS embed.FS

// Package migrations contains all database migration files.
// Each migration file uses init() to call migration.Register().
// The package is imported for side effects by cmd/vyapari/main.go so every
// migration is registered at CLI startup.
package migrations

// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/storefront-admin/storefront-admin/internal/config"
)

const (
	// mysqlDefaultExtras bounds connect and read times: dial timeout 10s,
	// per-query read timeout 15s.
	mysqlDefaultExtras = "charset=utf8mb4&parseTime=True&timeout=10s&readTimeout=15s"

	// postgresTimeouts bounds connect time to 10s and statement time to 15s.
	postgresTimeouts = "connect_timeout=10 options='-c statement_timeout=15000'"
)

// Create builds the MySQL Data Source Name from the configuration.
func Create(dbCfg *config.Config) string {
	extras := dbCfg.DB.Extras
	if extras == "" {
		extras = mysqlDefaultExtras
	}

	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Host,
		dbCfg.DB.Port,
		dbCfg.DB.Name,
		extras,
	)

	return out
}

// Postgres builds the PostgreSQL Data Source Name from the configuration.
// A full connection URL (DATABASE_URL) takes precedence over the individual
// fields.
func Postgres(dbCfg *config.Config) string {
	if dbCfg.DB.URL != "" {
		return dbCfg.DB.URL
	}

	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s %s",
		dbCfg.DB.Host,
		dbCfg.DB.Port,
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Name,
		postgresTimeouts,
	)

	return out
}

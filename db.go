package crudview

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormmysql "gorm.io/driver/mysql"
	gormpg "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	gormsqlserver "gorm.io/driver/sqlserver"
)

// driverAliases folds the accepted driver spellings onto their dialector.
var driverAliases = map[string]func(dsn string) gorm.Dialector{
	"postgres":   gormpg.Open,
	"postgresql": gormpg.Open,
	"pg":         gormpg.Open,
	"mysql":      gormmysql.Open,
	"mariadb":    gormmysql.Open,
	"sqlite":     gormsqlite.Open,
	"sqlite3":    gormsqlite.Open,
	"sqlserver":  gormsqlserver.Open,
	"mssql":      gormsqlserver.Open,
}

// OpenDB opens a GORM DB for the given driver and DSN, with the GORM logger
// silenced in favor of the request logging middleware.
// Supported drivers: postgres, mysql, sqlite, sqlserver.
func OpenDB(driver, dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("dsn is required")
	}
	open, ok := driverAliases[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}
	return gorm.Open(open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
}

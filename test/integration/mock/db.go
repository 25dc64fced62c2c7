// Package mock provides in-memory test doubles for external infrastructure.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// models lists every persisted table, mirroring the production migration set.
func models() []any {
	return []any{
		&model.UserModel{},
		&model.PlannerModel{},
		&model.IncomeModel{},
		&model.ExpenseModel{},
		&model.CardModel{},
		&model.BillModel{},
		&model.AdjustmentModel{},
		&model.EmailQueueModel{},
	}
}

// NewDb returns a shared in-memory SQLite database with the full schema
// migrated. The connection is created once per test binary.
func NewDb() *gorm.DB {
	dbOnce.Do(func() {
		dbConn = openDb()
	})
	return dbConn
}

func openDb() *gorm.DB {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.AutoMigrate(models()...); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return conn
}

// ClearDb removes all rows from every table, keeping the schema.
func ClearDb(db *gorm.DB) error {
	for _, m := range models() {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

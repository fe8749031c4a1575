package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		privy_id TEXT UNIQUE NOT NULL,
		email TEXT,
		display_name TEXT,
		wallet_address TEXT,
		kyc_status TEXT NOT NULL DEFAULT 'NOT_STARTED',
		kyc_provider_user_id TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createClubTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE clubs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		ticker TEXT UNIQUE NOT NULL,
		exchange TEXT NOT NULL,
		crest_url TEXT,
		color_primary TEXT,
		color_secondary TEXT,
		color_gradient_start TEXT,
		color_gradient_end TEXT,
		color_glow TEXT,
		is_active BOOLEAN DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createPriceTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE prices (
		id TEXT PRIMARY KEY,
		club_id TEXT UNIQUE NOT NULL,
		price REAL NOT NULL,
		change_pct REAL NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

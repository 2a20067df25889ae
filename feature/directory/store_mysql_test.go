package directory_test

import (
	"context"
	"testing"
	"time"

	"mamoji/feature/directory"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestServerQueryMySQL(t *testing.T) {
	db, mock := setupMockDB(t)
	store := directory.NewStore(db)

	synced := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"url", "name", "software", "synced_at"}).
		AddRow("example.social", "Example Social", "mastodon", synced)
	mock.ExpectQuery("SELECT \\* FROM `servers`").WillReturnRows(rows)

	srv, err := store.Server(context.Background(), "example.social")
	assert.NoError(t, err)
	if assert.NotNil(t, srv) {
		assert.Equal(t, "mastodon", srv.Software)
		assert.Equal(t, synced, srv.SyncedAt)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServerQueryMySQLNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	store := directory.NewStore(db)

	mock.ExpectQuery("SELECT \\* FROM `servers`").
		WillReturnRows(sqlmock.NewRows([]string{"url", "name", "software", "synced_at"}))

	srv, err := store.Server(context.Background(), "unknown.example")
	assert.NoError(t, err)
	assert.Nil(t, srv)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountEmojisMySQL(t *testing.T) {
	db, mock := setupMockDB(t)
	store := directory.NewStore(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `emojis`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	n, err := store.CountEmojis(context.Background(), "example.social")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

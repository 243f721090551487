package repository_test

import (
	"context"
	"testing"
	"time"

	"nextin/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGormSnapshotStore_Save(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	store := repository.NewGormSnapshotStore(gormDB, "")

	// Ожидаем upsert единственной строки снимка
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "board_snapshots" .* ON CONFLICT \("id"\) DO UPDATE`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// Act
	err := store.Save(context.Background(), sampleBoard(), 2)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSnapshotStore_Save_Error(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	store := repository.NewGormSnapshotStore(gormDB, "")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "board_snapshots"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := store.Save(context.Background(), sampleBoard(), 2)

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSnapshotStore_Load_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	store := repository.NewGormSnapshotStore(gormDB, "main")
	doc, err := json.Marshal(sampleBoard())
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "board_snapshots" WHERE id = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "document", "version", "updated_at"}).
			AddRow("main", doc, int64(9), time.Now()))

	// Act
	board, version, err := store.Load(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sampleBoard(), board)
	assert.Equal(t, int64(9), version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSnapshotStore_Load_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	store := repository.NewGormSnapshotStore(gormDB, "main")

	mock.ExpectQuery(`SELECT \* FROM "board_snapshots" WHERE id = .*`).
		WillReturnError(gorm.ErrRecordNotFound)

	_, _, err := store.Load(context.Background())

	assert.ErrorIs(t, err, repository.ErrNoSnapshot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSnapshotStore_Load_Error(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	store := repository.NewGormSnapshotStore(gormDB, "main")

	mock.ExpectQuery(`SELECT \* FROM "board_snapshots"`).WillReturnError(assert.AnError)

	_, _, err := store.Load(context.Background())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNoSnapshot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

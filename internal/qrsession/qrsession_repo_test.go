package qrsession

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_WithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	assert.NoError(t, err)

	base := NewRepository(gormDB).(*repository)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "qr_sessions" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	scoped := base.WithTx(tx).(*repository)

	assert.Same(t, tx, scoped.db.Statement.ConnPool)
	assert.NotSame(t, tx, base.db.Statement.ConnPool)

	assert.NoError(t, scoped.Deactivate(context.Background(), "session-1"))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

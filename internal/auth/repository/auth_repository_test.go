package repository

import (
	"context"
	"errors"
	"testing"

	"finance_api/domain"
	"finance_api/internal/service/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupAuthRepoTest(t *testing.T) (sqlmock.Sqlmock, domain.AuthRepository) {
	t.Helper()
	logger.DBLogger = zap.NewNop()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return mock, NewAuthRepository(gormDB)
}

func TestAuthRepositoryCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock, repo := setupAuthRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users" \("name","password_hash"\) VALUES \(\$1,\$2\) RETURNING "id"`).
			WithArgs("Nazar", "hashed-secret").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		user, err := repo.CreateUser(ctx, "Nazar", "hashed-secret")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, "Nazar", user.Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		mock, repo := setupAuthRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WithArgs("Nazar", "hashed-secret").
			WillReturnError(errors.New(`duplicate key value violates unique constraint "uq_users_name"`))
		mock.ExpectRollback()

		_, err := repo.CreateUser(ctx, "Nazar", "hashed-secret")
		require.Error(t, err)

		var conflictErr *domain.ConflictError
		assert.True(t, errors.As(err, &conflictErr))
	})
}

func TestAuthRepositoryGetUserByName(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock, repo := setupAuthRepoTest(t)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE name = \$1 ORDER BY "users"."id" LIMIT \$2`).
			WithArgs("Nazar", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "password_hash"}).AddRow(1, "Nazar", "hashed-secret"))

		user, err := repo.GetUserByName(ctx, "Nazar")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, "hashed-secret", user.PasswordHash)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock, repo := setupAuthRepoTest(t)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE name = \$1 ORDER BY "users"."id" LIMIT \$2`).
			WithArgs("Ghost", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.GetUserByName(ctx, "Ghost")
		require.Error(t, err)

		var notFoundErr *domain.NotFoundError
		require.True(t, errors.As(err, &notFoundErr))
		assert.Equal(t, "user not found", notFoundErr.Error())
	})
}

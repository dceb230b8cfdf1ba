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

func setupCategoryRepoTest(t *testing.T) (sqlmock.Sqlmock, domain.CategoryRepository) {
	t.Helper()
	logger.DBLogger = zap.NewNop()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return mock, NewCategoryRepository(gormDB)
}

func TestCategoryRepositoryCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Global Category Skips Owner Lookup", func(t *testing.T) {
		mock, repo := setupCategoryRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "categories" \("name","owner_id"\) VALUES \(\$1,\$2\) RETURNING "id"`).
			WithArgs("Food", nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		category, err := repo.CreateCategory(ctx, "Food", nil)
		require.NoError(t, err)
		assert.Equal(t, uint(1), category.ID)
		assert.Nil(t, category.OwnerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Private Category Checks Owner First", func(t *testing.T) {
		mock, repo := setupCategoryRepoTest(t)
		ownerID := uint(3)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"."id" LIMIT \$2`).
			WithArgs(3, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Ihor"))
		mock.ExpectQuery(`INSERT INTO "categories" \("name","owner_id"\) VALUES \(\$1,\$2\) RETURNING "id"`).
			WithArgs("Dogs", 3).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectCommit()

		category, err := repo.CreateCategory(ctx, "Dogs", &ownerID)
		require.NoError(t, err)
		require.NotNil(t, category.OwnerID)
		assert.Equal(t, uint(3), *category.OwnerID)
	})

	t.Run("Missing Owner Is Not Found", func(t *testing.T) {
		mock, repo := setupCategoryRepoTest(t)
		ownerID := uint(99)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"."id" LIMIT \$2`).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)
		mock.ExpectRollback()

		_, err := repo.CreateCategory(ctx, "Dogs", &ownerID)
		var notFoundErr *domain.NotFoundError
		require.True(t, errors.As(err, &notFoundErr))
		assert.Equal(t, "user not found", notFoundErr.Error())
	})

	t.Run("Duplicate Name Becomes Conflict", func(t *testing.T) {
		mock, repo := setupCategoryRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "categories"`).
			WithArgs("Food", nil).
			WillReturnError(errors.New(`duplicate key value violates unique constraint "uq_categories_global_name"`))
		mock.ExpectRollback()

		_, err := repo.CreateCategory(ctx, "Food", nil)
		var conflictErr *domain.ConflictError
		require.True(t, errors.As(err, &conflictErr))
	})
}

func TestCategoryRepositoryListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil Owner Selects Global Set", func(t *testing.T) {
		mock, repo := setupCategoryRepoTest(t)

		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE owner_id IS NULL ORDER BY id ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id"}).
				AddRow(1, "Food & Dining", nil).
				AddRow(2, "Transport", nil))

		categories, err := repo.ListCategories(ctx, nil)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Nil(t, categories[0].OwnerID)
	})

	t.Run("Owner Filter Selects Private Set", func(t *testing.T) {
		mock, repo := setupCategoryRepoTest(t)
		ownerID := uint(3)

		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE owner_id = \$1 ORDER BY id ASC`).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id"}).
				AddRow(6, "Dogs", 3))

		categories, err := repo.ListCategories(ctx, &ownerID)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Dogs", categories[0].Name)
	})
}

func TestCategoryRepositoryDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Snapshot", func(t *testing.T) {
		mock, repo := setupCategoryRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY "categories"."id" LIMIT \$2`).
			WithArgs(6, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id"}).AddRow(6, "Dogs", 3))
		mock.ExpectExec(`DELETE FROM "categories" WHERE id = \$1`).
			WithArgs(6).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		category, err := repo.DeleteCategory(ctx, 6)
		require.NoError(t, err)
		assert.Equal(t, "Dogs", category.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock, repo := setupCategoryRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY "categories"."id" LIMIT \$2`).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)
		mock.ExpectRollback()

		_, err := repo.DeleteCategory(ctx, 99)
		var notFoundErr *domain.NotFoundError
		require.True(t, errors.As(err, &notFoundErr))
	})
}

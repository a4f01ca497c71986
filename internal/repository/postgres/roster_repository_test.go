package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "не удалось создать мок БД")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// setupRosterRepo создает мок БД и репозиторий справочника
func setupRosterRepo(t *testing.T) (*rosterRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewRosterRepository(db), mock
}

func TestRosterRepository_GetLeaderHandles(t *testing.T) {
	t.Run("группирует упоминания по имени", func(t *testing.T) {
		repo, mock := setupRosterRepo(t)

		rows := sqlmock.NewRows([]string{"person_name", "handle"}).
			AddRow("Bruno Rocha", "@LaisAuditoria").
			AddRow("Bruno Rocha", "@SamaraAuditoria").
			AddRow("Joyce Rolim", "@DanielAuditoria").
			AddRow("Joyce Rolim", "  ")
		mock.ExpectQuery("SELECT person_name, handle").WillReturnRows(rows)

		handles, err := repo.GetLeaderHandles(context.Background())

		require.NoError(t, err)
		assert.Equal(t, map[string][]string{
			"Bruno Rocha": {"@LaisAuditoria", "@SamaraAuditoria"},
			"Joyce Rolim": {"@DanielAuditoria"},
		}, handles)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пустая таблица", func(t *testing.T) {
		repo, mock := setupRosterRepo(t)

		mock.ExpectQuery("SELECT person_name, handle").
			WillReturnRows(sqlmock.NewRows([]string{"person_name", "handle"}))

		handles, err := repo.GetLeaderHandles(context.Background())

		require.NoError(t, err)
		assert.Empty(t, handles)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка запроса", func(t *testing.T) {
		repo, mock := setupRosterRepo(t)

		expectedError := errors.New("database error")
		mock.ExpectQuery("SELECT person_name, handle").WillReturnError(expectedError)

		handles, err := repo.GetLeaderHandles(context.Background())

		require.Error(t, err)
		assert.Nil(t, handles)
		assert.Equal(t, expectedError, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка чтения строки", func(t *testing.T) {
		repo, mock := setupRosterRepo(t)

		rows := sqlmock.NewRows([]string{"person_name", "handle"}).
			AddRow("Ana", "@A").
			RowError(0, errors.New("row error"))
		mock.ExpectQuery("SELECT person_name, handle").WillReturnRows(rows)

		_, err := repo.GetLeaderHandles(context.Background())

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRosterRepository_GetExcludedNames(t *testing.T) {
	t.Run("успешное получение", func(t *testing.T) {
		repo, mock := setupRosterRepo(t)

		rows := sqlmock.NewRows([]string{"name"}).
			AddRow("Fábio Assunção").
			AddRow("Lívia Souza")
		mock.ExpectQuery("SELECT name").WillReturnRows(rows)

		names, err := repo.GetExcludedNames(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"Fábio Assunção", "Lívia Souza"}, names)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка запроса", func(t *testing.T) {
		repo, mock := setupRosterRepo(t)

		mock.ExpectQuery("SELECT name").WillReturnError(sql.ErrConnDone)

		_, err := repo.GetExcludedNames(context.Background())

		require.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRosterRepository_ImportRoster(t *testing.T) {
	t.Run("успешная замена справочника", func(t *testing.T) {
		repo, mock := setupRosterRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM leader_handles").WillReturnResult(sqlmock.NewResult(0, 5))
		mock.ExpectExec("DELETE FROM excluded_names").WillReturnResult(sqlmock.NewResult(0, 2))
		// имена вставляются в алфавитном порядке
		mock.ExpectExec("INSERT INTO leader_handles").
			WithArgs("Ana", "@A1", 0).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO leader_handles").
			WithArgs("Ana", "@A2", 1).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectExec("INSERT INTO leader_handles").
			WithArgs("Bob", "@B", 0).
			WillReturnResult(sqlmock.NewResult(3, 1))
		mock.ExpectExec("INSERT INTO excluded_names").
			WithArgs("Cara").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.ImportRoster(context.Background(),
			map[string][]string{"Bob": {"@B"}, "Ana": {"@A1", "@A2"}},
			[]string{"Cara"},
		)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка вставки откатывает транзакцию", func(t *testing.T) {
		repo, mock := setupRosterRepo(t)

		expectedError := errors.New("insert failed")
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM leader_handles").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM excluded_names").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO leader_handles").
			WithArgs("Ana", "@A", 0).
			WillReturnError(expectedError)
		mock.ExpectRollback()

		err := repo.ImportRoster(context.Background(), map[string][]string{"Ana": {"@A"}}, nil)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка начала транзакции", func(t *testing.T) {
		repo, mock := setupRosterRepo(t)

		expectedError := errors.New("connection failed")
		mock.ExpectBegin().WillReturnError(expectedError)

		err := repo.ImportRoster(context.Background(), nil, nil)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

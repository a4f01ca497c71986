package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRosterRepository struct {
	mock.Mock
}

func (m *mockRosterRepository) GetLeaderHandles(ctx context.Context) (map[string][]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]string), args.Error(1)
}

func (m *mockRosterRepository) GetExcludedNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestRoster_LeaderHandles(t *testing.T) {
	r := Static()

	t.Run("точное совпадение", func(t *testing.T) {
		assert.Equal(t, []string{"@LaisAuditoria", "@SamaraAuditoria"}, r.LeaderHandles("Bruno Rocha"))
	})

	t.Run("регистр и диакритика не нормализуются", func(t *testing.T) {
		assert.Nil(t, r.LeaderHandles("bruno rocha"))
		assert.Nil(t, r.LeaderHandles("Matheus Eufrasio"))
		assert.NotNil(t, r.LeaderHandles("Matheus Eufrásio"))
	})

	t.Run("неизвестное имя", func(t *testing.T) {
		assert.Nil(t, r.LeaderHandles("Ninguém"))
	})

	t.Run("изменение результата не меняет справочник", func(t *testing.T) {
		handles := r.LeaderHandles("Joyce Rolim")
		handles[0] = "@Hacked"
		assert.Equal(t, []string{"@DanielAuditoria"}, r.LeaderHandles("Joyce Rolim"))
	})
}

func TestNew_CopiesInput(t *testing.T) {
	leaders := map[string][]string{"Ana": {"@A"}}
	excluded := []string{"Bob"}

	r := New(leaders, excluded)
	leaders["Ana"][0] = "@Changed"
	leaders["Cara"] = []string{"@C"}
	excluded[0] = "Changed"

	assert.Equal(t, []string{"@A"}, r.LeaderHandles("Ana"))
	assert.Nil(t, r.LeaderHandles("Cara"))
	assert.Equal(t, []string{"Bob"}, r.ExcludedNames())
	assert.Equal(t, map[string][]string{"Ana": {"@A"}}, r.Leaders())
}

func TestStatic(t *testing.T) {
	r := Static()
	assert.Contains(t, r.ExcludedNames(), "Fábio Assunção")
	assert.NotEmpty(t, r.Leaders())
}

func TestLoad(t *testing.T) {
	t.Run("успешная загрузка", func(t *testing.T) {
		repo := new(mockRosterRepository)
		repo.On("GetLeaderHandles", mock.Anything).Return(map[string][]string{"Ana": {"@A"}}, nil).Once()
		repo.On("GetExcludedNames", mock.Anything).Return([]string{"Bob"}, nil).Once()

		r, err := Load(context.Background(), repo)

		require.NoError(t, err)
		assert.Equal(t, []string{"@A"}, r.LeaderHandles("Ana"))
		assert.Equal(t, []string{"Bob"}, r.ExcludedNames())
		repo.AssertExpectations(t)
	})

	t.Run("ошибка чтения руководителей", func(t *testing.T) {
		repo := new(mockRosterRepository)
		expectedError := errors.New("db down")
		repo.On("GetLeaderHandles", mock.Anything).Return(nil, expectedError).Once()

		r, err := Load(context.Background(), repo)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, expectedError)
		repo.AssertExpectations(t)
	})

	t.Run("ошибка чтения исключений", func(t *testing.T) {
		repo := new(mockRosterRepository)
		expectedError := errors.New("db down")
		repo.On("GetLeaderHandles", mock.Anything).Return(map[string][]string{}, nil).Once()
		repo.On("GetExcludedNames", mock.Anything).Return(nil, expectedError).Once()

		_, err := Load(context.Background(), repo)

		require.ErrorIs(t, err, expectedError)
		repo.AssertExpectations(t)
	})
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "диакритика", input: "Fábio Assunção", want: "fabio assuncao"},
		{name: "пробелы и регистр", input: "  ANA Souza ", want: "ana souza"},
		{name: "пустая строка", input: "", want: ""},
		{name: "без изменений", input: "bob", want: "bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.input))
		})
	}
}

func TestMembershipFilter_Apply(t *testing.T) {
	people := []domain.Person{
		{ID: "1", Name: "Ana Souza"},
		{ID: "2", Name: "fabio assuncao"},
		{ID: "3", Name: "Bob"},
		{ID: "4", Name: "Cara"},
	}
	teams := []domain.Team{
		{ID: "10", Name: "Auditoria", MemberIDs: []string{"1", "2"}},
		{ID: "20", Name: "Fiscal", MemberIDs: []string{"3"}},
	}

	t.Run("исключение по имени без учета диакритики", func(t *testing.T) {
		f := NewMembershipFilter([]string{"Fábio Assunção"}, nil, nil)

		got := f.Apply(people, teams)

		assert.Len(t, got, 3)
		assert.NotContains(t, got, "2")
	})

	t.Run("фильтр по командам", func(t *testing.T) {
		f := NewMembershipFilter(nil, []string{"10"}, nil)

		got := f.Apply(people, teams)

		assert.Len(t, got, 2)
		assert.Contains(t, got, "1")
		assert.Contains(t, got, "2")
	})

	t.Run("исключение по имени сильнее членства в команде", func(t *testing.T) {
		f := NewMembershipFilter([]string{"Fábio Assunção"}, []string{"10"}, nil)

		got := f.Apply(people, teams)

		assert.Len(t, got, 1)
		assert.Contains(t, got, "1")
	})

	t.Run("исключение по id", func(t *testing.T) {
		f := NewMembershipFilter(nil, nil, []string{"3", "4"})

		got := f.Apply(people, teams)

		assert.Len(t, got, 2)
		assert.NotContains(t, got, "3")
		assert.NotContains(t, got, "4")
	})

	t.Run("неизвестная команда оставляет пустой результат", func(t *testing.T) {
		f := NewMembershipFilter(nil, []string{"999"}, nil)

		assert.Empty(t, f.Apply(people, teams))
	})

	t.Run("без настроек пропускает всех", func(t *testing.T) {
		f := NewMembershipFilter(nil, nil, nil)

		assert.Len(t, f.Apply(people, teams), 4)
	})
}

func TestAttachTeams(t *testing.T) {
	people := []domain.Person{{ID: "1"}, {ID: "2"}}
	teams := []domain.Team{
		{ID: "10", MemberIDs: []string{"1"}},
		{ID: "20", MemberIDs: []string{"1"}},
	}

	got := AttachTeams(people, teams)

	assert.Equal(t, []string{"10", "20"}, got[0].TeamIDs)
	assert.Empty(t, got[1].TeamIDs)
	assert.Nil(t, people[0].TeamIDs)
}

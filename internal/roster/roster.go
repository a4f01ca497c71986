// Package roster хранит справочник упоминаний руководителей и исключенных сотрудников.
// Roster неизменяем после создания.
package roster

import (
	"context"
	"fmt"

	"github.com/bagdasarian/time-worked-alert/internal/repository"
)

type Roster struct {
	leaders  map[string][]string
	excluded []string
}

func New(leaders map[string][]string, excluded []string) *Roster {
	r := &Roster{
		leaders:  make(map[string][]string, len(leaders)),
		excluded: append([]string(nil), excluded...),
	}
	for name, handles := range leaders {
		r.leaders[name] = append([]string(nil), handles...)
	}
	return r
}

// Static возвращает справочник, встроенный в бинарник
func Static() *Roster {
	return New(staticLeaderHandles, staticExcludedNames)
}

// Load читает справочник из хранилища один раз при старте
func Load(ctx context.Context, repo repository.RosterRepository) (*Roster, error) {
	leaders, err := repo.GetLeaderHandles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load leader handles: %w", err)
	}
	excluded, err := repo.GetExcludedNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("load excluded names: %w", err)
	}
	return New(leaders, excluded), nil
}

// LeaderHandles ищет упоминания по точному имени, без нормализации
func (r *Roster) LeaderHandles(name string) []string {
	handles, ok := r.leaders[name]
	if !ok {
		return nil
	}
	return append([]string(nil), handles...)
}

func (r *Roster) ExcludedNames() []string {
	return append([]string(nil), r.excluded...)
}

func (r *Roster) Leaders() map[string][]string {
	out := make(map[string][]string, len(r.leaders))
	for name, handles := range r.leaders {
		out[name] = append([]string(nil), handles...)
	}
	return out
}

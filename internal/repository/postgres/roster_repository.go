package postgres

import (
	"context"
	"database/sql"
	"sort"
	"strings"
)

type rosterRepository struct {
	db *sql.DB
}

func NewRosterRepository(db *sql.DB) *rosterRepository {
	return &rosterRepository{db: db}
}

// GetLeaderHandles возвращает упоминания руководителей по имени сотрудника.
// Порядок упоминаний задается колонкой position.
func (r *rosterRepository) GetLeaderHandles(ctx context.Context) (map[string][]string, error) {
	query := `
		SELECT person_name, handle
		FROM leader_handles
		ORDER BY person_name, position, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	handles := make(map[string][]string)
	for rows.Next() {
		var name, handle string
		if err := rows.Scan(&name, &handle); err != nil {
			return nil, err
		}
		handle = strings.TrimSpace(handle)
		if handle == "" {
			continue
		}
		handles[name] = append(handles[name], handle)
	}

	return handles, rows.Err()
}

func (r *rosterRepository) GetExcludedNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT name
		FROM excluded_names
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// ImportRoster полностью заменяет справочник в одной транзакции
func (r *rosterRepository) ImportRoster(ctx context.Context, leaders map[string][]string, excluded []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM leader_handles`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM excluded_names`); err != nil {
		return err
	}

	names := make([]string, 0, len(leaders))
	for name := range leaders {
		names = append(names, name)
	}
	sort.Strings(names)

	insertHandle := `
		INSERT INTO leader_handles (person_name, handle, position)
		VALUES ($1, $2, $3)
	`
	for _, name := range names {
		for i, handle := range leaders[name] {
			if _, err := tx.ExecContext(ctx, insertHandle, name, handle, i); err != nil {
				return err
			}
		}
	}

	insertExcluded := `
		INSERT INTO excluded_names (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`
	for _, name := range excluded {
		if _, err := tx.ExecContext(ctx, insertExcluded, name); err != nil {
			return err
		}
	}

	return tx.Commit()
}

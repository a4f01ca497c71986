package repository

import "context"

type RosterRepository interface {
	GetLeaderHandles(ctx context.Context) (map[string][]string, error)
	GetExcludedNames(ctx context.Context) ([]string, error)
}

type RosterWriter interface {
	ImportRoster(ctx context.Context, leaders map[string][]string, excluded []string) error
}

package repository

import (
	"context"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
)

type DirectoryRepository interface {
	ListPeople(ctx context.Context) ([]domain.Person, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
}

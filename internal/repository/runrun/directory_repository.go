package runrun

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
)

const (
	UsersPath = "/users"
	TeamsPath = "/teams"
)

var errUnexpectedShape = errors.New("unexpected response shape")

type userDTO struct {
	ID   domain.FlexibleID `json:"id"`
	Name string            `json:"name"`
}

type teamDTO struct {
	ID      domain.FlexibleID   `json:"id"`
	Name    string              `json:"name"`
	UserIDs []domain.FlexibleID `json:"user_ids"`
}

type directoryRepository struct {
	client *Client
}

func NewDirectoryRepository(client *Client) *directoryRepository {
	return &directoryRepository{client: client}
}

func (r *directoryRepository) ListPeople(ctx context.Context) ([]domain.Person, error) {
	var users []userDTO
	if err := r.list(ctx, UsersPath, &users); err != nil {
		return nil, err
	}

	people := make([]domain.Person, 0, len(users))
	for _, u := range users {
		if u.ID == "" {
			continue
		}
		people = append(people, domain.Person{
			ID:   u.ID.String(),
			Name: u.Name,
		})
	}
	return people, nil
}

func (r *directoryRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	var dtos []teamDTO
	if err := r.list(ctx, TeamsPath, &dtos); err != nil {
		return nil, err
	}

	teams := make([]domain.Team, 0, len(dtos))
	for _, t := range dtos {
		team := domain.Team{
			ID:        t.ID.String(),
			Name:      t.Name,
			MemberIDs: make([]string, 0, len(t.UserIDs)),
		}
		for _, id := range t.UserIDs {
			if id != "" {
				team.MemberIDs = append(team.MemberIDs, id.String())
			}
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func (r *directoryRepository) list(ctx context.Context, path string, out any) error {
	resp, err := r.client.get(ctx, path, nil)
	if err != nil {
		return err
	}
	if err := unwrapResult(resp.Body, out); err != nil {
		return domain.NewProtocolError("%s: %v", path, err)
	}
	return nil
}

// unwrapResult принимает и голый массив, и конверт {"result": [...]}
func unwrapResult(data []byte, out any) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errUnexpectedShape
	}

	switch data[0] {
	case '[':
		return json.Unmarshal(data, out)
	case '{':
		var envelope struct {
			Result json.RawMessage `json:"result"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return err
		}
		result := bytes.TrimSpace(envelope.Result)
		if len(result) == 0 || result[0] != '[' {
			return errUnexpectedShape
		}
		return json.Unmarshal(result, out)
	default:
		return errUnexpectedShape
	}
}

package service

import "github.com/bagdasarian/time-worked-alert/internal/domain"

type MembershipFilter struct {
	excludedNames map[string]struct{}
	allowedTeams  map[string]struct{}
	excludedIDs   map[string]struct{}
}

// NewMembershipFilter создает фильтр. Пустой onlyTeamIDs отключает фильтр по командам.
func NewMembershipFilter(excludedNames, onlyTeamIDs, excludeUserIDs []string) *MembershipFilter {
	f := &MembershipFilter{
		excludedNames: make(map[string]struct{}, len(excludedNames)),
		allowedTeams:  make(map[string]struct{}, len(onlyTeamIDs)),
		excludedIDs:   make(map[string]struct{}, len(excludeUserIDs)),
	}
	for _, name := range excludedNames {
		f.excludedNames[NormalizeName(name)] = struct{}{}
	}
	for _, id := range onlyTeamIDs {
		f.allowedTeams[id] = struct{}{}
	}
	for _, id := range excludeUserIDs {
		f.excludedIDs[id] = struct{}{}
	}
	return f
}

// Apply возвращает допустимых к оповещению сотрудников по id.
// Порядок: исключение по имени, фильтр по командам, исключение по id.
func (f *MembershipFilter) Apply(people []domain.Person, teams []domain.Team) map[string]domain.Person {
	byID := make(map[string]domain.Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}

	for id, p := range byID {
		if f.IsExcludedName(p.Name) {
			delete(byID, id)
		}
	}

	if len(f.allowedTeams) > 0 {
		keep := make(map[string]struct{})
		for _, team := range teams {
			if _, ok := f.allowedTeams[team.ID]; !ok {
				continue
			}
			for _, memberID := range team.MemberIDs {
				keep[memberID] = struct{}{}
			}
		}
		for id := range byID {
			if _, ok := keep[id]; !ok {
				delete(byID, id)
			}
		}
	}

	for id := range byID {
		if _, ok := f.excludedIDs[id]; ok {
			delete(byID, id)
		}
	}

	return byID
}

func (f *MembershipFilter) IsExcludedName(name string) bool {
	_, ok := f.excludedNames[NormalizeName(name)]
	return ok
}

// AttachTeams заполняет Person.TeamIDs по составу команд
func AttachTeams(people []domain.Person, teams []domain.Team) []domain.Person {
	teamsByPerson := make(map[string][]string)
	for _, team := range teams {
		for _, memberID := range team.MemberIDs {
			teamsByPerson[memberID] = append(teamsByPerson[memberID], team.ID)
		}
	}

	out := make([]domain.Person, len(people))
	for i, p := range people {
		p.TeamIDs = teamsByPerson[p.ID]
		out[i] = p
	}
	return out
}

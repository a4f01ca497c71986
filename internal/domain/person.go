package domain

type Person struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	TeamIDs []string `json:"team_ids,omitempty"`
}

// DisplayName возвращает имя, а при его отсутствии - идентификатор
func (p Person) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

package domain

type AlertDecision struct {
	Person          Person   `json:"person"`
	WorkedSeconds   int64    `json:"worked_seconds"`
	CapacitySeconds int64    `json:"capacity_seconds"`
	LeaderHandles   []string `json:"leader_handles"`
	Message         string   `json:"message"`
}

package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type AlertResponse struct {
	PersonID      string   `json:"person_id"`
	PersonName    string   `json:"person_name"`
	WorkedHours   float64  `json:"worked_hours"`
	CapacityHours float64  `json:"capacity_hours"`
	LeaderHandles []string `json:"leader_handles"`
	Message       string   `json:"message"`
}

type CheckResponse struct {
	Day       string          `json:"day"`
	Skipped   bool            `json:"skipped"`
	DryRun    bool            `json:"dry_run"`
	Eligible  int             `json:"eligible"`
	Evaluated int             `json:"evaluated"`
	Sent      int             `json:"sent"`
	Alerts    []AlertResponse `json:"alerts"`
}

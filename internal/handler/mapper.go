package handler

import (
	"math"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
	"github.com/bagdasarian/time-worked-alert/internal/service"
)

func runResultToHTTP(result *service.RunResult) CheckResponse {
	alerts := make([]AlertResponse, 0, len(result.Decisions))
	for _, d := range result.Decisions {
		alerts = append(alerts, decisionToHTTP(d))
	}

	return CheckResponse{
		Day:       result.Day,
		Skipped:   result.Skipped,
		DryRun:    result.DryRun,
		Eligible:  result.Eligible,
		Evaluated: result.Evaluated,
		Sent:      result.Sent,
		Alerts:    alerts,
	}
}

func decisionToHTTP(d domain.AlertDecision) AlertResponse {
	handles := d.LeaderHandles
	if handles == nil {
		handles = []string{}
	}
	return AlertResponse{
		PersonID:      d.Person.ID,
		PersonName:    d.Person.DisplayName(),
		WorkedHours:   secondsToHours(d.WorkedSeconds),
		CapacityHours: secondsToHours(d.CapacitySeconds),
		LeaderHandles: handles,
		Message:       d.Message,
	}
}

func secondsToHours(seconds int64) float64 {
	return math.Round(float64(seconds)/3600*100) / 100
}

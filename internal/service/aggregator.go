package service

import "github.com/bagdasarian/time-worked-alert/internal/domain"

type idExtractor func(rec domain.TimeRecord) string

// idExtractors перебираются по порядку: сначала плоское user_id, затем user.id
var idExtractors = []idExtractor{
	func(rec domain.TimeRecord) string {
		return rec.UserID.String()
	},
	func(rec domain.TimeRecord) string {
		if rec.User == nil {
			return ""
		}
		return rec.User.ID.String()
	},
}

func resolvePersonID(rec domain.TimeRecord) string {
	for _, extract := range idExtractors {
		if id := extract(rec); id != "" {
			return id
		}
	}
	return ""
}

// Aggregate сводит строки отчета к одной паре (отработано, емкость) на сотрудника.
// Отработанное время суммируется, емкость - последнее значение.
// Строки без идентификатора сотрудника отбрасываются.
func Aggregate(report *domain.Report, defaultCapacity int64) map[string]domain.WorkedCapacity {
	worked := make(map[string]int64)
	capacity := make(map[string]int64)
	if report == nil {
		return map[string]domain.WorkedCapacity{}
	}

	for _, rec := range report.Records {
		id := resolvePersonID(rec)
		if id == "" {
			continue
		}
		worked[id] += int64(rec.Time)
	}

	for _, rec := range report.Capacity {
		id := resolvePersonID(rec)
		if id == "" {
			continue
		}
		capacity[id] = int64(rec.Time)
	}

	if len(capacity) == 0 {
		for id := range worked {
			capacity[id] = defaultCapacity
		}
	}

	result := make(map[string]domain.WorkedCapacity, len(worked)+len(capacity))
	for id, seconds := range worked {
		capSeconds, ok := capacity[id]
		if !ok {
			capSeconds = defaultCapacity
		}
		result[id] = domain.WorkedCapacity{
			PersonID:        id,
			WorkedSeconds:   seconds,
			CapacitySeconds: capSeconds,
		}
	}
	for id, capSeconds := range capacity {
		if _, ok := result[id]; ok {
			continue
		}
		result[id] = domain.WorkedCapacity{
			PersonID:        id,
			CapacitySeconds: capSeconds,
		}
	}

	return result
}

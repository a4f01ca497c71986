package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
	"github.com/bagdasarian/time-worked-alert/internal/roster"
)

const leaderNotMapped = "(líder não mapeado)"

type DecisionEngine struct {
	threshold float64
	roster    *roster.Roster
}

func NewDecisionEngine(threshold float64, r *roster.Roster) *DecisionEngine {
	return &DecisionEngine{threshold: threshold, roster: r}
}

// Triggers: worked >= capacity * threshold. Емкость <= 0 не оценивается.
func (e *DecisionEngine) Triggers(worked, capacity int64) bool {
	if capacity <= 0 {
		return false
	}
	return float64(worked) >= float64(capacity)*e.threshold
}

// Evaluate оценивает сотрудников, присутствующих и в отчете, и среди допустимых.
// Результат отсортирован по имени, затем по id.
func (e *DecisionEngine) Evaluate(aggregated map[string]domain.WorkedCapacity, eligible map[string]domain.Person) []domain.AlertDecision {
	var decisions []domain.AlertDecision
	for id, wc := range aggregated {
		person, ok := eligible[id]
		if !ok {
			continue
		}
		if !e.Triggers(wc.WorkedSeconds, wc.CapacitySeconds) {
			continue
		}

		decision := domain.AlertDecision{
			Person:          person,
			WorkedSeconds:   wc.WorkedSeconds,
			CapacitySeconds: wc.CapacitySeconds,
			LeaderHandles:   e.roster.LeaderHandles(person.DisplayName()),
		}
		decision.Message = FormatAlert(decision, e.threshold)
		decisions = append(decisions, decision)
	}

	sort.Slice(decisions, func(i, j int) bool {
		a, b := decisions[i].Person, decisions[j].Person
		if a.DisplayName() != b.DisplayName() {
			return a.DisplayName() < b.DisplayName()
		}
		return a.ID < b.ID
	})

	return decisions
}

// FormatAlert формирует текст оповещения
func FormatAlert(d domain.AlertDecision, threshold float64) string {
	leaders := leaderNotMapped
	if len(d.LeaderHandles) > 0 {
		leaders = strings.Join(d.LeaderHandles, " ")
	}

	lines := []string{
		fmt.Sprintf("Alerta: %d%% do tempo trabalhado atingido", int(math.Round(threshold*100))),
		fmt.Sprintf("Colaborador: %s", d.Person.DisplayName()),
		fmt.Sprintf("Trabalhado hoje: %.2fh de %.2fh", hours(d.WorkedSeconds), hours(d.CapacitySeconds)),
		fmt.Sprintf("Líder: %s", leaders),
	}
	return strings.Join(lines, "\n")
}

func hours(seconds int64) float64 {
	return float64(seconds) / 3600.0
}

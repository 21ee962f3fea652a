package usecase

import (
	"github.com/diillson/savings-post-go/internal/domain/entity"
	"github.com/diillson/savings-post-go/pkg/format"
)

// ComputeStatistics deriva total, percentual e restante a partir dos dados de entrada.
// Plain float64 arithmetic; a zero target yields a non-finite percentage.
func ComputeStatistics(data *entity.SavingsData) entity.Statistics {
	totalSaved := 0.0
	for _, entry := range data.Entries {
		totalSaved += entry.Amount
	}

	target := data.CurrentGoal.Target

	return entity.Statistics{
		TotalSaved: totalSaved,
		Target:     target,
		GoalName:   data.CurrentGoal.Name,
		Percentage: format.RoundHalfUp(totalSaved / target * 100),
		Remaining:  target - totalSaved,
	}
}

package entity

// ProgressReport agrega estatísticas e lançamentos para exportação.
type ProgressReport struct {
	GeneratedAt string         `json:"generated_at"`
	RunID       string         `json:"run_id"`
	GoalName    string         `json:"goal_name"`
	GoalTarget  Number         `json:"goal_target"`
	TotalSaved  Number         `json:"total_saved"`
	Percentage  Number         `json:"percentage"`
	Remaining   Number         `json:"remaining"`
	Entries     []SavingsEntry `json:"entries"`
	Caption     string         `json:"caption"`
}

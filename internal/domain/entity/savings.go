package entity

// SavingsEntry represents a single deposit recorded in the savings ledger.
type SavingsEntry struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date,omitempty"`
	Note   string  `json:"note,omitempty"`
}

// Goal é o objetivo de poupança ativo.
type Goal struct {
	Name   string  `json:"name"`
	Target float64 `json:"target"`
}

// SavingsData é o documento de entrada completo.
type SavingsData struct {
	Entries     []SavingsEntry `json:"entries"`
	CurrentGoal Goal           `json:"currentGoal"`
}

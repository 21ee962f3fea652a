package repository

import "github.com/diillson/savings-post-go/internal/domain/entity"

// SavingsRepository loads the savings ledger.
type SavingsRepository interface {
	LoadSavingsData(filePath string) (*entity.SavingsData, error)
}

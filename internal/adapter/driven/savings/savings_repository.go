package savings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/diillson/savings-post-go/internal/domain/entity"
	"github.com/diillson/savings-post-go/internal/domain/repository"
	"github.com/diillson/savings-post-go/internal/shared/types"
)

// SavingsRepositoryImpl lê o arquivo de poupança do disco.
type SavingsRepositoryImpl struct{}

// NewSavingsRepository cria uma nova implementação do SavingsRepository.
func NewSavingsRepository() repository.SavingsRepository {
	return &SavingsRepositoryImpl{}
}

// savingsDocument registra a presença dos campos obrigatórios antes da conversão.
type savingsDocument struct {
	Entries     *[]entity.SavingsEntry `json:"entries"`
	CurrentGoal *entity.Goal           `json:"currentGoal"`
}

// LoadSavingsData reads and parses a savings-data.json document.
// entries and currentGoal must be present and non-null; unknown fields are ignored
// and no value validation is applied.
func (r *SavingsRepositoryImpl) LoadSavingsData(filePath string) (*entity.SavingsData, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrInputNotFound, filePath)
		}
		return nil, fmt.Errorf("error reading savings data: %w", err)
	}

	var doc *savingsDocument
	if err := json.Unmarshal(fileData, &doc); err != nil {
		return nil, fmt.Errorf("error parsing savings data %s: %w", filePath, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("error parsing savings data %s: %w: document is null", filePath, types.ErrInvalidSavingsData)
	}
	if doc.Entries == nil || *doc.Entries == nil {
		return nil, fmt.Errorf("error parsing savings data %s: %w: missing entries", filePath, types.ErrInvalidSavingsData)
	}
	if doc.CurrentGoal == nil {
		return nil, fmt.Errorf("error parsing savings data %s: %w: missing currentGoal", filePath, types.ErrInvalidSavingsData)
	}

	return &entity.SavingsData{
		Entries:     *doc.Entries,
		CurrentGoal: *doc.CurrentGoal,
	}, nil
}

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/savings-post-go/internal/domain/entity"
	"github.com/diillson/savings-post-go/internal/domain/repository"
	"github.com/diillson/savings-post-go/pkg/format"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Metadata e saída de CI ---

// WriteMetadata grava o registro de metadados como JSON indentado, sobrescrevendo o arquivo.
func (r *ExportRepositoryImpl) WriteMetadata(metadata entity.Metadata, outputPath string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", filepath.Dir(outputPath), err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("error creating metadata file: %w", err)
	}

	if err := writeJSONAndClose(file, metadata); err != nil {
		return "", fmt.Errorf("error writing metadata: %w", err)
	}

	return filepath.Abs(outputPath)
}

// AppendCIOutput appends the four key=value lines consumed by the CI workflow.
func (r *ExportRepositoryImpl) AppendCIOutput(output entity.CIOutput, filePath string) error {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening CI output file: %w", err)
	}
	defer file.Close()

	lines := fmt.Sprintf("total_saved=%s\ngoal_name=%s\nimage_url=%s\npercentage=%s\n",
		output.TotalSaved, output.GoalName, output.ImageURL, output.Percentage)
	if _, err := file.WriteString(lines); err != nil {
		return fmt.Errorf("error writing CI output file: %w", err)
	}
	return nil
}

// --- Relatórios de progresso ---

func (r *ExportRepositoryImpl) ExportReportToCSV(report entity.ProgressReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	writer.Write([]string{"#", "Date", "Amount (TRY)", "Note"})
	for i, e := range report.Entries {
		writer.Write([]string{
			fmt.Sprintf("%d", i+1),
			e.Date,
			format.Money(e.Amount),
			e.Note,
		})
	}

	writer.Write([]string{})
	writer.Write([]string{"Goal", report.GoalName})
	writer.Write([]string{"Target", format.Money(float64(report.GoalTarget))})
	writer.Write([]string{"Total Saved", format.Money(float64(report.TotalSaved))})
	writer.Write([]string{"Remaining", format.Money(float64(report.Remaining))})
	writer.Write([]string{"Progress", format.Number(float64(report.Percentage)) + "%"})

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToJSON(report entity.ProgressReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}

	if err := writeJSONAndClose(file, report); err != nil {
		return "", fmt.Errorf("error writing JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// writeJSONAndClose grava v indentado e fecha w; o erro de Close também é retornado.
func writeJSONAndClose(w io.WriteCloser, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		_ = w.Close()
		return fmt.Errorf("encoding: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing: %w", err)
	}
	return nil
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	base = strings.TrimSuffix(base, "."+ext)
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

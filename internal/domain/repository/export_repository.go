package repository

import (
	"github.com/diillson/savings-post-go/internal/domain/entity"
)

type ExportRepository interface {
	WriteMetadata(metadata entity.Metadata, outputPath string) (string, error)
	AppendCIOutput(output entity.CIOutput, filePath string) error

	ExportReportToCSV(report entity.ProgressReport, filename, outputDir string) (string, error)
	ExportReportToJSON(report entity.ProgressReport, filename, outputDir string) (string, error)
	ExportReportToPDF(report entity.ProgressReport, filename, outputDir string) (string, error)
}

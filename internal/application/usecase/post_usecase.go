package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/diillson/savings-post-go/internal/domain/entity"
	"github.com/diillson/savings-post-go/internal/domain/repository"
	"github.com/diillson/savings-post-go/internal/shared/types"
	"github.com/diillson/savings-post-go/pkg/format"
	"github.com/google/uuid"
)

const (
	ImageFileName     = "pinterest-post.png"
	ThumbnailFileName = "pinterest-post-thumb.png"
	MetadataFileName  = "metadata.json"

	// CIOutputEnv nomeia a variável que aponta para o arquivo de saída do GitHub Actions.
	CIOutputEnv = "GITHUB_OUTPUT"
)

// PostUseCase handles the savings post generation pipeline.
type PostUseCase struct {
	savingsRepo repository.SavingsRepository
	imageRepo   repository.ImageRepository
	exportRepo  repository.ExportRepository
	publishRepo repository.PublishRepository
	console     types.ConsoleInterface

	now      func() time.Time
	randIntn func(n int) int
	newRunID func() string
	getenv   func(key string) string
}

// NewPostUseCase creates a new post use case.
func NewPostUseCase(
	savingsRepo repository.SavingsRepository,
	imageRepo repository.ImageRepository,
	exportRepo repository.ExportRepository,
	publishRepo repository.PublishRepository,
	console types.ConsoleInterface,
) *PostUseCase {
	return &PostUseCase{
		savingsRepo: savingsRepo,
		imageRepo:   imageRepo,
		exportRepo:  exportRepo,
		publishRepo: publishRepo,
		console:     console,
		now:         time.Now,
		randIntn:    rand.Intn,
		newRunID:    func() string { return uuid.New().String() },
		getenv:      os.Getenv,
	}
}

// RunPost executa o pipeline: carregar, calcular, gerar imagem, gravar metadados.
// Each stage returns on the first error; files already written are left on disk.
func (uc *PostUseCase) RunPost(ctx context.Context, args *types.CLIArgs) (*entity.PostResult, error) {
	data, err := uc.savingsRepo.LoadSavingsData(args.Input)
	if err != nil {
		return nil, err
	}

	stats := ComputeStatistics(data)
	result := &entity.PostResult{RunID: uc.newRunID()}

	uc.console.LogInfo("Total Saved: %s TRY", format.Number(stats.TotalSaved))
	uc.console.LogInfo("Goal: %s - %s%%", stats.GoalName, format.Number(stats.Percentage))
	if !stats.PercentageFinite() {
		uc.console.LogWarning("Goal target is %s; percentage is not a finite number", format.Number(stats.Target))
	}
	uc.console.LogDebug("Run ID: %s", result.RunID)

	if !args.Quiet {
		uc.displaySummary(data, stats)
	}

	imagePath, err := uc.generateImage(ctx, stats, args)
	if err != nil {
		return nil, err
	}
	result.ImagePath = imagePath

	if args.ThumbnailWidth > 0 {
		thumbPath := filepath.Join(args.OutputDir, ThumbnailFileName)
		if err := uc.imageRepo.CreateThumbnail(imagePath, thumbPath, args.ThumbnailWidth); err != nil {
			return nil, err
		}
		uc.console.LogSuccess("Thumbnail saved: %s", thumbPath)
		result.ThumbnailPath = thumbPath
	}

	generatedAt := uc.now().UTC().Format("2006-01-02T15:04:05.000Z")
	caption := BuildCaption(stats, uc.pickEmoji(), args.CaptionLanguage)

	metadataPath, err := uc.saveMetadata(stats, caption, generatedAt, result.RunID, args)
	if err != nil {
		return nil, err
	}
	result.MetadataPath = metadataPath

	if args.ReportName != "" {
		report := entity.ProgressReport{
			GeneratedAt: generatedAt,
			RunID:       result.RunID,
			GoalName:    stats.GoalName,
			GoalTarget:  entity.Number(stats.Target),
			TotalSaved:  entity.Number(stats.TotalSaved),
			Percentage:  entity.Number(stats.Percentage),
			Remaining:   entity.Number(stats.Remaining),
			Entries:     data.Entries,
			Caption:     caption,
		}
		result.ReportPaths = uc.exportReports(report, args)
	}

	if args.S3Bucket != "" {
		keys, err := uc.publish(ctx, result, args)
		if err != nil {
			return nil, err
		}
		result.PublishedKeys = keys
	}

	uc.console.Println("✅ Pinterest post generation completed!")
	return result, nil
}

// generateImage solicita a imagem e, em caso de sucesso, escreve a saída de CI.
func (uc *PostUseCase) generateImage(ctx context.Context, stats entity.Statistics, args *types.CLIArgs) (string, error) {
	prompt := BuildPrompt(stats, args.ImageWidth, args.ImageHeight)
	imageURL := BuildImageURL(args.ImageBaseURL, prompt, args.ImageWidth, args.ImageHeight, args.ImageModel)
	outputPath := filepath.Join(args.OutputDir, ImageFileName)

	uc.console.LogInfo("Generating image with Pollinations.ai...")
	uc.console.LogDebug("Image URL: %s", imageURL)

	status := uc.console.Status("Downloading image...")
	written, err := uc.imageRepo.DownloadImage(ctx, imageURL, outputPath)
	status.Stop()
	if err != nil {
		uc.console.LogError("Error generating image: %s", err)
		return "", fmt.Errorf("error generating image: %w", err)
	}

	uc.console.LogSuccess("Image saved successfully!")
	uc.console.LogDebug("Wrote %d bytes to %s", written, outputPath)

	if ciOutput := uc.getenv(CIOutputEnv); ciOutput != "" {
		out := entity.CIOutput{
			TotalSaved: format.Number(stats.TotalSaved),
			GoalName:   stats.GoalName,
			ImageURL:   imageURL,
			Percentage: format.Number(stats.Percentage),
		}
		if err := uc.exportRepo.AppendCIOutput(out, ciOutput); err != nil {
			return "", err
		}
		uc.console.LogDebug("Appended outputs to %s", ciOutput)
	}

	return outputPath, nil
}

func (uc *PostUseCase) saveMetadata(stats entity.Statistics, caption, generatedAt, runID string, args *types.CLIArgs) (string, error) {
	metadata := entity.Metadata{
		GeneratedAt: generatedAt,
		RunID:       runID,
		TotalSaved:  entity.Number(stats.TotalSaved),
		GoalName:    stats.GoalName,
		GoalTarget:  entity.Number(stats.Target),
		Percentage:  entity.Number(stats.Percentage),
		Remaining:   entity.Number(stats.Remaining),
		Caption:     caption,
		ImageURL:    BuildMetadataImageURL(args.ImageBaseURL, stats.GoalName, args.ImageWidth, args.ImageHeight),
	}

	metadataPath, err := uc.exportRepo.WriteMetadata(metadata, filepath.Join(args.OutputDir, MetadataFileName))
	if err != nil {
		return "", err
	}

	uc.console.LogSuccess("Metadata saved!")
	return metadataPath, nil
}

// exportReports segue o padrão de exportação: falhas são registradas e não interrompem a execução.
func (uc *PostUseCase) exportReports(report entity.ProgressReport, args *types.CLIArgs) []string {
	var paths []string
	for _, reportType := range args.ReportType {
		var (
			exportPath string
			err        error
		)
		switch reportType {
		case "csv":
			exportPath, err = uc.exportRepo.ExportReportToCSV(report, args.ReportName, args.OutputDir)
		case "json":
			exportPath, err = uc.exportRepo.ExportReportToJSON(report, args.ReportName, args.OutputDir)
		case "pdf":
			exportPath, err = uc.exportRepo.ExportReportToPDF(report, args.ReportName, args.OutputDir)
		default:
			uc.console.LogWarning("Skipping unsupported report type: %s", reportType)
			continue
		}

		if err != nil {
			uc.console.LogError("Failed to export progress report to %s: %s", reportType, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported progress report to %s: %s", reportType, exportPath)
		paths = append(paths, exportPath)
	}
	return paths
}

func (uc *PostUseCase) publish(ctx context.Context, result *entity.PostResult, args *types.CLIArgs) ([]string, error) {
	if accountID, err := uc.publishRepo.GetAccountID(ctx, args.Profile, args.Region); err != nil {
		uc.console.LogWarning("Could not resolve AWS account: %s", err)
	} else {
		uc.console.LogInfo("Publishing to s3://%s using account %s", args.S3Bucket, accountID)
	}

	files := []string{result.ImagePath, result.MetadataPath}
	if result.ThumbnailPath != "" {
		files = append(files, result.ThumbnailPath)
	}
	files = append(files, result.ReportPaths...)

	prefix := path.Join(args.S3Prefix, result.RunID)
	keys, err := uc.publishRepo.PublishFiles(ctx, args.Profile, args.Region, args.S3Bucket, prefix, files)
	if err != nil {
		return nil, fmt.Errorf("error publishing artifacts: %w", err)
	}

	uc.console.LogSuccess("Published %d files to s3://%s/%s", len(keys), args.S3Bucket, prefix)
	return keys, nil
}

func (uc *PostUseCase) pickEmoji() string {
	return Emojis[uc.randIntn(len(Emojis))]
}

// displaySummary exibe a tabela de estatísticas e a barra de progresso do objetivo.
func (uc *PostUseCase) displaySummary(data *entity.SavingsData, stats entity.Statistics) {
	table := uc.console.CreateTable()
	table.AddColumn("Metric")
	table.AddColumn("Value")
	table.AddRow("Goal", stats.GoalName)
	table.AddRow("Entries", len(data.Entries))
	table.AddRow("Total Saved", "₺"+format.Money(stats.TotalSaved))
	table.AddRow("Target", "₺"+format.Money(stats.Target))
	table.AddRow("Remaining", "₺"+format.Money(stats.Remaining))
	table.AddRow("Progress", format.Number(stats.Percentage)+"%")
	uc.console.Println(table.Render())

	uc.console.DisplayGoalProgress(stats.GoalName, stats.Percentage)
}

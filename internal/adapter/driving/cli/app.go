package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/savings-post-go/internal/application/usecase"
	"github.com/diillson/savings-post-go/internal/domain/repository"
	"github.com/diillson/savings-post-go/internal/shared/types"
	"github.com/diillson/savings-post-go/pkg/version"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	defaultInput        = "savings-data.json"
	defaultOutputDir    = "output"
	defaultImageBaseURL = "https://image.pollinations.ai/prompt/"
	defaultImageWidth   = 1000
	defaultImageHeight  = 1500
	defaultImageModel   = "flux"
)

var supportedReportTypes = map[string]bool{"csv": true, "json": true, "pdf": true}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd     *cobra.Command
	postUseCase *usecase.PostUseCase
	configRepo  repository.ConfigRepository
	version     string
	getenv      func(key string) string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
		getenv:  os.Getenv,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "savings-post",
		Short:         "Generate a Pinterest-ready savings progress post",
		Long:          "Reads savings-data.json, computes progress towards the current goal, downloads a generated image and writes the post metadata.",
		Version:       formattedVersion,
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Savings Post version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("input", "i", defaultInput, "Path to the savings data JSON file")
	flags.StringP("dir", "d", defaultOutputDir, "Directory for the image, metadata and reports")
	flags.String("image-base-url", defaultImageBaseURL, "Base URL of the image generation service")
	flags.Int("width", defaultImageWidth, "Generated image width in pixels")
	flags.Int("height", defaultImageHeight, "Generated image height in pixels")
	flags.String("model", defaultImageModel, "Image generation model")
	flags.Duration("timeout", 0, "Overall timeout for the run, e.g. 2m (default: no timeout)")
	flags.StringP("caption-language", "l", usecase.CaptionLanguageEnglish, "Caption language: en, tr")
	flags.StringP("report-name", "n", "", "Base name for progress report files (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Progress report types: csv, json, pdf")
	flags.Int("thumbnail-width", 0, "Also save a thumbnail of this width (0 disables)")
	flags.String("s3-bucket", "", "Upload the generated files to this S3 bucket")
	flags.String("s3-prefix", "", "Key prefix for uploaded files")
	flags.StringP("profile", "p", "", "AWS profile used for uploads")
	flags.StringP("region", "r", "", "AWS region used for uploads")
	flags.BoolP("quiet", "q", false, "Skip the banner and summary table")
	flags.BoolP("verbose", "v", false, "Print debug messages")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	f := app.rootCmd.Flags()

	configFile, _ := f.GetString("config-file")
	input, _ := f.GetString("input")
	dir, _ := f.GetString("dir")
	imageBaseURL, _ := f.GetString("image-base-url")
	width, _ := f.GetInt("width")
	height, _ := f.GetInt("height")
	model, _ := f.GetString("model")
	timeout, _ := f.GetDuration("timeout")
	captionLanguage, _ := f.GetString("caption-language")
	reportName, _ := f.GetString("report-name")
	reportType, _ := f.GetStringSlice("report-type")
	thumbnailWidth, _ := f.GetInt("thumbnail-width")
	s3Bucket, _ := f.GetString("s3-bucket")
	s3Prefix, _ := f.GetString("s3-prefix")
	profile, _ := f.GetString("profile")
	region, _ := f.GetString("region")
	quiet, _ := f.GetBool("quiet")
	verbose, _ := f.GetBool("verbose")

	args := &types.CLIArgs{
		ConfigFile:      configFile,
		Input:           input,
		OutputDir:       dir,
		ImageBaseURL:    imageBaseURL,
		ImageWidth:      width,
		ImageHeight:     height,
		ImageModel:      model,
		ImageTimeout:    timeout,
		CaptionLanguage: captionLanguage,
		ReportName:      reportName,
		ReportType:      reportType,
		ThumbnailWidth:  thumbnailWidth,
		S3Bucket:        s3Bucket,
		S3Prefix:        s3Prefix,
		Profile:         profile,
		Region:          region,
		Quiet:           quiet,
		Verbose:         verbose,
	}

	if configFile != "" {
		if app.configRepo == nil {
			return nil, fmt.Errorf("config file given but no config repository is set")
		}
		cfg, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		if err := app.mergeConfig(args, cfg); err != nil {
			return nil, err
		}
	}

	if err := validateArgs(args); err != nil {
		return nil, err
	}

	return args, nil
}

// mergeConfig aplica valores do arquivo de configuração aos flags não informados explicitamente.
func (app *CLIApp) mergeConfig(args *types.CLIArgs, cfg *types.Config) error {
	f := app.rootCmd.Flags()
	unset := func(name string) bool { return !f.Changed(name) }

	if unset("input") && cfg.Input != "" {
		args.Input = cfg.Input
	}
	if unset("dir") && cfg.OutputDir != "" {
		args.OutputDir = cfg.OutputDir
	}
	if unset("image-base-url") && cfg.ImageBaseURL != "" {
		args.ImageBaseURL = cfg.ImageBaseURL
	}
	if unset("width") && cfg.ImageWidth != 0 {
		args.ImageWidth = cfg.ImageWidth
	}
	if unset("height") && cfg.ImageHeight != 0 {
		args.ImageHeight = cfg.ImageHeight
	}
	if unset("model") && cfg.ImageModel != "" {
		args.ImageModel = cfg.ImageModel
	}
	if unset("timeout") && cfg.ImageTimeout != "" {
		d, err := time.ParseDuration(cfg.ImageTimeout)
		if err != nil {
			return fmt.Errorf("invalid image_timeout %q: %w", cfg.ImageTimeout, err)
		}
		args.ImageTimeout = d
	}
	if unset("caption-language") && cfg.CaptionLanguage != "" {
		args.CaptionLanguage = cfg.CaptionLanguage
	}
	if unset("report-name") && cfg.ReportName != "" {
		args.ReportName = cfg.ReportName
	}
	if unset("report-type") && len(cfg.ReportType) > 0 {
		args.ReportType = cfg.ReportType
	}
	if unset("thumbnail-width") && cfg.ThumbnailWidth != 0 {
		args.ThumbnailWidth = cfg.ThumbnailWidth
	}
	if unset("s3-bucket") && cfg.S3Bucket != "" {
		args.S3Bucket = cfg.S3Bucket
	}
	if unset("s3-prefix") && cfg.S3Prefix != "" {
		args.S3Prefix = cfg.S3Prefix
	}
	if unset("profile") && cfg.Profile != "" {
		args.Profile = cfg.Profile
	}
	if unset("region") && cfg.Region != "" {
		args.Region = cfg.Region
	}
	return nil
}

func validateArgs(args *types.CLIArgs) error {
	if args.ImageWidth <= 0 || args.ImageHeight <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", args.ImageWidth, args.ImageHeight)
	}
	if args.ThumbnailWidth < 0 {
		return fmt.Errorf("thumbnail width must not be negative, got %d", args.ThumbnailWidth)
	}
	if !usecase.SupportedCaptionLanguage(args.CaptionLanguage) {
		return fmt.Errorf("unsupported caption language: %s", args.CaptionLanguage)
	}
	for i, reportType := range args.ReportType {
		reportType = strings.ToLower(strings.TrimSpace(reportType))
		if !supportedReportTypes[reportType] {
			return fmt.Errorf("%w: %s", types.ErrUnsupportedReportType, reportType)
		}
		args.ReportType[i] = reportType
	}
	if args.ImageTimeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", args.ImageTimeout)
	}
	if args.OutputDir == "" {
		args.OutputDir = "."
	}
	args.OutputDir = filepath.Clean(args.OutputDir)
	return nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if cliArgs.Verbose {
		pterm.EnableDebugMessages()
	}

	if !cliArgs.Quiet {
		displayWelcomeBanner()
	}
	if app.shouldCheckLatestVersion(cliArgs) {
		go version.CheckLatestVersion(app.version)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cliArgs.ImageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cliArgs.ImageTimeout)
		defer cancel()
	}

	_, err = app.postUseCase.RunPost(ctx, cliArgs)
	return err
}

// shouldCheckLatestVersion consulta o GitHub apenas em execuções interativas.
// CI runs (CI or GITHUB_OUTPUT set) make no request besides the image download.
func (app *CLIApp) shouldCheckLatestVersion(args *types.CLIArgs) bool {
	if args.Quiet {
		return false
	}
	return app.getenv("CI") == "" && app.getenv(usecase.CIOutputEnv) == ""
}

// SetPostUseCase sets the post use case for the CLI app.
func (app *CLIApp) SetPostUseCase(useCase *usecase.PostUseCase) {
	app.postUseCase = useCase
}

// SetConfigRepository sets the repository used to read --config-file.
func (app *CLIApp) SetConfigRepository(configRepo repository.ConfigRepository) {
	app.configRepo = configRepo
}

package main

import (
	"fmt"
	"os"

	"github.com/diillson/savings-post-go/internal/adapter/driven/aws"
	"github.com/diillson/savings-post-go/internal/adapter/driven/config"
	"github.com/diillson/savings-post-go/internal/adapter/driven/export"
	"github.com/diillson/savings-post-go/internal/adapter/driven/imagegen"
	"github.com/diillson/savings-post-go/internal/adapter/driven/savings"
	"github.com/diillson/savings-post-go/internal/adapter/driving/cli"
	"github.com/diillson/savings-post-go/internal/application/usecase"
	"github.com/diillson/savings-post-go/pkg/console"
	"github.com/diillson/savings-post-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	savingsRepo := savings.NewSavingsRepository()
	imageRepo := imagegen.NewImageRepository()
	exportRepo := export.NewExportRepository()
	publishRepo := aws.NewAWSRepository()
	consoleImpl := console.NewConsole()

	postUseCase := usecase.NewPostUseCase(
		savingsRepo,
		imageRepo,
		exportRepo,
		publishRepo,
		consoleImpl,
	)

	app.SetPostUseCase(postUseCase)
	app.SetConfigRepository(config.NewConfigRepository())

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}

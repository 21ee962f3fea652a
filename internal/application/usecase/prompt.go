package usecase

import (
	"fmt"

	"github.com/diillson/savings-post-go/internal/domain/entity"
	"github.com/diillson/savings-post-go/pkg/format"
)

// BuildPrompt monta o texto enviado ao serviço de geração de imagem.
func BuildPrompt(stats entity.Statistics, width, height int) string {
	return "Professional financial infographic showing savings progress. " +
		fmt.Sprintf("Turkish Lira currency symbol ₺%s saved towards ₺%s. ", format.Number(stats.TotalSaved), format.Number(stats.Target)) +
		fmt.Sprintf("Goal: %s. Progress bar showing %s%%. ", stats.GoalName, format.Number(stats.Percentage)) +
		"Modern, clean design with blue and gold colors. " +
		fmt.Sprintf("Pinterest style vertical image %dx%dpx. ", width, height) +
		"Motivational savings tracker aesthetic"
}

// BuildImageURL returns the request URL for prompt against baseURL.
func BuildImageURL(baseURL, prompt string, width, height int, model string) string {
	return fmt.Sprintf("%s%s?width=%d&height=%d&nologo=true&model=%s",
		baseURL, format.EncodeURIComponent(prompt), width, height, format.EncodeURIComponent(model))
}

// BuildMetadataImageURL returns the shorter URL recorded in metadata.json.
func BuildMetadataImageURL(baseURL, goalName string, width, height int) string {
	return fmt.Sprintf("%s%s?width=%d&height=%d&nologo=true",
		baseURL, format.EncodeURIComponent("savings progress "+goalName), width, height)
}

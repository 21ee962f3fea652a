package usecase

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://image.pollinations.ai/prompt/"

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(ComputeStatistics(sampleData()), 1000, 1500)

	assert.Equal(t, "Professional financial infographic showing savings progress. "+
		"Turkish Lira currency symbol ₺350 saved towards ₺1000. "+
		"Goal: Emergency Fund. Progress bar showing 35%. "+
		"Modern, clean design with blue and gold colors. "+
		"Pinterest style vertical image 1000x1500px. "+
		"Motivational savings tracker aesthetic", prompt)
}

func TestBuildImageURL(t *testing.T) {
	prompt := BuildPrompt(ComputeStatistics(sampleData()), 1000, 1500)

	raw := BuildImageURL(testBaseURL, prompt, 1000, 1500, "flux")

	require.True(t, strings.HasPrefix(raw, testBaseURL+"Professional%20financial%20infographic"))
	assert.True(t, strings.HasSuffix(raw, "?width=1000&height=1500&nologo=true&model=flux"))
	assert.NotContains(t, raw, " ")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/prompt/"+prompt, parsed.Path)
	assert.Equal(t, "flux", parsed.Query().Get("model"))
	assert.Equal(t, "true", parsed.Query().Get("nologo"))
}

func TestBuildMetadataImageURL(t *testing.T) {
	raw := BuildMetadataImageURL(testBaseURL, "Emergency Fund", 1000, 1500)

	assert.Equal(t, testBaseURL+"savings%20progress%20Emergency%20Fund?width=1000&height=1500&nologo=true", raw)
}

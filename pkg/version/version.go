package version

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Valores padrão (sobrescritos por ldflags ou por build info)
var Version = "0.0.0-dev"
var Commit = ""
var BuildTime = ""

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		applyBuildInfo(bi)
	}
}

// applyBuildInfo preenche Version/Commit/BuildTime a partir das configurações vcs.* do build.
// Values injected through ldflags win.
func applyBuildInfo(bi *debug.BuildInfo) {
	if Version != "" && Version != "0.0.0-dev" {
		return
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if rev := settings["vcs.revision"]; Commit == "" && len(rev) >= 7 {
		Commit = rev[:7]
	}

	if t := settings["vcs.time"]; BuildTime == "" && t != "" {
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	// go install ...@vX.Y.Z grava a versão do módulo; builds locais ficam com "(devel)".
	if mv := bi.Main.Version; mv != "" && mv != "(devel)" {
		Version = strings.TrimPrefix(mv, "v")
	}

	if strings.EqualFold(settings["vcs.modified"], "true") && Version != "0.0.0-dev" {
		Version += "-dirty"
	}
}

// releasesURL aponta para a última release publicada; variável para permitir testes.
var releasesURL = "https://api.github.com/repos/diillson/savings-post-go/releases/latest"

// LatestVersion consulta a última release publicada e retorna a versão sem o prefixo "v".
func LatestVersion() (string, error) {
	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(releasesURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.Unmarshal(body, &release); err != nil {
		return "", err
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}

// CheckLatestVersion verifica se uma versão mais recente está disponível.
func CheckLatestVersion(currentVersion string) {
	// Versões dev não são verificadas
	if strings.HasSuffix(currentVersion, "-dev") {
		return
	}

	latestVersion, err := LatestVersion()
	if err != nil || latestVersion == "" {
		return
	}

	// Compara versões (heurística simples)
	if latestVersion > currentVersion {
		pterm.Warning.Println(fmt.Sprintf("A new version of Savings Post is available: %s", latestVersion))
		pterm.Info.Println("Please update using: go install github.com/diillson/savings-post-go/cmd/savings-post@latest")
	}
}

// FormatVersion retorna a versão formatada com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
// Fallbacks: quando não há ldflags, usamos os valores populados via build info.
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = "0.0.0-dev"
	}

	commit := Commit
	if commit == "" {
		commit = "development"
	}

	// Quando commit é "development", exibimos "(development)" para clareza
	if commit == "development" && BuildTime == "" {
		return fmt.Sprintf("%s (development)", ver)
	}

	if BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
	}

	return fmt.Sprintf("%s (commit: %s)", ver, commit)
}

package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/diillson/savings-post-go/internal/domain/entity"
	"github.com/diillson/savings-post-go/internal/shared/types"
)

type fakeConsole struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
	success  []string
	printed  []string
}

func (c *fakeConsole) record(dst *[]string, format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	*dst = append(*dst, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Print(a ...interface{})                 { c.record(&c.printed, "%s", fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { c.record(&c.printed, format, a...) }
func (c *fakeConsole) Println(a ...interface{})               { c.record(&c.printed, "%s", fmt.Sprint(a...)) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.record(&c.infos, format, a...)
}
func (c *fakeConsole) LogDebug(format string, a ...interface{}) {}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.record(&c.warnings, format, a...)
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.record(&c.errors, format, a...)
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.record(&c.success, format, a...)
}
func (c *fakeConsole) Status(message string) types.StatusHandle { return fakeStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface        { return &fakeTable{} }
func (c *fakeConsole) DisplayGoalProgress(goalName string, percentage float64) {}

type fakeStatus struct{}

func (fakeStatus) Update(message string) {}
func (fakeStatus) Stop()                 {}

type fakeTable struct{ rows [][]interface{} }

func (t *fakeTable) AddColumn(name string, options ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{})                   { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                                { return fmt.Sprint(t.rows) }

type fakeSavingsRepo struct {
	data *entity.SavingsData
	err  error
}

func (r *fakeSavingsRepo) LoadSavingsData(filePath string) (*entity.SavingsData, error) {
	return r.data, r.err
}

// fakeImageRepo grava um conteúdo fixo no caminho pedido.
type fakeImageRepo struct {
	urls       []string
	err        error
	thumbCalls int
}

func (r *fakeImageRepo) DownloadImage(ctx context.Context, imageURL, outputPath string) (int64, error) {
	r.urls = append(r.urls, imageURL)
	if r.err != nil {
		return 0, r.err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return 0, err
	}
	return 3, os.WriteFile(outputPath, []byte("img"), 0o644)
}

func (r *fakeImageRepo) CreateThumbnail(srcPath, dstPath string, width int) error {
	r.thumbCalls++
	return os.WriteFile(dstPath, []byte("thumb"), 0o644)
}

type fakePublishRepo struct {
	prefix string
	paths  []string
	err    error
}

func (r *fakePublishRepo) GetAccountID(ctx context.Context, profile, region string) (string, error) {
	return "123456789012", nil
}

func (r *fakePublishRepo) PublishFiles(ctx context.Context, profile, region, bucket, prefix string, paths []string) ([]string, error) {
	r.prefix = prefix
	r.paths = paths
	if r.err != nil {
		return nil, r.err
	}
	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = prefix + "/" + filepath.Base(p)
	}
	return keys, nil
}

package console

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/diillson/savings-post-go/internal/shared/types"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogDebug só aparece com pterm.EnableDebugMessages (flag --verbose).
func (c *Console) LogDebug(format string, a ...interface{}) {
	pterm.Debug.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro na saída de erro padrão.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.WithWriter(os.Stderr).Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// progressBar monta a barra de progresso textual; width é o número de células.
func progressBar(percentage float64, width int) string {
	if math.IsNaN(percentage) || math.IsInf(percentage, 0) {
		return strings.Repeat("░", width)
	}
	filled := int(math.Round(math.Max(0, math.Min(percentage, 100)) / 100 * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// DisplayGoalProgress exibe a barra de progresso do objetivo dentro de um painel.
func (c *Console) DisplayGoalProgress(goalName string, percentage float64) {
	bar := progressBar(percentage, 40)

	var label string
	switch {
	case math.IsNaN(percentage) || math.IsInf(percentage, 0):
		label = pterm.FgRed.Sprint("N/A")
		bar = pterm.FgRed.Sprint(bar)
	case percentage >= 100:
		label = BrightGreen(fmt.Sprintf("%.0f%%", percentage))
		bar = pterm.FgGreen.Sprint(bar)
	case percentage >= 50:
		label = BrightCyan(fmt.Sprintf("%.0f%%", percentage))
		bar = pterm.FgCyan.Sprint(bar)
	default:
		label = BrightYellow(fmt.Sprintf("%.0f%%", percentage))
		bar = pterm.FgYellow.Sprint(bar)
	}

	panel := pterm.DefaultBox.
		WithTitle(goalName).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(bar + "  " + label)

	fmt.Println("\n" + panel)
}

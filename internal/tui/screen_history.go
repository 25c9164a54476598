package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-material-keeper/internal/accounting"
	"github.com/MKhiriev/go-material-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const historyDateLayout = "2006-01-02 15:04"

func newHistoryTable() table.Model {
	columns := []table.Column{
		{Title: "Дата", Width: 16},
		{Title: "Начально", Width: 10},
		{Title: "На изделие", Width: 10},
		{Title: "Использовано", Width: 12},
		{Title: "Остаток", Width: 10},
		{Title: "Изделий", Width: 8},
	}

	return table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
}

// historyRows recomputes the report of every record. A record whose report
// cannot be computed is shown with dashes.
func historyRows(records []models.MaterialRecord) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, record := range records {
		remaining, products := "-", "-"
		if report, err := accounting.Compute(record.MaterialInput); err == nil {
			remaining = report.RemainingMaterial.String()
			if report.LowMaterialAlert {
				remaining += " !"
			}
			products = strconv.FormatInt(report.PossibleProducts, 10)
		}

		rows = append(rows, table.Row{
			record.CreatedAt.Local().Format(historyDateLayout),
			record.InitialMaterial.String(),
			record.MaterialPerProduct.String(),
			record.MaterialUsed.String(),
			remaining,
			products,
		})
	}
	return rows
}

func (m mainLoopModel) openHistory() (tea.Model, tea.Cmd) {
	m.screen = screenHistory
	m.errMsg = ""
	m.loadingHistory = true
	return m, tea.Batch(m.spinner.Tick, m.cmdLoadHistory())
}

func (m mainLoopModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			m.screen = screenForm
			return m, nil
		case key.Matches(keyMsg, keys.refresh):
			if m.loadingHistory {
				return m, nil
			}
			return m.openHistory()
		}
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m mainLoopModel) historyView() string {
	var b strings.Builder

	switch {
	case m.loadingHistory:
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	case m.historyCount == 0:
		b.WriteString("Записей пока нет")
	default:
		b.WriteString(m.history.View())
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Всего записей: %d │ ! остаток меньше %d", m.historyCount, accounting.LowMaterialThreshold))
	}

	return renderPage("ИСТОРИЯ", b.String(), "↑/↓: прокрутка │ r: обновить │ esc: к расчёту │ F4: выйти из аккаунта")
}

func (m mainLoopModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	materials := m.services.MaterialService

	return func() tea.Msg {
		records, err := materials.History(ctx)
		return historyLoadedMsg{records: records, err: err}
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-material-keeper/internal/accounting"
	"github.com/MKhiriev/go-material-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopy(formatReport(m.submission))
	case key.Matches(keyMsg, keys.newCalc), key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
		m.inputs = newMaterialInputs()
		m.focus = 0
		m.status = ""
		m.errMsg = ""
		m.screen = screenForm
	}

	return m, nil
}

func (m mainLoopModel) resultView() string {
	report := m.submission.Report

	var b strings.Builder
	b.WriteString("Остаток материала:            ")
	b.WriteString(valueStyle.Render(report.RemainingMaterial.String()))
	b.WriteString("\n")
	b.WriteString("Возможное количество изделий: ")
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d", report.PossibleProducts)))
	b.WriteString("\n")

	if report.LowMaterialAlert {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(lowMaterialMessage()))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РЕЗУЛЬТАТ", strings.TrimRight(b.String(), "\n"),
		"c: копировать │ n/esc: новый расчёт │ F2: история │ F4: выйти из аккаунта")
}

func lowMaterialMessage() string {
	return fmt.Sprintf("Внимание: материала осталось меньше %d", accounting.LowMaterialThreshold)
}

// formatReport is the plain-text report put on the clipboard.
func formatReport(s models.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Начальный материал: %s\n", s.Record.InitialMaterial)
	fmt.Fprintf(&b, "Материал на изделие: %s\n", s.Record.MaterialPerProduct)
	fmt.Fprintf(&b, "Использовано материала: %s\n", s.Record.MaterialUsed)
	fmt.Fprintf(&b, "Остаток материала: %s\n", s.Report.RemainingMaterial)
	fmt.Fprintf(&b, "Возможное количество изделий: %d", s.Report.PossibleProducts)
	if s.Report.LowMaterialAlert {
		b.WriteString("\n")
		b.WriteString(lowMaterialMessage())
	}
	return b.String()
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

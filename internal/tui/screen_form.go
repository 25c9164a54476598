package tui

import (
	"strings"

	"github.com/MKhiriev/go-material-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var materialLabels = []string{
	"Начальный материал    ",
	"Материал на изделие   ",
	"Использовано материала",
}

func newMaterialInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(materialLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = "0"
		inputs[i].CharLimit = 64
		inputs[i].Width = 24
	}
	inputs[0].Focus()
	return inputs
}

func (m mainLoopModel) materialForm() models.MaterialForm {
	return models.MaterialForm{
		InitialMaterial:    models.RawNumber(m.inputs[0].Value()),
		MaterialPerProduct: models.RawNumber(m.inputs[1].Value()),
		MaterialUsed:       models.RawNumber(m.inputs[2].Value()),
	}
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focus = moveFocus(m.inputs, m.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focus = moveFocus(m.inputs, m.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, tea.Batch(m.spinner.Tick, m.cmdSubmit(m.materialForm()))
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) formView() string {
	var b strings.Builder
	b.WriteString("Пользователь: ")
	b.WriteString(m.session.Login)
	b.WriteString("\n\n")
	b.WriteString("Поле                   │ Значение\n")
	b.WriteString("───────────────────────┼──────────────────────────────\n")
	for i, label := range materialLabels {
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Сохранение...\n")
	} else {
		b.WriteString("\n[Рассчитать]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РАСЧЁТ МАТЕРИАЛА", strings.TrimRight(b.String(), "\n"),
		"enter: рассчитать │ tab: след. поле │ F2: история │ F3: о программе │ F4: выйти из аккаунта")
}

func (m mainLoopModel) cmdSubmit(form models.MaterialForm) tea.Cmd {
	ctx := m.ctx
	materials := m.services.MaterialService

	return func() tea.Msg {
		submission, err := materials.Submit(ctx, form)
		return submitDoneMsg{submission: submission, err: err}
	}
}

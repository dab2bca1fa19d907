package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/tally/internal/services/record"
	"github.com/thenoetrevino/tally/internal/tui/state"
)

// View is the main view dispatcher that renders the current state of the application.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderBody(),
		m.renderStatusBar(),
	)
	return view
}

func (m Model) renderHeader() string {
	ds := m.AppState.Dataset()
	if ds == nil {
		return m.styles.Title.Render("tally") + " " + m.styles.Subtle.Render(m.datasetID.String())
	}
	return m.styles.Title.Render(ds.Program.Name) + m.styles.Subtle.Render(" / ") + m.styles.Subtitle.Render(ds.Name)
}

func (m Model) renderBody() string {
	switch m.UiState.Mode() {
	case state.LoadingMode:
		return m.spinner.View() + " Loading dataset..."
	case state.ErrorMode:
		return m.renderError()
	case state.RecordFormMode:
		return m.renderForm()
	case state.DeleteConfirmMode:
		if m.deleteForm == nil {
			return ""
		}
		return m.styles.DeleteBox.Render(m.deleteForm.View())
	case state.ResultMode:
		return m.renderResult()
	case state.HelpMode:
		return m.styles.TableBox.Render(
			m.styles.Title.Render("Keys") + "\n\n" + m.help.FullHelpView(m.keys.FullHelp()),
		)
	}
	return m.renderTable()
}

func (m Model) renderTable() string {
	if len(m.AppState.Records()) == 0 {
		hint := fmt.Sprintf("No records yet. Press %s to add one.", m.Config.KeyMappings.AddRecord)
		return m.styles.TableBox.Render(m.styles.Subtle.Render(hint))
	}
	return m.styles.TableBox.Render(m.table.View())
}

// renderError is the blocking view shown while the dataset cannot be loaded
func (m Model) renderError() string {
	var b strings.Builder
	b.WriteString(m.styles.Error.Render("Could not load dataset"))
	b.WriteString("\n\n")
	b.WriteString(wordwrap.String(m.ErrorState.Get(), m.formWidth()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%s retry · %s quit",
		m.Config.KeyMappings.Refresh, m.Config.KeyMappings.Quit)))
	return m.styles.ErrorBox.Render(b.String())
}

func (m Model) renderForm() string {
	if m.form == nil {
		return ""
	}

	var b strings.Builder
	if m.ResultState.Status() == state.StatusFailure && m.ResultState.Err() != nil {
		b.WriteString(m.styles.Error.Render(wordwrap.String("Not saved: "+m.ResultState.Err().Error(), m.formWidth())))
		b.WriteString("\n\n")
	}
	b.WriteString(m.form.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("enter next · esc cancel"))
	return m.styles.FormBox.Render(b.String())
}

func (m Model) renderResult() string {
	keys := m.Config.KeyMappings

	switch m.ResultState.Status() {
	case state.StatusPending:
		return m.styles.FormBox.Render(m.spinner.View() + " Saving...")

	case state.StatusSuccess:
		msg := "Saved"
		if n, ok := m.NotificationState.Latest(); ok {
			msg = n.Message
		}
		hint := fmt.Sprintf("%s add another · enter back to dataset", keys.AddAnother)
		return m.styles.FormBox.Render(m.styles.Success.Render("✓ "+msg) + "\n\n" + m.styles.Subtle.Render(hint))

	case state.StatusFailure:
		var b strings.Builder
		b.WriteString(m.styles.Error.Render(wordwrap.String("✗ "+m.ResultState.Err().Error(), m.formWidth())))
		b.WriteString("\n\n")
		var refreshErr *record.RefreshError
		if errors.As(m.ResultState.Err(), &refreshErr) {
			b.WriteString(m.styles.Warning.Render("The change was saved; the table may be out of date."))
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%s reload · enter back to dataset", keys.Refresh)))
		return m.styles.ErrorBox.Render(b.String())
	}
	return ""
}

func (m Model) renderStatusBar() string {
	mode := m.styles.StatusMode.Render(m.UiState.Mode().String())

	var note string
	if n, ok := m.NotificationState.Latest(); ok {
		switch n.Level {
		case state.LevelError:
			note = m.styles.Error.Render(n.Message)
		case state.LevelWarning:
			note = m.styles.Warning.Render(n.Message)
		default:
			note = m.styles.Info.Render(n.Message)
		}
	}
	if m.loading && m.UiState.Mode() != state.LoadingMode {
		note = m.spinner.View() + " reloading"
	}

	line := mode + " " + note
	if m.UiState.Mode() == state.TableMode {
		line += "  " + m.help.View(m.keys)
	}
	return m.styles.StatusBar.Render(line)
}

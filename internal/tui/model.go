// Package tui is the interactive data-entry view over one survey dataset:
// a records table, a create/update form, a delete confirmation and the
// outcome of each write.
package tui

import (
	"context"
	"strconv"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tally/internal/config"
	"github.com/thenoetrevino/tally/internal/converters"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/services/record"
	"github.com/thenoetrevino/tally/internal/tui/huhforms"
	"github.com/thenoetrevino/tally/internal/tui/state"
	"github.com/thenoetrevino/tally/internal/types"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx     context.Context
	Service record.Service
	Config  *config.Config

	AppState          *state.AppState
	UiState           *state.UIState
	ResultState       *state.ResultState
	ErrorState        *state.ErrorState
	NotificationState *state.NotificationState

	// RecordForm is the create or update form while one is open
	RecordForm *state.RecordForm
	formValues *huhforms.RecordFormValues
	form       *huh.Form

	deleteForm    *huh.Form
	deleteConfirm *bool
	deleteTarget  types.RecordID

	// pendingOp names the write in flight, empty when idle
	pendingOp string
	loading   bool
	datasetID types.DatasetID

	table   table.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	styles  Styles
}

// InitialModel creates the TUI model for one dataset. Nothing is fetched
// until Init runs.
func InitialModel(ctx context.Context, svc record.Service, cfg *config.Config, datasetID types.DatasetID) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	styles := NewStyles(cfg.ColorScheme)

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(styles.Table),
	)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorScheme.Accent))

	return Model{
		Ctx:               ctx,
		Service:           svc,
		Config:            cfg,
		AppState:          state.NewAppState(nil),
		UiState:           state.NewUIState(),
		ResultState:       state.NewResultState(),
		ErrorState:        state.NewErrorState(),
		NotificationState: state.NewNotificationState(),
		loading:           true,
		datasetID:         datasetID,
		table:             t,
		spinner:           sp,
		help:              help.New(),
		keys:              newKeyMap(cfg.KeyMappings),
		styles:            styles,
	}
}

// Init starts the first dataset load
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadDatasetCmd(m.Ctx, m.Service, m.datasetID))
}

// Loading reports whether a dataset fetch is in flight
func (m Model) Loading() bool {
	return m.loading
}

// selectedRecord returns the record under the table cursor, nil when the
// table is empty
func (m Model) selectedRecord() *models.Record {
	return m.AppState.RecordAt(m.UiState.SelectedRow())
}

// syncTable rebuilds the table columns and rows from AppState and keeps the
// cursor within the new row count
func (m *Model) syncTable() {
	countColumns := m.AppState.Columns()

	cols := make([]table.Column, 0, len(countColumns)+1)
	cols = append(cols, table.Column{Title: "Date", Width: len(models.DateLayout) + 2})
	for _, name := range countColumns {
		cols = append(cols, table.Column{Title: name, Width: max(len(name), 5) + 2})
	}

	rows := make([]table.Row, 0, len(m.AppState.Rows()))
	for _, r := range m.AppState.Rows() {
		row := make(table.Row, 0, len(cols))
		row = append(row, r.PublicationDate)
		for _, name := range countColumns {
			row = append(row, strconv.Itoa(r.Counts[name]))
		}
		rows = append(rows, row)
	}

	// rows must never be wider than the columns being rendered
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)

	m.UiState.SetSelectedRow(m.UiState.SelectedRow(), len(rows))
	if len(rows) > 0 {
		m.table.SetCursor(m.UiState.SelectedRow())
	}
}

// resize fits the table and any open form to the terminal
func (m *Model) resize() {
	m.table.SetHeight(m.UiState.ContentHeight())
	if w := m.UiState.Width() - 4; w > 0 {
		m.table.SetWidth(w)
	}
	if m.form != nil {
		m.form = m.form.WithWidth(m.formWidth())
	}
}

func (m Model) formWidth() int {
	return min(max(m.UiState.Width()-8, 30), 60)
}

// openCreateForm mounts a fresh create form. Category pairs come from the
// dataset's records, or from the configured scaffold when it has none.
func (m *Model) openCreateForm() tea.Cmd {
	scaffold := converters.ScaffoldEntries(m.AppState.Records(), m.Config.Scaffold)
	m.RecordForm = state.NewCreateForm(m.datasetID, scaffold, time.Now())
	return m.mountForm()
}

// openUpdateForm mounts a form prefilled from rec
func (m *Model) openUpdateForm(rec models.Record) tea.Cmd {
	form, err := state.NewUpdateForm(m.datasetID, rec)
	if err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return nil
	}
	m.RecordForm = form
	return m.mountForm()
}

// mountForm copies RecordForm into fresh input values and builds the huh form
func (m *Model) mountForm() tea.Cmd {
	entries := m.RecordForm.Entries()
	values := &huhforms.RecordFormValues{
		Date:   m.RecordForm.PublicationDate(),
		Counts: make([]string, len(entries)),
	}
	for i, e := range entries {
		values.Counts[i] = strconv.Itoa(e.Count)
	}
	m.formValues = values
	return m.buildForm()
}

// buildForm (re)creates the huh form over the current formValues, so edits
// survive a failed submission
func (m *Model) buildForm() tea.Cmd {
	title := "New record"
	if m.RecordForm.Mode() == state.FormModeUpdate {
		title = "Edit record"
	}

	m.form = huhforms.CreateRecordForm(m.formValues, huhforms.RecordFormOptions{
		Title:   title,
		Groups:  m.RecordForm.Groups(),
		IndexOf: m.RecordForm.IndexOf,
		ValidateDate: func(s string) error {
			_, err := models.ParseDate(s)
			return err
		},
		ValidateCount: func(s string) error {
			_, err := models.ParseCount(s)
			return err
		},
	}).WithTheme(huhforms.CreateTallyTheme(m.Config.ColorScheme)).WithWidth(m.formWidth())

	m.UiState.SetMode(state.RecordFormMode)
	return m.form.Init()
}

// closeForms drops any open form and returns to the table
func (m *Model) closeForms() {
	m.RecordForm = nil
	m.formValues = nil
	m.form = nil
	m.deleteForm = nil
	m.deleteConfirm = nil
	m.deleteTarget = ""
	m.UiState.SetMode(state.TableMode)
}

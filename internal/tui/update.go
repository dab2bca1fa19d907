package tui

import (
	"errors"
	"log/slog"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tally/internal/graphql"
	"github.com/thenoetrevino/tally/internal/services/record"
	"github.com/thenoetrevino/tally/internal/tui/huhforms"
	"github.com/thenoetrevino/tally/internal/tui/state"
)

// Update is the main update dispatcher. All state changes happen here;
// backend calls run as commands and report back with messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case datasetLoadedMsg:
		m.handleDatasetLoaded(msg)
		return m, nil

	case mutationDoneMsg:
		return m, m.handleMutationDone(msg)
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Forms need ALL messages, not just key presses
	switch m.UiState.Mode() {
	case state.RecordFormMode:
		return m, m.updateRecordForm(msg)
	case state.DeleteConfirmMode:
		return m, m.updateDeleteConfirm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.TableMode:
		return m, m.handleTableKeys(keyMsg)
	case state.ResultMode:
		return m, m.handleResultKeys(keyMsg)
	case state.ErrorMode:
		return m, m.handleErrorKeys(keyMsg)
	case state.HelpMode:
		if key.Matches(keyMsg, m.keys.Help, m.keys.Back, m.keys.Quit) {
			m.UiState.ExitHelp()
		}
		return m, nil
	case state.LoadingMode:
		if key.Matches(keyMsg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleDatasetLoaded merges a fetched dataset. A failed fetch blocks the
// whole view until a reload succeeds.
func (m *Model) handleDatasetLoaded(msg datasetLoadedMsg) {
	m.loading = false

	if msg.err != nil {
		slog.Error("failed to load dataset", "dataset_id", m.datasetID, "error", msg.err)
		m.ErrorState.Set(msg.err)
		if m.ErrorState.Blocking() {
			m.closeForms()
			m.UiState.SetMode(state.ErrorMode)
		} else {
			m.NotificationState.Add(state.LevelError, msg.err.Error())
		}
		return
	}

	m.ErrorState.Clear()
	m.AppState.SetDataset(msg.dataset)
	m.syncTable()

	if mode := m.UiState.Mode(); mode == state.LoadingMode || mode == state.ErrorMode {
		m.UiState.SetMode(state.TableMode)
	}
}

// handleMutationDone settles the result state of a finished write. The
// refreshed dataset is merged before Success is entered.
func (m *Model) handleMutationDone(msg mutationDoneMsg) tea.Cmd {
	m.pendingOp = ""

	if msg.err == nil {
		if msg.result != nil && msg.result.Dataset != nil {
			m.AppState.SetDataset(msg.result.Dataset)
			m.syncTable()
		}
		if err := m.ResultState.Succeed(); err != nil {
			slog.Error("result state", "error", err)
		}
		m.NotificationState.Add(state.LevelInfo, successMessage(msg.op))
		m.UiState.SetMode(state.ResultMode)
		return nil
	}

	slog.Error("mutation failed", "operation", msg.op, "error", msg.err)
	if err := m.ResultState.Fail(msg.err); err != nil {
		slog.Error("result state", "error", err)
	}

	var refreshErr *record.RefreshError
	if errors.As(msg.err, &refreshErr) {
		// the write went through; only the reload is missing
		m.NotificationState.Add(state.LevelWarning, "Saved, but the dataset could not be reloaded")
		m.UiState.SetMode(state.ResultMode)
		return nil
	}

	if m.RecordForm != nil && msg.op != graphql.OpDeleteRecord {
		// back to the form with the user's edits intact
		return m.buildForm()
	}

	m.NotificationState.Add(state.LevelError, msg.err.Error())
	m.UiState.SetMode(state.ResultMode)
	return nil
}

func successMessage(op string) string {
	switch op {
	case graphql.OpCreateRecord:
		return "Record created"
	case graphql.OpUpdateRecord:
		return "Record updated"
	case graphql.OpDeleteRecord:
		return "Record deleted"
	}
	return "Saved"
}

// handleTableKeys handles navigation and actions over the records table
func (m *Model) handleTableKeys(msg tea.KeyPressMsg) tea.Cmd {
	rowCount := len(m.AppState.Rows())

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.UiState.SetSelectedRow(m.UiState.SelectedRow()-1, rowCount)
		m.table.SetCursor(m.UiState.SelectedRow())

	case key.Matches(msg, m.keys.Down):
		m.UiState.SetSelectedRow(m.UiState.SelectedRow()+1, rowCount)
		m.table.SetCursor(m.UiState.SelectedRow())

	case key.Matches(msg, m.keys.Add):
		m.ResultState = state.NewResultState()
		return m.openCreateForm()

	case key.Matches(msg, m.keys.Edit):
		rec := m.selectedRecord()
		if rec == nil {
			return nil
		}
		m.ResultState = state.NewResultState()
		return m.openUpdateForm(*rec)

	case key.Matches(msg, m.keys.Delete):
		return m.openDeleteConfirm()

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return nil
		}
		m.loading = true
		return loadDatasetCmd(m.Ctx, m.Service, m.datasetID)

	case key.Matches(msg, m.keys.Help):
		m.UiState.EnterHelp()
	}

	return nil
}

// updateRecordForm forwards messages to the huh form and submits it once
// every field has validated
func (m *Model) updateRecordForm(msg tea.Msg) tea.Cmd {
	if m.form == nil || m.RecordForm == nil {
		m.closeForms()
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		m.closeForms()
		return nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.submitForm()
	}
	return cmd
}

// submitForm copies the input values into RecordForm and starts the write
// its mode selects
func (m *Model) submitForm() tea.Cmd {
	// all fields commit together or not at all
	if err := m.RecordForm.Apply(m.formValues.Date, m.formValues.Counts); err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return m.buildForm()
	}

	if err := m.ResultState.Begin(); err != nil {
		slog.Error("result state", "error", err)
		return nil
	}

	sub := m.RecordForm.Submission()
	op := graphql.OpCreateRecord
	if _, ok := sub.(record.Update); ok {
		op = graphql.OpUpdateRecord
	}

	m.pendingOp = op
	m.UiState.SetMode(state.ResultMode)
	return tea.Batch(m.spinner.Tick, submitCmd(m.Ctx, m.Service, op, sub))
}

// openDeleteConfirm asks before deleting the selected record
func (m *Model) openDeleteConfirm() tea.Cmd {
	rec := m.selectedRecord()
	if rec == nil {
		return nil
	}

	m.ResultState = state.NewResultState()
	m.deleteTarget = rec.ID
	m.deleteConfirm = new(bool)
	m.deleteForm = huhforms.CreateDeleteConfirmForm("Published "+rec.PublicationDate, m.deleteConfirm).
		WithTheme(huhforms.CreateTallyTheme(m.Config.ColorScheme)).
		WithWidth(m.formWidth())
	m.UiState.SetMode(state.DeleteConfirmMode)
	return m.deleteForm.Init()
}

func (m *Model) updateDeleteConfirm(msg tea.Msg) tea.Cmd {
	if m.deleteForm == nil {
		m.closeForms()
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		m.closeForms()
		return nil
	}

	model, cmd := m.deleteForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.deleteForm = f
	}

	if m.deleteForm.State == huh.StateCompleted {
		return m.finishDeleteConfirm()
	}
	return cmd
}

// finishDeleteConfirm deletes the target when confirmed, otherwise returns
// to the table
func (m *Model) finishDeleteConfirm() tea.Cmd {
	if m.deleteConfirm == nil || !*m.deleteConfirm {
		m.closeForms()
		return nil
	}

	if err := m.ResultState.Begin(); err != nil {
		slog.Error("result state", "error", err)
		return nil
	}

	target := m.deleteTarget
	m.pendingOp = graphql.OpDeleteRecord
	m.deleteForm = nil
	m.UiState.SetMode(state.ResultMode)
	return tea.Batch(m.spinner.Tick, deleteCmd(m.Ctx, m.Service, graphql.OpDeleteRecord, m.datasetID, target))
}

// handleResultKeys handles the outcome screen of a write
func (m *Model) handleResultKeys(msg tea.KeyPressMsg) tea.Cmd {
	switch m.ResultState.Status() {
	case state.StatusPending:
		// nothing until the write settles
		return nil

	case state.StatusSuccess:
		if key.Matches(msg, m.keys.Another) {
			if err := m.ResultState.AddAnother(); err != nil {
				slog.Error("result state", "error", err)
				return nil
			}
			return m.openCreateForm()
		}

	case state.StatusFailure:
		if key.Matches(msg, m.keys.Refresh) {
			m.closeForms()
			m.loading = true
			return loadDatasetCmd(m.Ctx, m.Service, m.datasetID)
		}
	}

	if key.Matches(msg, m.keys.Back) || msg.String() == "enter" {
		m.closeForms()
		return nil
	}
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	return nil
}

// handleErrorKeys handles the blocking error view
func (m *Model) handleErrorKeys(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return nil
		}
		m.loading = true
		m.UiState.SetMode(state.LoadingMode)
		return loadDatasetCmd(m.Ctx, m.Service, m.datasetID)
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	}
	return nil
}

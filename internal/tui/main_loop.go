package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-journal/internal/app"
	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type tab int

const (
	tabDiary tab = iota
	tabMood
	tabTodos
	tabCount
)

func (t tab) title() string {
	switch t {
	case tabMood:
		return "Настроение"
	case tabTodos:
		return "Задачи"
	default:
		return "Дневник"
	}
}

type journalModel struct {
	ctx       context.Context
	journal   service.ClientJournalService
	sync      service.ClientSyncService
	updates   <-chan bool
	buildInfo models.AppBuildInfo

	active tab
	cursor [tabCount]int
	diary  []models.DiaryEntry
	mood   []models.MoodRecord
	todos  []models.TodoItem

	online  bool
	loading bool
	syncing bool
	spinner spinner.Model
	status  string
	errMsg  string

	form          *formModel
	confirm       *confirmModel
	errOverlay    *errorOverlayModel
	showBuildInfo bool
}

func newJournalModel(
	ctx context.Context,
	journal service.ClientJournalService,
	sync service.ClientSyncService,
	online bool,
	updates <-chan bool,
	buildInfo models.AppBuildInfo,
) journalModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return journalModel{
		ctx:       ctx,
		journal:   journal,
		sync:      sync,
		updates:   updates,
		buildInfo: buildInfo,
		online:    online,
		loading:   true,
		spinner:   s,
	}
}

func (m journalModel) Init() tea.Cmd {
	return tea.Batch(
		m.cmdLoad(tabDiary),
		m.cmdLoad(tabMood),
		m.cmdLoad(tabTodos),
		waitForConnectivity(m.updates),
		m.spinner.Tick,
	)
}

func (m journalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case diaryLoadedMsg:
		m.loading = false
		if m.applyLoadResult(msg.result) {
			m.diary = msg.items
			m.clampCursor(tabDiary)
		}
		return m, nil
	case moodLoadedMsg:
		m.loading = false
		if m.applyLoadResult(msg.result) {
			m.mood = msg.items
			m.clampCursor(tabMood)
		}
		return m, nil
	case todosLoadedMsg:
		m.loading = false
		if m.applyLoadResult(msg.result) {
			m.todos = msg.items
			m.clampCursor(tabTodos)
		}
		return m, nil
	case actionDoneMsg:
		if failure := msg.failure(); failure != "" {
			m.status = ""
			m.errOverlay = &errorOverlayModel{message: failure}
			return m, nil
		}
		m.status = msg.message
		m.errMsg = ""
		return m, m.cmdLoad(msg.tab)
	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.status = ""
			m.errMsg = syncErrorMessage(msg.err)
			return m, nil
		}
		m.status = "Синхронизация завершена"
		m.errMsg = ""
		return m, tea.Batch(m.cmdLoad(tabDiary), m.cmdLoad(tabMood), m.cmdLoad(tabTodos))
	case connectivityMsg:
		wasOnline := m.online
		m.online = msg.online
		cmds := []tea.Cmd{waitForConnectivity(m.updates)}
		switch {
		case msg.online && !wasOnline:
			m.status = "Соединение восстановлено"
			cmds = append(cmds, m.cmdLoad(m.active))
		case !msg.online && wasOnline:
			m.status = "Нет соединения, изменения сохраняются локально"
		}
		return m, tea.Batch(cmds...)
	case spinner.TickMsg:
		if !m.loading && !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case m.errOverlay != nil:
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	case m.confirm != nil:
		if key.Matches(keyMsg, keys.yes) {
			action := m.confirm.action
			m.confirm = nil
			return m, action
		}
		if key.Matches(keyMsg, keys.no) || key.Matches(keyMsg, keys.esc) {
			m.confirm = nil
		}
		return m, nil
	case m.showBuildInfo:
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	return m.updateList(keyMsg)
}

func (m journalModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.form = nil
			return m, nil
		}
	}

	form, cmd, submit := m.form.update(msg)
	if !submit {
		m.form = &form
		return m, cmd
	}

	m.form = nil
	m.status = "Сохранение..."
	return m, m.cmdCreate(form)
}

func (m journalModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.nextTab):
		m.active = (m.active + 1) % tabCount
		m.status, m.errMsg = "", ""
	case key.Matches(keyMsg, keys.prevTab):
		m.active = (m.active - 1 + tabCount) % tabCount
		m.status, m.errMsg = "", ""
	case key.Matches(keyMsg, keys.up):
		if m.cursor[m.active] > 0 {
			m.cursor[m.active]--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor[m.active] < m.length(m.active)-1 {
			m.cursor[m.active]++
		}
	case key.Matches(keyMsg, keys.newItem):
		form := newForm(m.active)
		m.form = &form
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.cmdLoad(m.active), m.spinner.Tick)
	case key.Matches(keyMsg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "Синхронизация..."
		m.errMsg = ""
		return m, tea.Batch(m.cmdSync(), m.spinner.Tick)
	case key.Matches(keyMsg, keys.delete):
		m.askDelete()
	case key.Matches(keyMsg, keys.clear):
		m.askClear()
	case key.Matches(keyMsg, keys.toggle):
		if m.active != tabTodos {
			return m, nil
		}
		item, ok := m.currentTodo()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		return m, m.cmdToggle(item)
	case key.Matches(keyMsg, keys.copy):
		text, ok := m.copyValue()
		if !ok {
			m.status = "Нечего копировать"
			return m, nil
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Скопировано"
	}

	return m, nil
}

func (m *journalModel) askDelete() {
	switch m.active {
	case tabDiary:
		if idx := m.cursor[tabDiary]; idx < len(m.diary) {
			entry := m.diary[idx]
			m.confirm = &confirmModel{
				message: fmt.Sprintf("Удалить запись от %s", entry.Date),
				action: m.cmdAction(tabDiary, func(ctx context.Context, j service.ClientJournalService) (models.Envelope[json.RawMessage], error) {
					return j.DeleteDiary(ctx, entry.ID)
				}),
			}
			return
		}
	case tabTodos:
		if item, ok := m.currentTodo(); ok {
			m.confirm = &confirmModel{
				message: fmt.Sprintf("Удалить задачу \"%s\"", fitText(item.Text, 30)),
				action: m.cmdAction(tabTodos, func(ctx context.Context, j service.ClientJournalService) (models.Envelope[json.RawMessage], error) {
					return j.DeleteTodo(ctx, item.ID)
				}),
			}
			return
		}
	case tabMood:
		m.status = "История настроения очищается только целиком (x)"
		return
	}
	m.status = "Нет записей"
}

func (m *journalModel) askClear() {
	switch m.active {
	case tabMood:
		m.confirm = &confirmModel{
			message: "Очистить всю историю настроения",
			action: m.cmdAction(tabMood, func(ctx context.Context, j service.ClientJournalService) (models.Envelope[json.RawMessage], error) {
				return j.ClearMood(ctx)
			}),
		}
	case tabTodos:
		m.confirm = &confirmModel{
			message: "Удалить все выполненные задачи",
			action: m.cmdAction(tabTodos, func(ctx context.Context, j service.ClientJournalService) (models.Envelope[json.RawMessage], error) {
				return j.ClearCompletedTodos(ctx)
			}),
		}
	}
}

// applyLoadResult reports whether the loaded list should replace the shown
// one.
func (m *journalModel) applyLoadResult(r result) bool {
	if failure := r.failure(); failure != "" {
		m.errMsg = failure
		return false
	}
	return true
}

func (m journalModel) length(t tab) int {
	switch t {
	case tabMood:
		return len(m.mood)
	case tabTodos:
		return len(m.todos)
	default:
		return len(m.diary)
	}
}

func (m *journalModel) clampCursor(t tab) {
	if m.cursor[t] >= m.length(t) {
		m.cursor[t] = m.length(t) - 1
	}
	if m.cursor[t] < 0 {
		m.cursor[t] = 0
	}
}

func (m journalModel) currentTodo() (models.TodoItem, bool) {
	idx := m.cursor[tabTodos]
	if idx < 0 || idx >= len(m.todos) {
		return models.TodoItem{}, false
	}
	return m.todos[idx], true
}

func (m journalModel) copyValue() (string, bool) {
	idx := m.cursor[m.active]
	if idx < 0 || idx >= m.length(m.active) {
		return "", false
	}

	var text string
	switch m.active {
	case tabDiary:
		text = m.diary[idx].Content
	case tabMood:
		text = m.mood[idx].Text
		if text == "" {
			text = m.mood[idx].Mood
		}
	case tabTodos:
		text = m.todos[idx].Text
	}
	return text, text != ""
}

func (m journalModel) cmdLoad(t tab) tea.Cmd {
	ctx, journal := m.ctx, m.journal
	return func() tea.Msg {
		switch t {
		case tabMood:
			env, err := journal.Mood(ctx)
			return moodLoadedMsg{items: env.Data, result: newResult(env.Success, env.Message, err)}
		case tabTodos:
			env, err := journal.Todos(ctx)
			return todosLoadedMsg{items: env.Data, result: newResult(env.Success, env.Message, err)}
		default:
			env, err := journal.Diary(ctx)
			return diaryLoadedMsg{items: env.Data, result: newResult(env.Success, env.Message, err)}
		}
	}
}

func (m journalModel) cmdCreate(f formModel) tea.Cmd {
	ctx, journal := m.ctx, m.journal
	return func() tea.Msg {
		switch f.tab {
		case tabMood:
			env, err := journal.AddMood(ctx, f.moodInput())
			return actionDoneMsg{tab: tabMood, result: newResult(env.Success, env.Message, err)}
		case tabTodos:
			env, err := journal.AddTodo(ctx, f.todoInput())
			return actionDoneMsg{tab: tabTodos, result: newResult(env.Success, env.Message, err)}
		default:
			env, err := journal.AddDiary(ctx, f.diaryInput())
			return actionDoneMsg{tab: tabDiary, result: newResult(env.Success, env.Message, err)}
		}
	}
}

func (m journalModel) cmdToggle(item models.TodoItem) tea.Cmd {
	completed := !item.Completed
	return m.cmdAction(tabTodos, func(ctx context.Context, j service.ClientJournalService) (models.Envelope[json.RawMessage], error) {
		return j.UpdateTodo(ctx, item.ID, models.TodoPatch{Completed: &completed})
	})
}

func (m journalModel) cmdAction(
	t tab,
	call func(ctx context.Context, journal service.ClientJournalService) (models.Envelope[json.RawMessage], error),
) tea.Cmd {
	ctx, journal := m.ctx, m.journal
	return func() tea.Msg {
		env, err := call(ctx, journal)
		return actionDoneMsg{tab: t, result: newResult(env.Success, env.Message, err)}
	}
}

func (m journalModel) cmdSync() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		return syncDoneMsg{err: sync.SyncLocalData(ctx)}
	}
}

func syncErrorMessage(err error) string {
	if errors.Is(err, service.ErrOffline) {
		return app.MsgSyncOffline
	}
	return "Синхронизация: " + humanizeError(err)
}

// waitForConnectivity blocks until the monitor reports a transition.
func waitForConnectivity(updates <-chan bool) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		online, ok := <-updates
		if !ok {
			return nil
		}
		return connectivityMsg{online: online}
	}
}

func (m journalModel) View() string {
	switch {
	case m.showBuildInfo:
		return renderBuildInfoWindow(m.buildInfo)
	case m.form != nil:
		return m.form.View()
	}

	page := renderPage(m.viewHeader(), m.viewBody(), m.viewHotKeys())
	switch {
	case m.errOverlay != nil:
		return page + "\n\n" + m.errOverlay.View()
	case m.confirm != nil:
		return page + "\n\n" + m.confirm.View()
	}
	return page
}

func (m journalModel) viewHeader() string {
	var b strings.Builder
	for t := tabDiary; t < tabCount; t++ {
		label := t.title() + " " + countLabel(m.length(t))
		if t == m.active {
			b.WriteString(activeTabStyle.Render(label))
		} else {
			b.WriteString(inactiveTabStyle.Render(label))
		}
	}

	b.WriteString("   ")
	if m.online {
		b.WriteString(onlineStyle.Render("● онлайн"))
	} else {
		b.WriteString(offlineStyle.Render("● оффлайн"))
	}
	if m.loading || m.syncing {
		b.WriteString(" " + m.spinner.View())
	}
	return b.String()
}

func (m journalModel) viewBody() string {
	var b strings.Builder

	rows := m.rows(m.active)
	if len(rows) == 0 {
		if m.loading {
			b.WriteString("Загрузка...\n")
		} else {
			b.WriteString("Нет записей\n")
		}
	}
	for i, row := range rows {
		if i == m.cursor[m.active] {
			b.WriteString(cursorStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}
	return b.String()
}

func (m journalModel) rows(t tab) []string {
	switch t {
	case tabMood:
		rows := make([]string, 0, len(m.mood))
		for _, r := range m.mood {
			rows = append(rows, fmt.Sprintf("%s  %s  %s", r.Date, r.Mood, fitText(r.Text, 50)))
		}
		return rows
	case tabTodos:
		rows := make([]string, 0, len(m.todos))
		for _, item := range m.todos {
			box := "[ ]"
			if item.Completed {
				box = "[x]"
			}
			row := fmt.Sprintf("%s %s  (%s)", box, fitText(item.Text, 50), item.Priority)
			if item.Completed {
				row = completedStyle.Render(row)
			}
			rows = append(rows, row)
		}
		return rows
	default:
		rows := make([]string, 0, len(m.diary))
		for _, e := range m.diary {
			rows = append(rows, fmt.Sprintf("%s  %s  %s", e.Date, e.Mood, fitText(e.Content, 50)))
		}
		return rows
	}
}

func (m journalModel) viewHotKeys() string {
	common := "←/→: вкладка │ n: новая │ c: копировать │ s: синхр. │ r: обновить │ v: о программе"
	switch m.active {
	case tabMood:
		return common + "\n  x: очистить историю"
	case tabTodos:
		return common + "\n  пробел: выполнено │ d: удалить │ x: удалить выполненные"
	default:
		return common + "\n  d: удалить"
	}
}

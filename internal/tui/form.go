package tui

import (
	"strings"

	"github.com/MKhiriev/go-journal/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formModel is a single-screen input form for a new diary entry, mood record
// or to-do item. Empty fields are sent as is; defaults are applied by the
// server or by the offline store.
type formModel struct {
	tab    tab
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	err    string
}

func newForm(t tab) formModel {
	f := formModel{tab: t}

	switch t {
	case tabDiary:
		f.title = "Новая запись в дневнике"
		f.labels = []string{"Настроение", "Текст"}
		f.inputs = []textinput.Model{newInput(models.DefaultMood, 8), newInput("О чём думаете?", 50)}
	case tabMood:
		f.title = "Отметить настроение"
		f.labels = []string{"Настроение", "Заметка"}
		f.inputs = []textinput.Model{newInput(models.DefaultMood, 8), newInput("Пару слов (можно пусто)", 50)}
	case tabTodos:
		f.title = "Новая задача"
		f.labels = []string{"Задача", "Приоритет"}
		f.inputs = []textinput.Model{newInput("Что сделать?", 50), newInput("low / medium / high", 12)}
	}

	f.inputs[0].Focus()
	return f
}

func newInput(placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = width
	return in
}

// update handles a message while the form is open. submit is true when the
// user confirmed the form with enter.
func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.moveFocus(1)
			return f, nil, false
		case key.Matches(keyMsg, keys.backtab):
			f.moveFocus(-1)
			return f, nil, false
		case key.Matches(keyMsg, keys.enter):
			if err := f.validate(); err != "" {
				f.err = err
				return f, nil, false
			}
			return f, nil, true
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, false
}

func (f *formModel) moveFocus(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f formModel) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f formModel) validate() string {
	if f.tab != tabTodos {
		return ""
	}
	if f.value(0) == "" {
		return "нужно описание задачи"
	}
	if _, err := models.ParsePriority(f.value(1)); err != nil {
		return "приоритет: low, medium или high"
	}
	return ""
}

func (f formModel) diaryInput() models.DiaryInput {
	return models.DiaryInput{Mood: f.value(0), Content: f.value(1)}
}

func (f formModel) moodInput() models.MoodInput {
	return models.MoodInput{Mood: f.value(0), Text: f.value(1)}
}

func (f formModel) todoInput() models.TodoInput {
	return models.TodoInput{Text: f.value(0), Priority: f.value(1)}
}

func (f formModel) View() string {
	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(padRight(f.labels[i], 11))
		b.WriteString(": [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + f.err))
		b.WriteString("\n")
	}
	return renderPage(titleStyle.Render(f.title), b.String(), "tab: следующее поле │ enter: сохранить │ esc: отмена")
}

// Package tui is the terminal client for the todo API. The model keeps a
// local copy of the list and patches it from each server response instead of
// re-fetching: creates prepend, updates replace by id, deletes remove by id.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfmadeira/todoapp/client"
	"github.com/jfmadeira/todoapp/models"
)

// Fixed messages shown on failure, never the server's raw error text.
const (
	errLoad   = "failed to load todos"
	errCreate = "failed to create todo"
	errUpdate = "failed to update todo"
	errDelete = "failed to delete todo"
)

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Add:    key.NewBinding(key.WithKeys("a")),
	Toggle: key.NewBinding(key.WithKeys(" ")),
	Delete: key.NewBinding(key.WithKeys("d")),
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Submit: key.NewBinding(key.WithKeys("enter")),
	Cancel: key.NewBinding(key.WithKeys("esc")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

type (
	todosLoadedMsg struct {
		todos []models.Todo
		err   error
	}
	todoCreatedMsg struct {
		todo *models.Todo
		err  error
	}
	todoUpdatedMsg struct {
		todo *models.Todo
		err  error
	}
	todoDeletedMsg struct {
		id  string
		err error
	}
)

type Model struct {
	api    *client.Client
	todos  []models.Todo
	input  textinput.Model
	cursor int

	adding  bool
	loading bool
	errMsg  string
}

func New(api *client.Client) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256
	return Model{api: api, input: ti, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadTodos())
}

func (m Model) loadTodos() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		todos, err := api.List(context.Background())
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (m Model) createTodo(title string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		todo, err := api.Create(context.Background(), title)
		return todoCreatedMsg{todo: todo, err: err}
	}
}

// toggleTodo sends the current title plus the inverted completed flag.
func (m Model) toggleTodo(t models.Todo) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		todo, err := api.Update(context.Background(), t.ID.Hex(), t.Title, !t.Completed)
		return todoUpdatedMsg{todo: todo, err: err}
	}
}

func (m Model) deleteTodo(id string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		err := api.Delete(context.Background(), id)
		return todoDeletedMsg{id: id, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errLoad
			return m, nil
		}
		m.todos = msg.todos
		m.errMsg = ""
		return m, nil

	case todoCreatedMsg:
		if msg.err != nil {
			m.errMsg = errCreate
			return m, nil
		}
		// Newest successful create goes first, regardless of timestamps.
		m.todos = append([]models.Todo{*msg.todo}, m.todos...)
		m.input.SetValue("")
		m.cursor = 0
		m.errMsg = ""
		return m, nil

	case todoUpdatedMsg:
		if msg.err != nil {
			m.errMsg = errUpdate
			return m, nil
		}
		for i := range m.todos {
			if m.todos[i].ID == msg.todo.ID {
				m.todos[i] = *msg.todo
				break
			}
		}
		m.errMsg = ""
		return m, nil

	case todoDeletedMsg:
		if msg.err != nil {
			m.errMsg = errDelete
			return m, nil
		}
		for i := range m.todos {
			if m.todos[i].ID.Hex() == msg.id {
				m.todos = append(m.todos[:i], m.todos[i+1:]...)
				break
			}
		}
		if m.cursor >= len(m.todos) && m.cursor > 0 {
			m.cursor = len(m.todos) - 1
		}
		m.errMsg = ""
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			switch {
			case key.Matches(msg, keys.Submit):
				title := strings.TrimSpace(m.input.Value())
				if title == "" {
					// Whitespace-only drafts never reach the server.
					return m, nil
				}
				m.adding = false
				m.input.Blur()
				return m, m.createTodo(title)
			case key.Matches(msg, keys.Cancel):
				m.adding = false
				m.input.SetValue("")
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Add):
			m.adding = true
			return m, m.input.Focus()
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.todos)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, keys.Toggle):
			if len(m.todos) == 0 {
				return m, nil
			}
			return m, m.toggleTodo(m.todos[m.cursor])
		case key.Matches(msg, keys.Delete):
			if len(m.todos) == 0 {
				return m, nil
			}
			return m, m.deleteTodo(m.todos[m.cursor].ID.Hex())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return mutedStyle.Render("loading todos…") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("todos") + "\n\n")

	if m.adding {
		b.WriteString(m.input.View() + "\n\n")
	}

	if len(m.todos) == 0 {
		b.WriteString(mutedStyle.Render("nothing to do") + "\n")
	}
	for i, t := range m.todos {
		box := mutedStyle.Render(boxUnchecked)
		text := t.Title
		if t.Completed {
			box = successStyle.Render(boxChecked)
			text = doneStyle.Render(text)
		}
		prefix := "  "
		if i == m.cursor && !m.adding {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, box, text))
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("a add · space toggle · d delete · q quit"))
	return b.String()
}

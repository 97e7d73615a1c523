package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jfmadeira/todoapp/client"
	"github.com/jfmadeira/todoapp/models"
)

func mkTodo(title string, completed bool) models.Todo {
	return models.Todo{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Completed: completed,
		CreatedAt: time.Now().UTC(),
	}
}

func newModel() Model {
	return New(client.New("http://localhost:0"))
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestInitialLoadReplacesList(t *testing.T) {
	m := newModel()
	assert.True(t, m.loading)

	todos := []models.Todo{mkTodo("Walk the dog", false), mkTodo("Buy milk", true)}
	m, _ = step(t, m, todosLoadedMsg{todos: todos})

	assert.False(t, m.loading)
	assert.Equal(t, todos, m.todos)
	assert.Empty(t, m.errMsg)
}

func TestInitialLoadFailure(t *testing.T) {
	m := newModel()
	m, _ = step(t, m, todosLoadedMsg{err: errors.New("connection refused")})

	assert.False(t, m.loading)
	assert.Empty(t, m.todos)
	assert.Equal(t, errLoad, m.errMsg)
}

func TestCreatePrependsAndClearsDraft(t *testing.T) {
	m := newModel()
	m, _ = step(t, m, todosLoadedMsg{todos: []models.Todo{mkTodo("Buy milk", false)}})
	m.input.SetValue("Walk the dog")
	m.errMsg = errUpdate

	created := mkTodo("Walk the dog", false)
	m, _ = step(t, m, todoCreatedMsg{todo: &created})

	require.Len(t, m.todos, 2)
	assert.Equal(t, created.ID, m.todos[0].ID)
	assert.Equal(t, "Buy milk", m.todos[1].Title)
	assert.Empty(t, m.input.Value())
	assert.Empty(t, m.errMsg)
}

func TestCreateFailureLeavesListUntouched(t *testing.T) {
	m := newModel()
	before := []models.Todo{mkTodo("Buy milk", false)}
	m, _ = step(t, m, todosLoadedMsg{todos: before})
	m.input.SetValue("Walk the dog")

	m, _ = step(t, m, todoCreatedMsg{err: errors.New("boom")})

	assert.Equal(t, before, m.todos)
	assert.Equal(t, "Walk the dog", m.input.Value())
	assert.Equal(t, errCreate, m.errMsg)
}

func TestToggleReplacesMatchingEntry(t *testing.T) {
	m := newModel()
	first := mkTodo("Walk the dog", false)
	second := mkTodo("Buy milk", false)
	m, _ = step(t, m, todosLoadedMsg{todos: []models.Todo{first, second}})

	toggled := second
	toggled.Completed = true
	m, _ = step(t, m, todoUpdatedMsg{todo: &toggled})

	require.Len(t, m.todos, 2)
	assert.False(t, m.todos[0].Completed)
	assert.True(t, m.todos[1].Completed)
	assert.Equal(t, second.ID, m.todos[1].ID)
	assert.Empty(t, m.errMsg)
}

func TestToggleFailureDoesNotFlip(t *testing.T) {
	m := newModel()
	todo := mkTodo("Buy milk", false)
	m, _ = step(t, m, todosLoadedMsg{todos: []models.Todo{todo}})

	m, _ = step(t, m, todoUpdatedMsg{err: errors.New("boom")})

	assert.False(t, m.todos[0].Completed)
	assert.Equal(t, errUpdate, m.errMsg)
}

func TestDeleteRemovesByIDAndClampsCursor(t *testing.T) {
	m := newModel()
	first := mkTodo("Walk the dog", false)
	second := mkTodo("Buy milk", false)
	m, _ = step(t, m, todosLoadedMsg{todos: []models.Todo{first, second}})
	m.cursor = 1

	m, _ = step(t, m, todoDeletedMsg{id: second.ID.Hex()})

	require.Len(t, m.todos, 1)
	assert.Equal(t, first.ID, m.todos[0].ID)
	assert.Equal(t, 0, m.cursor)
	assert.Empty(t, m.errMsg)
}

func TestDeleteFailureLeavesListUntouched(t *testing.T) {
	m := newModel()
	before := []models.Todo{mkTodo("Buy milk", false)}
	m, _ = step(t, m, todosLoadedMsg{todos: before})

	m, _ = step(t, m, todoDeletedMsg{id: before[0].ID.Hex(), err: errors.New("boom")})

	assert.Equal(t, before, m.todos)
	assert.Equal(t, errDelete, m.errMsg)
}

func TestBlankDraftNeverReachesServer(t *testing.T) {
	m := newModel()
	m, _ = step(t, m, todosLoadedMsg{})
	m.adding = true
	m.input.SetValue("   ")

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, m.adding)
	assert.Equal(t, "   ", m.input.Value())
}

func TestSubmitDraftIssuesCreate(t *testing.T) {
	m := newModel()
	m, _ = step(t, m, todosLoadedMsg{})
	m.adding = true
	m.input.SetValue("Buy milk")

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, cmd)
	assert.False(t, m.adding)
}

func TestSuccessfulMutationClearsError(t *testing.T) {
	m := newModel()
	todo := mkTodo("Buy milk", false)
	m, _ = step(t, m, todosLoadedMsg{todos: []models.Todo{todo}})
	m.errMsg = errCreate

	updated := todo
	updated.Completed = true
	m, _ = step(t, m, todoUpdatedMsg{todo: &updated})

	assert.Empty(t, m.errMsg)
}

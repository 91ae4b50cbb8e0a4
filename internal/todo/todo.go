package todo

import (
	"errors"
	"fmt"
	"strings"

	"tarefas/internal/idgen"
)

// RequiredMessage is shown next to the input when an empty task is submitted.
const RequiredMessage = "Este campo é obrigatório!"

var ErrRequired = errors.New("task content is required")

type Task struct {
	ID      string
	Content string
}

// List holds the tasks of one to-do list together with the draft being typed.
// Completion is tracked as membership in a second slice, not as a field on
// Task. A List is not safe for concurrent use.
type List struct {
	gen        idgen.Generator
	tasks      []Task
	completed  []Task
	draft      string
	validation string
}

func New(gen idgen.Generator) *List {
	if gen == nil {
		gen = idgen.UUID{}
	}
	return &List{gen: gen}
}

// SetDraft replaces the draft text and clears any validation message.
func (l *List) SetDraft(text string) {
	l.draft = text
	l.validation = ""
}

// Invalidate flags the draft as rejected without submitting it.
func (l *List) Invalidate() {
	l.validation = RequiredMessage
}

// Submit turns the draft into a new task at the end of the list. An empty or
// whitespace-only draft is rejected with ErrRequired and left in place.
func (l *List) Submit() (Task, error) {
	content := strings.TrimSpace(l.draft)
	if content == "" {
		l.Invalidate()
		return Task{}, ErrRequired
	}
	t := Task{ID: l.gen.Generate(), Content: content}
	l.tasks = append(l.tasks, t)
	l.draft = ""
	return t, nil
}

func (l *List) SubmitNewTask(text string) (Task, error) {
	l.SetDraft(text)
	return l.Submit()
}

// SetChecked adds t to or removes it from the completed tasks. Repeating a
// call has no further effect, and tasks not in the list are never checked.
func (l *List) SetChecked(t Task, checked bool) {
	if !checked {
		l.completed = without(l.completed, t.ID)
		return
	}
	if l.IsChecked(t.ID) || indexOf(l.tasks, t.ID) < 0 {
		return
	}
	l.completed = append(l.completed, t)
}

// Delete removes t from both the task list and the completed tasks.
func (l *List) Delete(t Task) {
	l.tasks = without(l.tasks, t.ID)
	l.completed = without(l.completed, t.ID)
}

func (l *List) IsChecked(id string) bool {
	return indexOf(l.completed, id) >= 0
}

func (l *List) Tasks() []Task {
	return append([]Task(nil), l.tasks...)
}

func (l *List) Completed() []Task {
	return append([]Task(nil), l.completed...)
}

func (l *List) Draft() string {
	return l.draft
}

func (l *List) Validation() string {
	return l.validation
}

func (l *List) CreatedCount() int {
	return len(l.tasks)
}

func (l *List) IsEmpty() bool {
	return l.CreatedCount() == 0
}

// CompletedSummary reads "0" for an empty list and "<done> de <total>" otherwise.
func (l *List) CompletedSummary() string {
	if l.IsEmpty() {
		return "0"
	}
	return fmt.Sprintf("%d de %d", len(l.completed), l.CreatedCount())
}

func (l *List) IsSubmitDisabled() bool {
	return strings.TrimSpace(l.draft) == ""
}

func indexOf(tasks []Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func without(tasks []Task, id string) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

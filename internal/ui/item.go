package ui

import (
	"fmt"

	"tarefas/internal/todo"
)

// itemView renders one task row. It keeps no state: whether the task is
// checked comes from the list, and changes go back through the callbacks.
type itemView struct {
	task     todo.Task
	checked  bool
	onCheck  func(todo.Task, bool)
	onDelete func(todo.Task)
}

func (it itemView) Toggle() {
	it.onCheck(it.task, !it.checked)
}

func (it itemView) Remove() {
	it.onDelete(it.task)
}

func (it itemView) View(selected bool) string {
	cursor := " "
	if selected {
		cursor = ">"
	}

	checkbox := "[ ]"
	content := it.task.Content
	if it.checked {
		checkbox = "[x]"
		content = checkedTextStyle.Render(content)
	} else if selected {
		content = selectedStyle.Render(content)
	}

	return fmt.Sprintf("%s %s %s  %s", cursor, checkbox, content, deleteStyle.Render("✕"))
}

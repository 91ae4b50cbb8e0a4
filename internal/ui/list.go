package ui

import (
	"strconv"
	"strings"

	"tarefas/internal/logging"
	"tarefas/internal/todo"
)

const (
	emptyIcon  = "📋"
	emptyTitle = "Você ainda não tem tarefas cadastradas"
	emptyText  = "Crie tarefas e organize seus itens a fazer"
)

// items builds one row per task in list order, wired back to the list.
func (m Model) items() []itemView {
	tasks := m.list.Tasks()
	out := make([]itemView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, itemView{
			task:     t,
			checked:  m.list.IsChecked(t.ID),
			onCheck:  m.checkTodo,
			onDelete: m.deleteTodo,
		})
	}
	return out
}

func (m Model) checkTodo(t todo.Task, checked bool) {
	m.list.SetChecked(t, checked)
	logging.Debugf("check %s=%t (%s)", t.ID, checked, m.list.CompletedSummary())
}

func (m Model) deleteTodo(t todo.Task) {
	m.list.Delete(t)
	logging.Debugf("delete %s (%d left)", t.ID, m.list.CreatedCount())
}

func (m Model) renderSummary() string {
	created := createdLabelStyle.Render("Tarefas criadas") + counterStyle.Render(strconv.Itoa(m.list.CreatedCount()))
	done := doneLabelStyle.Render("Concluídas") + counterStyle.Render(m.list.CompletedSummary())
	return created + "    " + done
}

func (m Model) renderTaskList() string {
	if m.list.IsEmpty() {
		return renderEmpty()
	}
	var b strings.Builder
	for i, it := range m.items() {
		b.WriteString(it.View(m.mode == modeList && i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func renderEmpty() string {
	var b strings.Builder
	b.WriteString(emptyIcon)
	b.WriteString("\n")
	b.WriteString(emptyTitleStyle.Render(emptyTitle))
	b.WriteString("\n")
	b.WriteString(emptyTextStyle.Render(emptyText))
	b.WriteString("\n")
	return b.String()
}

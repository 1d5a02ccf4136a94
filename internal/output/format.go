// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"todo/internal/task"
)

const (
	// EmptyMessage is printed when there is nothing to list.
	EmptyMessage = "no tasks"

	doneMark = "[x]"
	openMark = "[ ]"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	doneStyle   = cellStyle.Faint(true)
)

// FormatTask writes one task as a plain line.
// Format: "{ID:>4}  {MARK}  {DESCRIPTION}\n"
func FormatTask(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "%4d  %s  %s\n", t.ID, mark(t), normalizeDescription(t.Description))
}

// FormatPlain writes tasks one per line, or EmptyMessage.
func FormatPlain(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, EmptyMessage)
		return
	}
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// FormatTable writes tasks as a bordered table, or EmptyMessage.
func FormatTable(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, EmptyMessage)
		return
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			mark(t),
			normalizeDescription(t.Description),
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "DONE", "DESCRIPTION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(tasks) && tasks[row].Completed {
				return doneStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, tbl.String())
}

// Summary returns "N tasks, M done".
func Summary(tasks []task.Task) string {
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	noun := "tasks"
	if len(tasks) == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%d %s, %d done", len(tasks), noun, done)
}

// Pending returns the tasks that are not completed, in order.
func Pending(tasks []task.Task) []task.Task {
	var out []task.Task
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

func mark(t task.Task) string {
	if t.Completed {
		return doneMark
	}
	return openMark
}

// normalizeDescription normalizes a task description for display.
// - Empty or whitespace-only descriptions become "(empty)"
// - Newlines are replaced with spaces
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(empty)"
	}
	return desc
}

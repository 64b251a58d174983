// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

const (
	// Separator is the line printed between the list and the summary.
	Separator = "------------"

	// EmptyMessage is printed in place of an empty list.
	EmptyMessage = "No tasks yet. Add one to get started!"
)

// FormatTask formats one task line.
// Format: "{N:>4}  [{x| }]  {TEXT}\n"
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  [%s]  %s\n", num, checkbox(task.Completed), normalizeText(task.Text))
}

// FormatList formats the whole list followed by the remaining summary.
// An empty list prints EmptyMessage instead of task lines.
func FormatList(w io.Writer, list service.TaskList) {
	if len(list) == 0 {
		fmt.Fprintln(w, EmptyMessage)
	}
	for i, task := range list {
		FormatTask(w, i+1, task)
	}
	fmt.Fprintln(w, Separator)
	FormatSummary(w, list.Remaining())
}

// FormatSummary formats the remaining-count line.
func FormatSummary(w io.Writer, remaining int) {
	fmt.Fprintf(w, "%d task(s) remaining\n", remaining)
}

func checkbox(completed bool) string {
	if completed {
		return "x"
	}
	return " "
}

// normalizeText keeps each task on a single line.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return text
}

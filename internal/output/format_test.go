package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"todo/internal/task"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		task task.Task
		want string
	}{
		{"open", task.Task{ID: 1, Description: "Buy milk"}, "   1  [ ]  Buy milk\n"},
		{"done", task.Task{ID: 12, Description: "Ship it", Completed: true}, "  12  [x]  Ship it\n"},
		{"empty", task.Task{ID: 3}, "   3  [ ]  (empty)\n"},
		{"newlines", task.Task{ID: 4, Description: "line1\nline2\r\n"}, "   4  [ ]  line1 line2  \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatTask(&buf, tt.task)
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestFormatPlain_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatPlain(&buf, nil)
	if buf.String() != EmptyMessage+"\n" {
		t.Errorf("expected empty message, got %q", buf.String())
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(&buf, []task.Task{
		{ID: 1, Description: "Test1", Completed: true},
		{ID: 3, Description: "Test3"},
	})

	out := buf.String()
	for _, want := range []string{"ID", "DONE", "DESCRIPTION", "Test1", "Test3", "[x]", "[ ]"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Test1") > strings.Index(out, "Test3") {
		t.Errorf("rows out of order:\n%s", out)
	}
}

func TestFormatTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(&buf, []task.Task{})
	if buf.String() != EmptyMessage+"\n" {
		t.Errorf("expected empty message, got %q", buf.String())
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		tasks []task.Task
		want  string
	}{
		{nil, "0 tasks, 0 done"},
		{[]task.Task{{ID: 1}}, "1 task, 0 done"},
		{[]task.Task{{ID: 1, Completed: true}, {ID: 2}}, "2 tasks, 1 done"},
	}
	for _, tt := range tests {
		if got := Summary(tt.tasks); got != tt.want {
			t.Errorf("Summary = %q, want %q", got, tt.want)
		}
	}
}

func TestPending(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, Description: "a", Completed: true},
		{ID: 2, Description: "b"},
		{ID: 4, Description: "d"},
	}
	want := []task.Task{{ID: 2, Description: "b"}, {ID: 4, Description: "d"}}
	if diff := cmp.Diff(want, Pending(tasks)); diff != "" {
		t.Errorf("Pending mismatch (-want +got):\n%s", diff)
	}
}

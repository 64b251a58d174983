// Package service holds the task list state and keeps it mirrored to storage.
package service

// Task represents a single to-do item.
type Task struct {
	ID        int64  `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// TaskList is the ordered collection of tasks. Order is creation order.
type TaskList []Task

// Remaining returns the number of tasks not yet completed.
func (l TaskList) Remaining() int {
	n := 0
	for _, t := range l {
		if !t.Completed {
			n++
		}
	}
	return n
}

// Index returns the position of the task with the given id, or -1.
func (l TaskList) Index(id int64) int {
	for i, t := range l {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy of the list that shares no backing array.
func (l TaskList) Clone() TaskList {
	if l == nil {
		return TaskList{}
	}
	out := make(TaskList, len(l))
	copy(out, l)
	return out
}

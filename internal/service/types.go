package service

// Task is a task as sent to the remote service.
type Task struct {
	Title     string
	Notes     string
	Completed bool
}

// TaskList represents a remote task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}

package tui

// WorkDoneMsg signals that the background work has completed.
type WorkDoneMsg struct{}

// ErrorMsg signals that the background work failed; the program should quit.
type ErrorMsg struct {
	Err error
}

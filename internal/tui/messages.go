package tui

// refreshedMsg reports the end of a snapshot refresh.
type refreshedMsg struct {
	err error
}

// generatedMsg reports the end of a recommendation run.
type generatedMsg struct {
	err   error
	count int
}

// statusClearMsg clears the status line if it still shows the given sequence.
type statusClearMsg struct {
	seq int
}

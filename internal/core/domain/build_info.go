package domain

import "time"

// CommandResult captures the outcome of one external command.
type CommandResult struct {
	ExitCode int
	Output   []byte
	Duration time.Duration
}

// Succeeded reports whether the command exited with status zero.
func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0
}

// BuildRecord is the journal entry written after a target's command succeeded.
type BuildRecord struct {
	Output      string        `json:"output,omitzero"`
	CommandHash string        `json:"command_hash,omitzero"`
	ExitCode    int           `json:"exit_code"`
	Duration    time.Duration `json:"duration,omitzero"`
	BuiltAt     time.Time     `json:"built_at,omitzero"`
}

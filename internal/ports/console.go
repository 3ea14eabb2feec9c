package ports

// ConsolePort reports pipeline progress to the user.  Correctness of
// the pipeline never depends on it; tests stub it with a no-op.
type ConsolePort interface {
	Msg(text string)
}

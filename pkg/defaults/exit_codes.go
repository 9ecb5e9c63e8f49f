package defaults

// Exit codes for the CLI.
const (
	ExitSuccess       = 0 // generation completed
	ExitUserError     = 2 // invalid arguments or configuration
	ExitInternalError = 4 // unexpected internal error
)

package domain

import "strings"

// Command is a single external process invocation.
type Command struct {
	// Name is the executable, resolved through the executable search path.
	Name string
	// Args are the arguments passed after Name.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the command line for display.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

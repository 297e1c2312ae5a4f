package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrIDRequired is returned when a command that operates on a single
// task is given no id argument.
var ErrIDRequired = errors.New("task id required")

// ParseID parses a task id argument. Ids are positive decimal integers.
func ParseID(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid task id: %s", s)
	}
	return uint32(n), nil
}

// ParseIDArg extracts a single id from positional args, rejecting
// missing or trailing arguments.
func ParseIDArg(args []string) (uint32, error) {
	if len(args) == 0 {
		return 0, ErrIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	return ParseID(args[0])
}

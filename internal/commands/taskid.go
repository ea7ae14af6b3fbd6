package commands

import (
	"errors"
	"strconv"
)

// ErrTaskIDRequired is returned when no task id argument was given.
var ErrTaskIDRequired = errors.New("task id required")

// ParseTaskID parses the single positional task id argument used by
// done, rm, and edit.
func ParseTaskID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, errors.New("too many arguments")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid task id: " + args[0])
	}
	return id, nil
}

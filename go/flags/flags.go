package flags

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// Parse parses the process arguments into opts.
func Parse(opts any) error {
	return ParseArgs(opts, os.Args[1:])
}

// ParseArgs parses the given args into opts. Positional arguments are rejected.
func ParseArgs(opts any, args []string) error {
	rest, err := flags.ParseArgs(opts, args)
	if err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %v", rest)
	}
	return nil
}

// IsHelp reports whether err is the help request that go-flags already printed.
func IsHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}

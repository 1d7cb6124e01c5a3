package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/conn-castle/linux-msvc/internal/messages"
)

const (
	flagVerboseLong  = "--verbose"
	flagVerboseShort = "-v"
	flagAddCrossFile = "--add_cross_file"
)

// wrapperArgs is the result of splitting a wrapper command line.
type wrapperArgs struct {
	verbose      bool
	addCrossFile bool
	// pass holds the arguments forwarded to the wrapped tool.
	pass []string
}

// parseWrapperArgs consumes the wrapper's own flags before a standalone "--"
// and returns everything else for the wrapped tool. Arguments after "--" are
// forwarded verbatim; other arguments before it are preserved in order.
func parseWrapperArgs(args []string, allowCrossFile bool) (wrapperArgs, error) {
	parsed := wrapperArgs{pass: []string{}}
	for i, arg := range args {
		if arg == "--" {
			parsed.pass = append(parsed.pass, args[i+1:]...)
			break
		}
		name, value, hasValue := strings.Cut(arg, "=")
		var target *bool
		switch {
		case arg == flagVerboseShort, name == flagVerboseLong:
			target = &parsed.verbose
		case allowCrossFile && name == flagAddCrossFile:
			target = &parsed.addCrossFile
		default:
			parsed.pass = append(parsed.pass, arg)
			continue
		}
		if !hasValue || arg == flagVerboseShort {
			*target = true
			continue
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return wrapperArgs{}, fmt.Errorf(messages.PassArgsInvalidBoolFmt, name, value)
		}
		*target = b
	}
	return parsed, nil
}

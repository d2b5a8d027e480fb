package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return marked{cr.Mark(err, markErr)}
}

// marked makes marks visible to the standard errors.Is as well.
type marked struct {
	error
}

func (m marked) Unwrap() error { return m.error }

func (m marked) Is(target error) bool { return cr.Is(m.error, target) }

func (m marked) Format(s fmt.State, verb rune) { cr.FormatError(m.error, s, verb) }

// Is reports whether err carries reference, either through its chain or a Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// errTolerance is returned when more lines were malformed than the
// tolerance allows.
type errTolerance struct {
	bad, max int
}

func (e errTolerance) Error() string {
	return fmt.Sprintf("aborting: %d malformed input lines (limit %d)", e.bad, e.max)
}

// processLines runs convert over every input line, writing one output value
// per line. Blank lines are skipped. A conversion failure is logged and
// counted; once the count exceeds the tolerance the run aborts.
func processLines(opts *RootOptions, r io.Reader, w io.Writer, convert func(string) (string, error)) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	bad := 0
	done := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		if line == "" {
			continue
		}

		out, err := convert(line)

		if err != nil {
			bad++
			opts.logger.Warn("skipping malformed line", "line", lineNo, "input", line, "err", err)

			if bad > opts.MaxErrors {
				return errTolerance{bad, opts.MaxErrors}
			}

			continue
		}

		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}

		done++
	}

	if err := sc.Err(); err != nil {
		return err
	}

	opts.logger.Info("finished", "converted", done, "malformed", bad)
	return nil
}

// splitDigitFields splits a line on runs of non-digit bytes, the separator
// convention of the date inputs.
func splitDigitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r < '0' || r > '9'
	})
}

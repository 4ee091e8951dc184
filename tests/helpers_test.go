package tests_test

import (
	"fmt"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
)

// expectContains returns a comparator verifying the output contains a substring.
func expectContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if !strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectRow returns a comparator verifying that a report row exists for the
// given (group, method) pair and carries the given statistics columns.
func expectRow(group, method, stats string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		for line := range strings.Lines(stdout) {
			if strings.HasPrefix(line, "#") {
				continue
			}

			fields := strings.Split(line, "\t")
			if len(fields) < 2 {
				continue
			}

			if strings.TrimSpace(fields[0]) != group || strings.TrimSpace(fields[1]) != method {
				continue
			}

			if strings.Contains(line, stats) {
				return
			}

			testing.Log(fmt.Sprintf("row %s/%s found but does not carry %q: %q", group, method, stats, line))
			testing.Fail()

			return
		}

		testing.Log(fmt.Sprintf("expected a row for %s/%s in output:\n%s", group, method, stdout))
		testing.Fail()
	}
}

// expectHeaderOnly returns a comparator verifying the report holds no data rows.
func expectHeaderOnly() test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		trimmed := strings.TrimSpace(stdout)
		if strings.HasPrefix(trimmed, "#group") && !strings.Contains(trimmed, "\n") {
			return
		}

		testing.Log(fmt.Sprintf("expected a header-only report, got:\n%s", stdout))
		testing.Fail()
	}
}

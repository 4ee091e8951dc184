package tests_test

import (
	"testing"

	"github.com/containerd/nerdctl/mod/tigron/expect"
	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/farcloser/cambium/tests/testutils"
)

const sampleReport = "#group         \tmethod                   \tminimum\tmedian\tmean\tstd_dev\tmaximum\tcount\n" +
	"cyclomatic     \taverage                  \t2.0\t3.0\t3.0\t1.4\t4.0\t2\n" +
	"cyclomatic     \tsum                      \t1.0\t3.0\t3.0\t1.6\t5.0\t5\n" +
	"nom            \ttotal                    \t3.0\t3.0\t3.0\t0.0\t3.0\t1\n"

func TestDigestCLI(t *testing.T) {
	testCase := testutils.Setup()

	testCase.SubTests = []*test.Case{
		{
			Description: "digest without arguments fails",
			Command:     test.Command("digest"),
			Expected:    test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
		{
			Description: "digest missing report fails",
			Command:     test.Command("digest", "/nonexistent/report.tab"),
			Expected:    test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
		{
			Description: "digest rolls rows up per group",
			Setup: func(data test.Data, _ test.Helpers) {
				data.Temp().Save(sampleReport, "report.tab")
			},
			Command: func(data test.Data, helpers test.Helpers) test.TestableCommand {
				return helpers.Command("digest", data.Temp().Path("report.tab"))
			},
			Expected: func(_ test.Data, _ test.Helpers) *test.Expected {
				return &test.Expected{
					ExitCode: expect.ExitCodeSuccess,
					Output: expect.All(
						expectContains("3 metrics across 2 groups (8 observations)"),
						expectContains("2 metrics, 7 observations"),
					),
				}
			},
		},
		{
			Description: "digest renders json",
			Setup: func(data test.Data, _ test.Helpers) {
				data.Temp().Save(sampleReport, "report.tab")
			},
			Command: func(data test.Data, helpers test.Helpers) test.TestableCommand {
				return helpers.Command("digest", "--format", "json", data.Temp().Path("report.tab"))
			},
			Expected: func(_ test.Data, _ test.Helpers) *test.Expected {
				return &test.Expected{
					ExitCode: expect.ExitCodeSuccess,
					Output:   expectContains("observations"),
				}
			},
		},
	}

	testCase.Run(t)
}

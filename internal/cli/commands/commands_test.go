package commands

import (
	"bytes"
	"testing"

	"ctest/internal/assert"
	"ctest/internal/registry"

	testifyassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failing(n int) registry.Body {
	return func(c *assert.C) {
		for i := 0; i < n; i++ {
			c.Assertf(false, "false", "failure %d", i+1)
		}
	}
}

func run(t *testing.T, reg *registry.Registry, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("CTEST_FILTER", "")
	var stdout, stderr bytes.Buffer
	code := Execute(reg, "test", args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecute_AllPass(t *testing.T) {
	reg := registry.NewBuilder().
		Add("a", failing(0)).
		Add("b", failing(0)).
		Add("c", failing(0)).
		MustBuild()

	code, stdout, stderr := run(t, reg)

	testifyassert.Equal(t, 0, code)
	testifyassert.Contains(t, stdout, "INFO: Running a total of 3 tests.")
	testifyassert.Contains(t, stdout, "    Tests  0 failed | 3 passed (3)\n")
	testifyassert.Contains(t, stdout, " Start at  ")
	testifyassert.Contains(t, stdout, " Duration  0s\n")
	testifyassert.Contains(t, stderr, "[+] Test a passed.\n[+] Test b passed.\n[+] Test c passed.\n")
}

func TestExecute_Failures(t *testing.T) {
	reg := registry.NewBuilder().
		Add("a", failing(0)).
		Add("b", failing(1)).
		Add("c", failing(2)).
		MustBuild()

	code, stdout, stderr := run(t, reg, "run")

	testifyassert.Equal(t, 1, code)
	testifyassert.Contains(t, stdout, "    Tests  2 failed | 1 passed (3)\n")
	testifyassert.Contains(t, stderr, "[!] Test b failed 1 assertions!")
	testifyassert.Contains(t, stderr, "[!] Test c failed 2 assertions!")
	testifyassert.Contains(t, stderr, "[>] Assertion of 'false' failed\n[i] failure 2\n")
	testifyassert.NotContains(t, stderr, "Error:")
}

func TestExecute_SingleFailure(t *testing.T) {
	reg := registry.NewBuilder().
		Add("a", failing(0)).
		Add("b", failing(1)).
		Add("c", failing(0)).
		MustBuild()

	code, stdout, _ := run(t, reg)

	testifyassert.Equal(t, 1, code)
	testifyassert.Contains(t, stdout, "    Tests  1 failed | 2 passed (3)\n")
}

func TestExecute_NoTests(t *testing.T) {
	reg := registry.NewBuilder().MustBuild()

	code, stdout, stderr := run(t, reg)

	testifyassert.Equal(t, 1, code)
	testifyassert.Equal(t, "ERROR: No tests are defined!\n", stderr)
	testifyassert.Empty(t, stdout)
}

func TestExecute_Filter(t *testing.T) {
	reg := registry.NewBuilder().
		Add("parse_config", failing(0)).
		Add("load_file", failing(1)).
		Add("parse_flags", failing(0)).
		MustBuild()

	t.Run("selects matching tests", func(t *testing.T) {
		code, stdout, stderr := run(t, reg, "--filter", "parse*")
		testifyassert.Equal(t, 0, code)
		testifyassert.Contains(t, stdout, "(2)")
		testifyassert.NotContains(t, stderr, "load_file")
	})

	t.Run("no match is an error", func(t *testing.T) {
		code, stdout, stderr := run(t, reg, "run", "-f", "missing")
		testifyassert.Equal(t, 1, code)
		testifyassert.Empty(t, stdout)
		testifyassert.Contains(t, stderr, "Error: no tests match filter \"missing\"")
	})
}

func TestExecute_List(t *testing.T) {
	reg := registry.NewBuilder().
		Add("add", failing(1)).
		Add("sub", failing(0)).
		MustBuild()

	code, stdout, stderr := run(t, reg, "list")

	require.Equal(t, 0, code)
	testifyassert.Equal(t, "Found 2 test(s):\n\n├── add\n└── sub\n", stdout)
	testifyassert.Empty(t, stderr)

	code, stdout, _ = run(t, reg, "list", "--filter", "nothing*")
	require.Equal(t, 0, code)
	testifyassert.Equal(t, "No tests found\n", stdout)
}

func TestExecute_UnknownCommand(t *testing.T) {
	reg := registry.NewBuilder().Add("a", failing(0)).MustBuild()

	code, _, stderr := run(t, reg, "bogus")

	testifyassert.Equal(t, 1, code)
	testifyassert.Contains(t, stderr, "Error:")
}

func TestExecute_Idempotent(t *testing.T) {
	reg := registry.NewBuilder().
		Add("a", failing(0)).
		Add("b", failing(2)).
		MustBuild()

	code1, out1, _ := run(t, reg)
	code2, out2, _ := run(t, reg)

	testifyassert.Equal(t, code1, code2)
	testifyassert.Contains(t, out1, "1 failed | 1 passed (2)")
	testifyassert.Contains(t, out2, "1 failed | 1 passed (2)")
}

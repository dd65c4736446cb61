package arguments

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestWriteUsage(t *testing.T) {
	expectedUsage := "usage:\n" +
		"args_tester [flags] args...\n" +
		"\t--name                 (string) a name\n" +
		"\t--number               (int) a number\n" +
		"\t--verbose              (flag) enables verbose output\n"

	var (
		number  int
		name    string
		verbose bool
	)
	args := New("args_tester")
	// registered out of order on purpose: usage output is sorted by name
	args.RegisterFlag(&verbose, "verbose", "enables verbose output")
	args.Register(&number, "number", "a number")
	args.Register(&name, "name", "a name")

	var usage bytes.Buffer
	args.WriteUsage(&usage)
	if diff := cmp.Diff(expectedUsage, usage.String()); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageWithoutProgramName(t *testing.T) {
	expectedUsage := "\t--count                (int) how many\n"

	var count int
	args := New("")
	args.Register(&count, "count", "how many")

	if diff := cmp.Diff(expectedUsage, args.Usage()); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageEmptyRegistry(t *testing.T) {
	args := New("prog")
	if diff := cmp.Diff("usage:\nprog [flags] args...\n", args.Usage()); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageUnchangedByParse(t *testing.T) {
	var count int
	args := New("prog")
	args.Register(&count, "count", "how many")

	before := args.Usage()
	_, err := args.Parse(split("--count 3"))
	require.NoError(t, err)
	after := args.Usage()

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageAfterReregistration(t *testing.T) {
	var a, b int
	args := New("")
	args.Register(&a, "n", "first")
	args.Register(&b, "n", "second")

	expectedUsage := "\t--n                    (int) second\n"
	if diff := cmp.Diff(expectedUsage, args.Usage()); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

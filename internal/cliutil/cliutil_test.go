// internal/cliutil/cliutil_test.go
package cliutil

import (
	"flag"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Bool("demo", false, "")
	fs.String("target", "", "")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{
		"--demo", "a.tsv", "--target", "130", "b.tsv", "-",
	})
	if len(flagArgs) != 3 { // --demo, --target, 130
		t.Fatalf("flagArgs = %v", flagArgs)
	}
	if len(posArgs) != 3 || posArgs[2] != "-" {
		t.Fatalf("posArgs = %v", posArgs)
	}
}

func TestSplitDoubleDash(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	_, posArgs := SplitFlagsAndPositionals(fs, []string{"--", "--not-a-flag"})
	if len(posArgs) != 1 || posArgs[0] != "--not-a-flag" {
		t.Fatalf("posArgs = %v", posArgs)
	}
}

func TestExpandPositionals_NoGlob(t *testing.T) {
	out, err := ExpandPositionals([]string{"a.tsv", "-"})
	if err != nil || len(out) != 2 {
		t.Fatalf("expand: %v %v", out, err)
	}
}

func TestExpandPositionals_GlobNoMatch(t *testing.T) {
	if _, err := ExpandPositionals([]string{"no_such_dir_xyz/*.tsv"}); err == nil {
		t.Fatal("expected no-match error")
	}
}

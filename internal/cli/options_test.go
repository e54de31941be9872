// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "--demo")
	if o.Target != 127 || o.Tolerance != 5 {
		t.Errorf("HR defaults wrong: %+v", o)
	}
	if o.Window != 30 || o.MinSteady != 300 || o.RampSplit != 400 {
		t.Errorf("segmentation defaults wrong: %+v", o)
	}
	if o.Output != "text" || !o.Header || o.NoSteadyExitCode != 1 {
		t.Errorf("output defaults wrong: %+v", o)
	}
}

func TestInputsFlagAndPositional(t *testing.T) {
	o := mustParse(t, "--input", "a.tsv", "b.fit")
	if len(o.Inputs) != 2 || o.Inputs[0] != "a.tsv" || o.Inputs[1] != "b.fit" {
		t.Errorf("inputs = %+v", o.Inputs)
	}
}

func TestTargetFlag(t *testing.T) {
	o := mustParse(t, "--target", "140", "--tolerance", "3", "ride.tsv")
	if o.Target != 140 || o.Tolerance != 3 {
		t.Errorf("target parse wrong: %+v", o)
	}
}

func TestErrorNoInputs(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--target", "130"}); err == nil {
		t.Fatal("expected error with no inputs")
	}
}

func TestErrorDemoConflictsInputs(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--demo", "ride.tsv"}); err == nil {
		t.Fatal("expected --demo/--input conflict")
	}
}

func TestErrorBadOutput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--output", "xml", "ride.tsv"}); err == nil {
		t.Fatal("expected invalid --output error")
	}
}

func TestErrorBadTarget(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--target", "999", "ride.tsv"}); err == nil {
		t.Fatal("expected out-of-range --target error")
	}
}

func TestHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestStdinPositional(t *testing.T) {
	o := mustParse(t, "--target", "127", "-")
	if len(o.Inputs) != 1 || o.Inputs[0] != "-" {
		t.Errorf("stdin positional lost: %+v", o.Inputs)
	}
}

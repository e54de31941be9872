// internal/segcli/options_test.go
package segcli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

func TestParseBasics(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--window", "60", "ride.tsv"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if o.Window != 60 || len(o.Inputs) != 1 {
		t.Errorf("parse wrong: %+v", o)
	}
}

func TestNoTargetFlag(t *testing.T) {
	// The segments tool does not expose HR flags.
	if _, err := ParseArgs(newFS(), []string{"--target", "130", "ride.tsv"}); err == nil {
		t.Fatal("expected unknown flag error for --target")
	}
}

func TestErrorNoInputs(t *testing.T) {
	if _, err := ParseArgs(newFS(), nil); err == nil {
		t.Fatal("expected error with no inputs")
	}
}

package main

import (
	"testing"

	"github.com/cwbudde/algo-mathbench/bench/domain"
)

func TestDomainFlagsRepeat(t *testing.T) {
	f := &domainFlags{table: domain.Table{}}
	for _, s := range []string{"exp=-1:1", "log=0.5:2", "exp=-2:2"} {
		if err := f.Set(s); err != nil {
			t.Fatalf("Set(%q): %v", s, err)
		}
	}
	if got := f.table.Lookup("exp"); got != (domain.Domain{Lower: -2, Upper: 2}) {
		t.Fatalf("exp = %v", got)
	}
	if got := f.String(); got != "exp=-2:2,log=0.5:2" {
		t.Fatalf("String = %q", got)
	}
	if err := f.Set("exp=3:1"); err == nil {
		t.Fatal("expected error for reversed domain")
	}
}

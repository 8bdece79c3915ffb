package noise

import "testing"

func TestTableLengths(t *testing.T) {
	tables := NewTables()

	t.Log("poly4/poly5/poly17 must each have period 2^n - 1")
	cases := []struct {
		name string
		tbl  Table
		n    uint
	}{
		{"poly4", tables.Poly4, 4},
		{"poly5", tables.Poly5, 5},
		{"poly17", tables.Poly17, 17},
	}
	for _, c := range cases {
		want := 1<<c.n - 1
		if len(c.tbl) != want {
			t.Errorf("%s: len=%d want=%d", c.name, len(c.tbl), want)
		}
	}

	t.Log("composite tables are clocked by poly5, so their length scales with it")
	if len(tables.PulsePoly5) != 2*len(tables.Poly5) {
		t.Errorf("pulsepoly5: len=%d want=%d", len(tables.PulsePoly5), 2*len(tables.Poly5))
	}
	if len(tables.Poly4Poly5) != len(tables.Poly4)*len(tables.Poly5) {
		t.Errorf("poly4poly5: len=%d want=%d", len(tables.Poly4Poly5), len(tables.Poly4)*len(tables.Poly5))
	}
	if len(tables.Poly17Poly5) != len(tables.Poly17)*len(tables.Poly5) {
		t.Errorf("poly17poly5: len=%d want=%d", len(tables.Poly17Poly5), len(tables.Poly17)*len(tables.Poly5))
	}
}

// TestNoShorterPeriod checks that no table's bit sequence repeats before
// its full generated length — i.e. the generated period really is the
// sequence's own distinct period, not a multiple of a shorter cycle.
func TestNoShorterPeriod(t *testing.T) {
	tables := NewTables()
	for _, c := range []struct {
		name string
		tbl  Table
	}{
		{"poly4", tables.Poly4},
		{"poly5", tables.Poly5},
		{"poly17", tables.Poly17},
	} {
		n := len(c.tbl)
		for period := 1; period < n; period++ {
			if n%period != 0 {
				continue
			}
			matches := true
			for i := period; i < n; i++ {
				if c.tbl[i] != c.tbl[i%period] {
					matches = false
					break
				}
			}
			if matches {
				t.Errorf("%s: table repeats with shorter period %d (full period %d)", c.name, period, n)
			}
		}
	}
}

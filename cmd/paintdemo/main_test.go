package main

import "testing"

func TestPointsFlag(t *testing.T) {
	var p points
	for _, s := range []string{"120,80", " 3.5 , -2 "} {
		if err := p.Set(s); err != nil {
			t.Fatalf("Set(%q) = %v", s, err)
		}
	}
	if len(p) != 2 || p[0] != [2]float64{120, 80} || p[1] != [2]float64{3.5, -2} {
		t.Errorf("points = %v", p)
	}
	if got, want := p.String(), "120,80 3.5,-2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	for _, bad := range []string{"12", "x,1", "1,y"} {
		if err := p.Set(bad); err == nil {
			t.Errorf("Set(%q) = nil, want error", bad)
		}
	}
}

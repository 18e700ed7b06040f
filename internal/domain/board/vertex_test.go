package board

import "testing"

func TestVertexString(t *testing.T) {
	cases := []struct {
		v    Vertex
		want string
	}{
		{Vertex{Col: 0, Row: 0}, "A1"},
		{Vertex{Col: 3, Row: 3}, "D4"},
		{Vertex{Col: 7, Row: 18}, "H19"},
		{Vertex{Col: 8, Row: 0}, "J1"}, // I пропускается
		{Vertex{Col: 18, Row: 18}, "T19"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("Vertex{%d,%d}.String() = %q, want %q", c.v.Col, c.v.Row, got, c.want)
		}
	}
}

func TestParseVertex(t *testing.T) {
	v, err := ParseVertex("d4", 19)
	if err != nil {
		t.Fatalf("ParseVertex: %v", err)
	}
	if v.Col != 3 || v.Row != 3 {
		t.Errorf("ParseVertex(d4) = %+v, want Col=3 Row=3", v)
	}

	if _, err := ParseVertex("J10", 19); err != nil {
		t.Errorf("ParseVertex(J10): %v", err)
	}

	for _, bad := range []string{"", "A", "I5", "A0", "A20", "Z9", "4D"} {
		if _, err := ParseVertex(bad, 19); err == nil {
			t.Errorf("ParseVertex(%q): expected error", bad)
		}
	}

	// Граница зависит от размера доски.
	if _, err := ParseVertex("J10", 9); err == nil {
		t.Error("ParseVertex(J10) on 9x9: expected error")
	}
}

func TestParseVertexRoundTrip(t *testing.T) {
	for row := 0; row < 19; row++ {
		for col := 0; col < 19; col++ {
			v := Vertex{Col: col, Row: row}
			got, err := ParseVertex(v.String(), 19)
			if err != nil {
				t.Fatalf("round trip %s: %v", v, err)
			}
			if got != v {
				t.Fatalf("round trip %s: got %+v", v, got)
			}
		}
	}
}

func TestSizeSupported(t *testing.T) {
	for _, size := range []int{5, 9, 19} {
		if !SizeSupported(size) {
			t.Errorf("SizeSupported(%d) = false", size)
		}
	}
	for _, size := range []int{0, 4, 6, 21} {
		if SizeSupported(size) {
			t.Errorf("SizeSupported(%d) = true", size)
		}
	}
}

func TestStateOpponent(t *testing.T) {
	if Black.Opponent() != White || White.Opponent() != Black || Empty.Opponent() != Empty {
		t.Error("Opponent mapping is wrong")
	}
}

package editor

import "testing"

func TestNormalizeClampsWidth(t *testing.T) {
	cases := []struct {
		name  string
		width int
		want  int
	}{
		{"below minimum", 5, 20},
		{"above maximum", 150, 100},
		{"zero becomes full width", 0, 100},
		{"in range untouched", 60, 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Style{WidthPercent: tc.width}
			s.Normalize(20, 100)
			if s.WidthPercent != tc.want {
				t.Errorf("width %d: expected %d, got %d", tc.width, tc.want, s.WidthPercent)
			}
		})
	}
}

func TestNormalizeFloorsNegatives(t *testing.T) {
	s := Style{WidthPercent: 50, MinHeightPx: -10, PaddingPx: -1, VerticalMarginPx: -5, SpacerHeightPx: -3}
	s.Normalize(20, 100)
	if s.MinHeightPx != 0 || s.PaddingPx != 0 || s.VerticalMarginPx != 0 || s.SpacerHeightPx != 0 {
		t.Errorf("negative dimensions must clamp to zero: %+v", s)
	}
}

func TestSideMargins(t *testing.T) {
	full := Style{WidthPercent: 100}
	if l, r := full.SideMargins(); l != "" || r != "" {
		t.Errorf("full width block needs no margins, got %q %q", l, r)
	}

	narrow := Style{WidthPercent: 60}
	if l, r := narrow.SideMargins(); l != "auto" || r != "auto" {
		t.Errorf("narrow block should center, got %q %q", l, r)
	}

	left := Style{WidthPercent: 60, Alignment: AlignLeft}
	if l, r := left.SideMargins(); l != "0" || r != "auto" {
		t.Errorf("left aligned block, got %q %q", l, r)
	}

	right := Style{WidthPercent: 60, Alignment: AlignRight}
	if l, r := right.SideMargins(); l != "auto" || r != "0" {
		t.Errorf("right aligned block, got %q %q", l, r)
	}
}

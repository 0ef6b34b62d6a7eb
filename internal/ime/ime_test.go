package ime

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSpansEmptyText(t *testing.T) {
	if got := Spans(0, nil); got != nil {
		t.Errorf("Spans(0, nil) = %v, want nil", got)
	}
}

func TestSpansDefaultUnderline(t *testing.T) {
	got := Spans(5, nil)
	want := []Span{{Start: 0, End: 5, Underline: UnderlineSingle}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("default span mismatch (-want +got):\n%s", diff)
	}
}

func TestSpansDropsUnusableAttrs(t *testing.T) {
	attrs := []Attr{
		{Kind: AttrUnderline, Start: 3, End: 3, Underline: UnderlineDouble},
		{Kind: AttrUnderline, Start: 9, End: 12, Underline: UnderlineDouble},
	}
	got := Spans(5, attrs)
	want := []Span{{Start: 0, End: 5, Underline: UnderlineSingle}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unusable attrs should fall back to default (-want +got):\n%s", diff)
	}
}

func TestSpansClampsRanges(t *testing.T) {
	attrs := []Attr{{Kind: AttrUnderline, Start: -2, End: 99, Underline: UnderlineSingle}}
	got := Spans(4, attrs)
	want := []Span{{Start: 0, End: 4, Underline: UnderlineSingle}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("clamp mismatch (-want +got):\n%s", diff)
	}
}

func TestSpansSelectedDerivation(t *testing.T) {
	attrs := []Attr{
		{Kind: AttrUnderline, Start: 0, End: 6, Underline: UnderlineSingle},
		{Kind: AttrBackground, Start: 2, End: 4, Color: Color16{R: 0xffff, G: 0, B: 0}},
	}
	got := Spans(6, attrs)
	if len(got) != 3 {
		t.Fatalf("got %d spans, want 3: %v", len(got), got)
	}
	if got[0].Selected || got[2].Selected {
		t.Errorf("unhighlighted spans marked selected: %v", got)
	}
	mid := got[1]
	if !mid.Selected || !mid.HasBackground {
		t.Errorf("background span not selected: %v", mid)
	}
	if mid.Background.R != 255 || mid.Background.G != 0 {
		t.Errorf("16-bit color not narrowed: %v", mid.Background)
	}
	if mid.Start != 2 || mid.End != 4 {
		t.Errorf("selected range = [%d, %d), want [2, 4)", mid.Start, mid.End)
	}
}

func TestSpansUnderlineKindsSelect(t *testing.T) {
	for _, k := range []UnderlineKind{UnderlineDouble, UnderlineError} {
		attrs := []Attr{{Kind: AttrUnderline, Start: 1, End: 3, Underline: k}}
		got := Spans(4, attrs)
		var found bool
		for _, s := range got {
			if s.Start == 1 && s.End == 3 {
				found = true
				if !s.Selected {
					t.Errorf("underline %v span not selected", k)
				}
			} else if s.Selected {
				t.Errorf("span %v wrongly selected", s)
			}
		}
		if !found {
			t.Errorf("missing [1, 3) span for underline %v: %v", k, got)
		}
	}
}

func TestSpansUnderlineKindsNeutral(t *testing.T) {
	for _, k := range []UnderlineKind{UnderlineLow, UnderlineWavy} {
		attrs := []Attr{{Kind: AttrUnderline, Start: 0, End: 4, Underline: k}}
		got := Spans(4, attrs)
		if len(got) != 1 || got[0].Underline != k {
			t.Fatalf("underline %v not carried: %v", k, got)
		}
		if got[0].Selected {
			t.Errorf("underline %v wrongly selects", k)
		}
	}
}

func TestSpansUnderlineColor(t *testing.T) {
	attrs := []Attr{
		{Kind: AttrUnderline, Start: 0, End: 3, Underline: UnderlineWavy},
		{Kind: AttrUnderlineColor, Start: 0, End: 3, Color: Color16{R: 0xffff}},
	}
	got := Spans(3, attrs)
	if len(got) != 1 {
		t.Fatalf("got %d spans, want 1: %v", len(got), got)
	}
	s := got[0]
	if !s.HasUnderlineColor {
		t.Fatal("underline color dropped")
	}
	if s.UnderlineColor.R != 255 || s.UnderlineColor.G != 0 || s.UnderlineColor.B != 0 {
		t.Errorf("underline color = %v", s.UnderlineColor)
	}
}

func TestSpansAlphaResolution(t *testing.T) {
	attrs := []Attr{
		{Kind: AttrForeground, Start: 0, End: 4, Color: Color16{G: 0xffff}},
		{Kind: AttrForegroundAlpha, Start: 0, End: 4, Alpha: 0x8080},
		{Kind: AttrBackground, Start: 0, End: 4, Color: Color16{B: 0xffff}},
		{Kind: AttrBackgroundAlpha, Start: 0, End: 4, Alpha: 0xffff},
	}
	got := Spans(4, attrs)
	if len(got) != 1 {
		t.Fatalf("got %d spans, want 1: %v", len(got), got)
	}
	s := got[0]
	if s.Foreground.A != 0x80 {
		t.Errorf("foreground alpha = %d, want %d", s.Foreground.A, 0x80)
	}
	if s.Background.A != 255 {
		t.Errorf("background alpha = %d, want 255", s.Background.A)
	}
	if !s.Selected {
		t.Error("background span not selected")
	}
}

func TestSpansAlphaWithoutColorIgnored(t *testing.T) {
	attrs := []Attr{{Kind: AttrForegroundAlpha, Start: 0, End: 4, Alpha: 0x1000}}
	got := Spans(4, attrs)
	if len(got) != 1 {
		t.Fatalf("got %d spans, want 1: %v", len(got), got)
	}
	if got[0].HasForeground {
		t.Errorf("alpha alone invented a foreground: %v", got[0])
	}
}

func TestSpansLaterAttrWins(t *testing.T) {
	attrs := []Attr{
		{Kind: AttrUnderline, Start: 0, End: 4, Underline: UnderlineSingle},
		{Kind: AttrUnderline, Start: 0, End: 4, Underline: UnderlineDouble},
	}
	got := Spans(4, attrs)
	if len(got) != 1 || got[0].Underline != UnderlineDouble {
		t.Errorf("later attribute did not win: %v", got)
	}
}

func TestSpansMergesEqualRuns(t *testing.T) {
	attrs := []Attr{
		{Kind: AttrUnderline, Start: 0, End: 2, Underline: UnderlineSingle},
		{Kind: AttrUnderline, Start: 2, End: 5, Underline: UnderlineSingle},
	}
	got := Spans(5, attrs)
	want := []Span{{Start: 0, End: 5, Underline: UnderlineSingle}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("adjacent equal spans not merged (-want +got):\n%s", diff)
	}
}

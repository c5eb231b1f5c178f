package timeline

import (
	"fmt"
	"testing"
)

func TestSlotsLinearizeMonotonic(t *testing.T) {
	slots := Slots()
	if len(slots) == 0 {
		t.Fatal("no slots generated")
	}
	if slots[0] != DayStart {
		t.Errorf("first slot = %v, want %v", slots[0], DayStart)
	}
	if slots[len(slots)-1] != DayEnd {
		t.Errorf("last slot = %v, want %v", slots[len(slots)-1], DayEnd)
	}

	prev := Linearize(slots[0])
	for _, s := range slots[1:] {
		lin := Linearize(s)
		if lin <= prev {
			t.Fatalf("linearized slots not strictly increasing: %v after %v", lin, prev)
		}
		if lin-prev != SlotHours {
			t.Fatalf("gap between slots: %v -> %v", prev, lin)
		}
		prev = lin
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 15, 30, 45} {
			want := fmt.Sprintf("%02d:%02d", h, m)
			if got := Format(HM(h, m)); got != want {
				t.Errorf("Format(HM(%d,%d)) = %q, want %q", h, m, got, want)
			}
		}
	}
}

func TestFormatWrapsLinearizedHours(t *testing.T) {
	// Hours shifted past 24 by Linearize still print as wall-clock times.
	if got := Format(Linearize(2.5)); got != "02:30" {
		t.Errorf("Format(Linearize(2.5)) = %q, want 02:30", got)
	}
	if got := Format(26.0); got != "02:00" {
		t.Errorf("Format(26) = %q, want 02:00", got)
	}
}

func TestDuration(t *testing.T) {
	cases := []struct {
		sh, sm, eh, em int
		want           float64
	}{
		{23, 30, 2, 30, 3.0},
		{18, 0, 18, 0, 0.0},
		{9, 0, 17, 0, 8.0},
		{18, 10, 19, 5, HM(0, 55)},
	}
	for _, c := range cases {
		if got := Duration(c.sh, c.sm, c.eh, c.em); got != c.want {
			t.Errorf("Duration(%d,%d,%d,%d) = %v, want %v", c.sh, c.sm, c.eh, c.em, got, c.want)
		}
	}
}

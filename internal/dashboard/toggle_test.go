package dashboard

import "testing"

func TestToggle_ClickFlips(t *testing.T) {
	if !Toggle(false, true) {
		t.Error("clicking a closed panel should open it")
	}
	if Toggle(true, true) {
		t.Error("clicking an open panel should close it")
	}
}

func TestToggle_NoClickKeepsState(t *testing.T) {
	if Toggle(false, false) {
		t.Error("no click should keep a closed panel closed")
	}
	if !Toggle(true, false) {
		t.Error("no click should keep an open panel open")
	}
}

func TestToggle_DoubleClickRestoresState(t *testing.T) {
	for _, open := range []bool{false, true} {
		if got := Toggle(Toggle(open, true), true); got != open {
			t.Errorf("two clicks from open=%v ended at %v", open, got)
		}
	}
}

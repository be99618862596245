package config

import "testing"

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"easy":     DifficultyEasy,
		"Medium":   DifficultyMedium,
		" HARD ":   DifficultyHard,
		"hard":     DifficultyHard,
		"mEdIuM\n": DifficultyMedium,
	}
	for in, want := range cases {
		got, err := ParseDifficulty(in)
		if err != nil {
			t.Errorf("ParseDifficulty(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseDifficultyRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "normal", "insane", "fixed"} {
		if _, err := ParseDifficulty(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestIntensityStrictlyIncreasing(t *testing.T) {
	want := map[Difficulty]int{
		DifficultyEasy:   1,
		DifficultyMedium: 2,
		DifficultyHard:   4,
	}

	prev := 0
	for _, d := range Difficulties() {
		got := d.Intensity()
		if got != want[d] {
			t.Errorf("%s: expected intensity %d, got %d", d, want[d], got)
		}
		if got <= prev {
			t.Errorf("%s: intensity %d not above previous tier %d", d, got, prev)
		}
		prev = got
	}

	if Difficulty("nightmare").Intensity() != 0 {
		t.Error("unknown difficulty should have zero intensity")
	}
}

func TestDifficultyTitle(t *testing.T) {
	if DifficultyMedium.Title() != "Medium" {
		t.Errorf("expected Medium, got %q", DifficultyMedium.Title())
	}
}

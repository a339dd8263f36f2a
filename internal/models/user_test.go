package models

import "testing"

func TestGainExperience(t *testing.T) {
	u := User{Level: 1, Experience: 0, NextLevelExp: 1000}

	if leveled := u.GainExperience(500); leveled {
		t.Errorf("leveled up at 500/1000 xp")
	}

	if leveled := u.GainExperience(500); !leveled {
		t.Errorf("expected level up at 1000/1000 xp")
	}
	if u.Level != 2 || u.Experience != 0 || u.NextLevelExp != 1200 {
		t.Errorf("after level up: level=%d exp=%d next=%d, want 2 0 1200", u.Level, u.Experience, u.NextLevelExp)
	}
}

func TestGainExperienceChainsLevels(t *testing.T) {
	u := User{Level: 1, Experience: 0, NextLevelExp: 1000}

	// 1000 + 1200 + 100 carries through two thresholds.
	if leveled := u.GainExperience(2300); !leveled {
		t.Errorf("expected level ups")
	}
	if u.Level != 3 {
		t.Errorf("level = %d, want 3", u.Level)
	}
	if u.Experience != 100 {
		t.Errorf("experience = %d, want 100", u.Experience)
	}
	if u.NextLevelExp != 1440 {
		t.Errorf("nextLevelExp = %d, want 1440", u.NextLevelExp)
	}
}

func TestValidArea(t *testing.T) {
	if !ValidArea(AreaSpirit) {
		t.Errorf("Spirit should be a valid area")
	}
	if ValidArea("Astral") {
		t.Errorf("unknown area reported valid")
	}
}

package audio

import "testing"

func TestParseSound(t *testing.T) {
	tests := []struct {
		in   string
		want SoundType
		ok   bool
	}{
		{"bell", SoundBell, true},
		{"CHIME", SoundChime, true},
		{" gentle ", SoundGentle, true},
		{"classic", SoundClassic, true},
		{"nature", SoundNature, true},
		{"modern", SoundModern, true},
		{"", SoundBell, false},
		{"kazoo", SoundBell, false},
	}
	for _, tt := range tests {
		got, ok := ParseSound(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSound(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSoundsListsEveryType(t *testing.T) {
	opts := Sounds()
	if len(opts) != int(soundTypeCount) {
		t.Fatalf("Expected %d options, got %d", soundTypeCount, len(opts))
	}
	for i, opt := range opts {
		if opt.ID != SoundType(i).String() {
			t.Errorf("Option %d id %q does not match %q", i, opt.ID, SoundType(i))
		}
		if opt.Name == "" || opt.Description == "" {
			t.Errorf("Option %q missing name or description", opt.ID)
		}
	}

	// Mutating the copy must not leak
	opts[0].ID = "changed"
	if Sounds()[0].ID != "bell" {
		t.Error("Sounds should return a copy")
	}
}

func TestSoundTypeStringOutOfRange(t *testing.T) {
	if SoundType(99).String() != "bell" {
		t.Errorf("Out of range type should name the bell, got %q", SoundType(99))
	}
}

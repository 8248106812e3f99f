package audio

import "strings"

// SoundType identifies a reminder tone
type SoundType int

const (
	SoundBell SoundType = iota
	SoundChime
	SoundGentle
	SoundClassic
	SoundNature
	SoundModern

	soundTypeCount
)

// SoundOption describes a selectable tone
type SoundOption struct {
	ID          string
	Name        string
	Description string
}

var soundOptions = [soundTypeCount]SoundOption{
	SoundBell:    {ID: "bell", Name: "Soft bell", Description: "A melodic bell"},
	SoundChime:   {ID: "chime", Name: "Chime", Description: "Soothing crystal arpeggio"},
	SoundGentle:  {ID: "gentle", Name: "Gentle reminder", Description: "Subtle and discreet"},
	SoundClassic: {ID: "classic", Name: "Classic", Description: "Traditional beep"},
	SoundNature:  {ID: "nature", Name: "Nature", Description: "Warm harmonic hum"},
	SoundModern:  {ID: "modern", Name: "Modern", Description: "Contemporary electronic blip"},
}

// String returns the sound id
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return soundOptions[SoundBell].ID
	}
	return soundOptions[s].ID
}

// ParseSound resolves an id case-insensitively, unknown ids fall back to bell with ok false
func ParseSound(id string) (st SoundType, ok bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for i, opt := range soundOptions {
		if opt.ID == id {
			return SoundType(i), true
		}
	}
	return SoundBell, false
}

// Sounds lists every tone in presentation order
func Sounds() []SoundOption {
	out := make([]SoundOption, len(soundOptions))
	copy(out, soundOptions[:])
	return out
}

// Package habit holds the fixed habit category table shared by the splash grid
package habit

import (
	"strings"

	"github.com/lixenwraith/habit-splash/render"
)

// Category identifies a habit kind, None marks a decorative cell
type Category uint8

const (
	None Category = iota
	Fitness
	Reading
	Sleep
	Water
	Meditation
	Work
	Learning
)

// Count is the number of real categories, excluding None
const Count = int(Learning)

// Spec is the display binding of a category
type Spec struct {
	Name  string
	Color render.RGB
	Icon  rune
}

// Fallback is used for None and any value outside the table
var Fallback = Spec{Name: "", Color: render.MustParseHex("#64C8FF"), Icon: '⭐'}

var table = [...]Spec{
	None:       Fallback,
	Fitness:    {Name: "fitness", Color: render.MustParseHex("#FF6B6B"), Icon: '🏃'},
	Reading:    {Name: "reading", Color: render.MustParseHex("#4ECDC4"), Icon: '📚'},
	Sleep:      {Name: "sleep", Color: render.MustParseHex("#45B7D1"), Icon: '💤'},
	Water:      {Name: "water", Color: render.MustParseHex("#96CEB4"), Icon: '🚰'},
	Meditation: {Name: "meditation", Color: render.MustParseHex("#FFEAA7"), Icon: '🧘'},
	Work:       {Name: "work", Color: render.MustParseHex("#DDA0DD"), Icon: '💼'},
	Learning:   {Name: "learning", Color: render.MustParseHex("#98D8C8"), Icon: '🎯'},
}

// Lookup returns the binding for c, Fallback when unknown
func Lookup(c Category) Spec {
	if int(c) >= len(table) {
		return Fallback
	}
	return table[c]
}

// Color is shorthand for Lookup(c).Color
func (c Category) Color() render.RGB { return Lookup(c).Color }

// Icon is shorthand for Lookup(c).Icon
func (c Category) Icon() rune { return Lookup(c).Icon }

func (c Category) String() string {
	if c == None || int(c) >= len(table) {
		return "none"
	}
	return table[c].Name
}

// ParseCategory resolves a name case-insensitively, unknown names yield None and false
func ParseCategory(name string) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := Fitness; int(i) < len(table); i++ {
		if table[i].Name == name {
			return i, true
		}
	}
	return None, false
}

// All returns the real categories in table order
func All() []Category {
	out := make([]Category, 0, Count)
	for i := Fitness; int(i) < len(table); i++ {
		out = append(out, i)
	}
	return out
}

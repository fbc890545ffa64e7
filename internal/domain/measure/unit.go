package measure

import "strings"

// Unit is a length unit the converter understands.
type Unit string

const (
	Millimeter Unit = "mm"
	Inch       Unit = "in"
)

// 25.4 mm per inch, the exact international inch, kept as a ratio so
// adapters never see a float.
const (
	mmPerInchNum = 254
	mmPerInchDen = 10
)

// unitAliases maps accepted spellings to a Unit.
var unitAliases = map[string]Unit{
	"mm":          Millimeter,
	"millimeter":  Millimeter,
	"millimeters": Millimeter,
	"millimetre":  Millimeter,
	"millimetres": Millimeter,
	"in":          Inch,
	"inch":        Inch,
	"inches":      Inch,
	`"`:           Inch,
}

// ParseUnit resolves a unit tag or word (case-insensitive).
func ParseUnit(s string) (Unit, bool) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]
	return u, ok
}

// Other returns the unit a value in u converts into.
func (u Unit) Other() Unit {
	if u == Inch {
		return Millimeter
	}
	return Inch
}

// String returns the short tag ("mm" or "in").
func (u Unit) String() string {
	return string(u)
}

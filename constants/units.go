package constants

// Units is the allowlist of unit-of-measure codes considered expected. It is
// used only for light validation of the unit column; units are never inferred
// from the description text.
var Units = map[string]struct{}{
	"UN": {}, "CJ": {}, "UM": {}, "M": {}, "BAR": {}, "TUB": {}, "CX": {},
	"KIT": {}, "PAR": {}, "PÇ": {}, "PC": {}, "JG": {}, "KG": {}, "LT": {},
	"L": {}, "G": {}, "MM": {}, "CM": {}, "MT": {}, "ROL": {}, "SAC": {},
	"FD": {}, "SC": {}, "TB": {}, "BL": {}, "CONJ": {},
}

// IsKnownUnit checks if a cleaned unit code is in the allowlist.
func IsKnownUnit(unit string) bool {
	_, ok := Units[unit]
	return ok
}

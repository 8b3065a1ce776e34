package paths

import "strings"

const (
	windowsInvalidChars = `\/:*?"<>|`
	posixInvalidChars   = `\/`
)

// windowsReservedNames are device names that cannot be used as file names on
// Windows, regardless of case.
//
// Reference: https://en.wikipedia.org/wiki/Filename
var windowsReservedNames = map[string]struct{}{
	"con": {}, "prn": {}, "aux": {}, "nul": {}, "clock$": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {},
	"com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {},
	"lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
}

// IsValidBasename reports whether name can be used as a single file or
// directory name on p.
//
// Names that are empty, only whitespace, `.` or `..` are never valid, and
// neither are names containing a separator. Windows additionally forbids the
// characters `:*?"<>|`, reserved device names such as `con` or `lpt1`, and
// names with a trailing `.` or surrounding whitespace.
func (p Platform) IsValidBasename(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}

	invalid := posixInvalidChars
	if p.IsWindows() {
		invalid = windowsInvalidChars
	}

	if strings.ContainsAny(name, invalid) {
		return false
	}

	if name == "." || name == ".." {
		return false
	}

	if !p.IsWindows() {
		return true
	}

	if _, ok := windowsReservedNames[strings.ToLower(name)]; ok {
		return false
	}

	if strings.HasSuffix(name, ".") {
		return false
	}

	return name == strings.TrimSpace(name)
}

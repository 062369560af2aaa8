package version

import (
	"fmt"
	"runtime/debug"
)

const Number = "0.1.0"

// Revision searches the buildinfo built into the binary to find and return
// the git revision, if present. Returns an empty string otherwise.
func Revision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for i := range bi.Settings {
		if bi.Settings[i].Key == "vcs.revision" {
			return bi.Settings[i].Value
		}
	}
	return ""
}

func String() string {
	return format(Revision())
}

// format leaves out the parens when the binary was not built from a git
// checkout.
func format(rev string) string {
	if rev == "" {
		return fmt.Sprintf("lily %s", Number)
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	return fmt.Sprintf("lily %s (%s)", Number, rev)
}

// Package version carries the release version of seedsplit and the helpers
// the release tooling uses to compare versions.
package version

import (
	"fmt"
	"strings"

	"github.com/blang/semver"
	"github.com/urfave/cli"
)

// Version represents the value of the current semantic version
const Version = "1.2.0"

// PrintVersion prints the seedsplit version for the --version flag. It only
// prints the built-in version and never reaches out to look for a newer
// release.
func PrintVersion(c *cli.Context) {
	fmt.Fprintf(c.App.Writer, "%s %s\n", c.App.Name, c.App.Version)
}

// AIsNewerThanB takes 2 semver strings and returns true if A is newer
// than B, false otherwise
func AIsNewerThanB(A, B string) (bool, error) {
	if strings.HasPrefix(B, "0.") {
		// pre-1.0 tags did not follow the semver format. Anything
		// current is newer than those, so return true right away
		return true, nil
	}
	vA, err := semver.Make(A)
	if err != nil {
		return false, err
	}
	vB, err := semver.Make(B)
	if err != nil {
		return false, err
	}
	if vA.Compare(vB) > 0 {
		// vA is newer than vB
		return true, nil
	}
	return false, nil
}

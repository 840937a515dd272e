package main

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is this build's own version, checked against --require-version
// so a script that depends on specific parsing behavior can pin
// compatibility instead of discovering a behavior drift at parse time.
const Version = "0.3.0"

// checkRequiredVersion returns an error if constraint is non-empty and
// Version doesn't satisfy it.
func checkRequiredVersion(constraint string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid --require-version constraint %q: %w", constraint, err)
	}

	v, err := semver.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("invalid build version %q: %w", Version, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("cxxheaderparse %s does not satisfy required version %q", Version, constraint)
	}

	return nil
}

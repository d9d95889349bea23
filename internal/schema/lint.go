package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// distTag matches npm dist-tags such as "latest", "next" or "canary".
var distTag = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._-]*$`)

// LintItem returns warnings for npm dependencies whose version range cannot
// be understood. It never rejects an item: "pkg", "@scope/pkg", "pkg@latest"
// and "pkg@^1.2.0" are all fine, "pkg@^1.x.y.z" is reported.
func LintItem(item *RegistryItem) []string {
	var warnings []string
	check := func(field string, deps []string) {
		for _, dep := range deps {
			name, rng := SplitDependency(dep)
			if name == "" {
				warnings = append(warnings, fmt.Sprintf("%s: %s %q has no package name", item.Name, field, dep))
				continue
			}
			if rng == "" || distTag.MatchString(rng) {
				continue
			}
			if _, err := semver.NewConstraint(rng); err != nil {
				warnings = append(warnings, fmt.Sprintf("%s: %s %q has an invalid version range: %v", item.Name, field, dep, err))
			}
		}
	}
	check("dependency", item.Dependencies)
	check("devDependency", item.DevDependencies)
	return warnings
}

// SplitDependency splits "name@range" into its parts. The leading "@" of a
// scoped package is part of the name: "@radix-ui/react-slot@1.0.2" yields
// ("@radix-ui/react-slot", "1.0.2").
func SplitDependency(dep string) (name, rng string) {
	dep = strings.TrimSpace(dep)
	at := strings.LastIndex(dep, "@")
	if at <= 0 {
		return dep, ""
	}
	return dep[:at], dep[at+1:]
}

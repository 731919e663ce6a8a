package db

import (
	"regexp"
	"strings"
)

// Pathways designations look like RECC or FLPD: a Required/Flexible core
// marker around the two-letter area code.
var pathwaysDesignation = regexp.MustCompile(`^[RF](..)[CDR]$`)

// DeriveRequirements computes the requirement types a course can satisfy
// from its catalog designation, its attributes string, and the academic
// plans that reference it.
func DeriveRequirements(designation, attributes string, plans []string) Requirements {
	requirements := Requirements{Copt: strings.HasPrefix(designation, "CO") || strings.Contains(attributes, "COPT")}

	if match := pathwaysDesignation.FindStringSubmatch(designation); match != nil {
		pathways := match[1]
		requirements.Pathways = &pathways
	}

	requirements.Equiv = majorEquivalencies(attributes)

	if plans == nil {
		plans = []string{}
	}
	requirements.Plans = plans

	return requirements
}

// majorEquivalencies pulls the values of ME-prefixed keys out of an
// attributes string of semicolon-separated "key: value" pairs. A pair
// without a colon marks the whole string malformed, and nil is returned.
func majorEquivalencies(attributes string) []string {
	equiv := []string{}
	for _, part := range strings.Split(attributes, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, ":")
		if !found {
			return nil
		}
		if strings.HasPrefix(key, "ME") {
			equiv = append(equiv, strings.TrimSpace(value))
		}
	}
	return equiv
}

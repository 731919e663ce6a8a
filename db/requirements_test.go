package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRequirements(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		designation string
		attributes  string
		plans       []string
		expected    Requirements
	}{
		{
			name:        "required core pathways designation",
			designation: "RECC",
			expected:    Requirements{Pathways: strPtr("EC"), Equiv: []string{}, Plans: []string{}},
		},
		{
			name:        "flexible core pathways designation",
			designation: "FLPD",
			expected:    Requirements{Pathways: strPtr("LP"), Equiv: []string{}, Plans: []string{}},
		},
		{
			name:        "non pathways designation",
			designation: "MLA",
			expected:    Requirements{Equiv: []string{}, Plans: []string{}},
		},
		{
			name:        "college option designation",
			designation: "COPR",
			expected:    Requirements{Copt: true, Equiv: []string{}, Plans: []string{}},
		},
		{
			name:        "college option attribute",
			designation: "MNL",
			attributes:  "COPT: Y",
			expected:    Requirements{Copt: true, Equiv: []string{}, Plans: []string{}},
		},
		{
			name:        "major equivalencies",
			designation: "",
			attributes:  "ME01: CSCI-BA; BKCR: Y; ME02: CSCI-BS",
			expected:    Requirements{Equiv: []string{"CSCI-BA", "CSCI-BS"}, Plans: []string{}},
		},
		{
			name:        "malformed attributes",
			designation: "",
			attributes:  "ME01: CSCI-BA; JUNK",
			expected:    Requirements{Equiv: nil, Plans: []string{}},
		},
		{
			name:        "plans pass through",
			designation: "RMQC",
			plans:       []string{"CSCI-BA", "MATH-BA"},
			expected:    Requirements{Pathways: strPtr("MQ"), Equiv: []string{}, Plans: []string{"CSCI-BA", "MATH-BA"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			derived := DeriveRequirements(tt.designation, tt.attributes, tt.plans)

			if tt.expected.Pathways == nil {
				assert.Nil(t, derived.Pathways)
			} else {
				require.NotNil(t, derived.Pathways)
				assert.Equal(t, *tt.expected.Pathways, *derived.Pathways)
			}
			assert.Equal(t, tt.expected.Copt, derived.Copt)
			assert.Equal(t, tt.expected.Equiv, derived.Equiv)
			assert.Equal(t, tt.expected.Plans, derived.Plans)
		})
	}
}

func strPtr(s string) *string {
	return &s
}

// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSemanticString(t *testing.T) {
	v := &Semantic{Major: 1, Minor: 2, Patch: 3}
	require.Equal(t, "v1.2.3", v.String())
}

func TestSemanticCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Semantic
		expected int
	}{
		{
			name:     "equal",
			a:        &Semantic{Major: 1, Minor: 2, Patch: 3},
			b:        &Semantic{Major: 1, Minor: 2, Patch: 3},
			expected: 0,
		},
		{
			name:     "major wins",
			a:        &Semantic{Major: 2},
			b:        &Semantic{Major: 1, Minor: 9, Patch: 9},
			expected: 1,
		},
		{
			name:     "minor",
			a:        &Semantic{Major: 1, Minor: 1},
			b:        &Semantic{Major: 1, Minor: 2},
			expected: -1,
		},
		{
			name:     "patch",
			a:        &Semantic{Major: 1, Minor: 2, Patch: 4},
			b:        &Semantic{Major: 1, Minor: 2, Patch: 3},
			expected: 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			require.Equal(test.expected, test.a.Compare(test.b))
			require.Equal(-test.expected, test.b.Compare(test.a))
		})
	}
}

func TestString(t *testing.T) {
	require := require.New(t)

	require.Equal("statsampler/"+Current.String(), String(""))
	require.Equal("statsampler/"+Current.String()+" [commit=abc123]", String("abc123"))
}

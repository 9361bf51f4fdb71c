// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	stdjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint64(t *testing.T) {
	require := require.New(t)

	b, err := stdjson.Marshal(Uint64(42))
	require.NoError(err)
	require.JSONEq(`"42"`, string(b))

	var u Uint64
	require.NoError(stdjson.Unmarshal([]byte(`"7"`), &u))
	require.Equal(Uint64(7), u)

	require.NoError(stdjson.Unmarshal([]byte(`9`), &u))
	require.Equal(Uint64(9), u)
}

func TestBytes(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Bytes
		expectError bool
	}{
		{
			name:     "payload",
			input:    `"0x766f7465596573"`,
			expected: Bytes("voteYes"),
		},
		{
			name:     "empty string",
			input:    `""`,
			expected: nil,
		},
		{
			name:     "bare prefix",
			input:    `"0x"`,
			expected: nil,
		},
		{
			name:        "missing prefix",
			input:       `"766f7465"`,
			expectError: true,
		},
		{
			name:        "odd length",
			input:       `"0x766"`,
			expectError: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			var b Bytes
			err := stdjson.Unmarshal([]byte(test.input), &b)
			if test.expectError {
				require.Error(err)
				return
			}
			require.NoError(err)
			require.Equal(test.expected, b)
		})
	}
}

func TestBytesMarshal(t *testing.T) {
	require := require.New(t)

	b, err := stdjson.Marshal(Bytes("voteNo"))
	require.NoError(err)
	require.JSONEq(`"0x766f74654e6f"`, string(b))
}

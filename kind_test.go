// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package xvote

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input       string
		expected    Kind
		expectedErr error
	}{
		{input: "yes", expected: Yes},
		{input: " No ", expected: No},
		{input: "YES", expected: Yes},
		{input: "abstain", expectedErr: ErrUnknownKind},
		{input: "", expectedErr: ErrUnknownKind},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			require := require.New(t)

			kind, err := ParseKind(test.input)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr == nil {
				require.Equal(test.expected, kind)
			}
		})
	}
}

func TestKindVerify(t *testing.T) {
	require := require.New(t)

	for _, kind := range Kinds {
		require.NoError(kind.Verify())
		parsed, err := ParseKind(kind.String())
		require.NoError(err)
		require.Equal(kind, parsed)
	}
	require.ErrorIs(Kind(2).Verify(), ErrUnknownKind)
	require.Equal("unknown", Kind(2).String())
}

func TestVotesGet(t *testing.T) {
	require := require.New(t)

	votes := Votes{Yes: 3, No: 5}
	require.Equal(uint64(3), votes.Get(Yes))
	require.Equal(uint64(5), votes.Get(No))
	require.Zero(votes.Get(Kind(2)))
}

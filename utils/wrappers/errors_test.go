// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrsKeepsFirst(t *testing.T) {
	require := require.New(t)

	first := errors.New("first")
	second := errors.New("second")

	errs := Errs{}
	require.False(errs.Errored())

	errs.Add(nil, first, second)
	errs.Add(second)
	require.True(errs.Errored())
	require.ErrorIs(errs.Err, first)
}

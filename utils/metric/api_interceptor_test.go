// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utilmetric

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/rpc/v2"
	"github.com/luxfi/metric"
	"github.com/stretchr/testify/require"
)

func TestAPIInterceptor(t *testing.T) {
	require := require.New(t)

	interceptor, err := NewAPIInterceptor(metric.NewRegistry())
	require.NoError(err)

	info := &rpc.RequestInfo{
		Method:  "voting.getVotes",
		Request: httptest.NewRequest("POST", "/ext/voting", nil),
	}

	// Without InterceptRequest there is no start time to measure from.
	interceptor.AfterRequest(info)

	info.Request = interceptor.InterceptRequest(info)
	start, ok := info.Request.Context().Value(requestTimestampKey).(time.Time)
	require.True(ok)
	require.False(start.IsZero())

	info.Error = errors.New("failed")
	interceptor.AfterRequest(info)
}

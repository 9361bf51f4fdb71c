// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/luxfi/metric"

	"github.com/luxfi/xvote"
	utilmetric "github.com/luxfi/xvote/utils/metric"
	"github.com/luxfi/xvote/utils/wrappers"
)

const (
	kindLabel   = "kind"
	reasonLabel = "reason"

	ReasonUnauthorized = "unauthorized"
	ReasonUnrecognized = "unrecognized"
	ReasonInvariant    = "invariant"
)

var _ Metrics = (*metricsImpl)(nil)

type Metrics interface {
	utilmetric.APIInterceptor

	// MarkVoteCast is called once a vote has been dispatched and counted.
	MarkVoteCast(kind xvote.Kind)
	MarkDispatchFailure(kind xvote.Kind)
	MarkRollbackApplied(kind xvote.Kind)
	MarkInboundRejected(reason string)
}

type metricsImpl struct {
	votesCast        metric.CounterVec
	dispatchFailures metric.CounterVec
	rollbacksApplied metric.CounterVec
	inboundRejected  metric.CounterVec

	utilmetric.APIInterceptor
}

func New(registry metric.Registry) (Metrics, error) {
	apiInterceptor, err := utilmetric.NewAPIInterceptor(registry)
	if err != nil {
		return nil, err
	}

	m := &metricsImpl{
		votesCast: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "votes_cast",
				Help: "number of votes counted and dispatched",
			},
			[]string{kindLabel},
		),
		dispatchFailures: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "dispatch_failures",
				Help: "number of votes the gateway refused",
			},
			[]string{kindLabel},
		),
		rollbacksApplied: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "rollbacks_applied",
				Help: "number of votes compensated after a rollback",
			},
			[]string{kindLabel},
		),
		inboundRejected: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "inbound_rejected",
				Help: "number of inbound messages rejected",
			},
			[]string{reasonLabel},
		),
		APIInterceptor: apiInterceptor,
	}

	errs := wrappers.Errs{}
	errs.Add(
		registry.Register(metric.AsCollector(m.votesCast)),
		registry.Register(metric.AsCollector(m.dispatchFailures)),
		registry.Register(metric.AsCollector(m.rollbacksApplied)),
		registry.Register(metric.AsCollector(m.inboundRejected)),
	)
	return m, errs.Err
}

func (m *metricsImpl) MarkVoteCast(kind xvote.Kind) {
	m.votesCast.With(metric.Labels{
		kindLabel: kind.String(),
	}).Inc()
}

func (m *metricsImpl) MarkDispatchFailure(kind xvote.Kind) {
	m.dispatchFailures.With(metric.Labels{
		kindLabel: kind.String(),
	}).Inc()
}

func (m *metricsImpl) MarkRollbackApplied(kind xvote.Kind) {
	m.rollbacksApplied.With(metric.Labels{
		kindLabel: kind.String(),
	}).Inc()
}

func (m *metricsImpl) MarkInboundRejected(reason string) {
	m.inboundRejected.With(metric.Labels{
		reasonLabel: reason,
	}).Inc()
}

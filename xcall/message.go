// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package xcall

import (
	"errors"
	"fmt"

	"github.com/luxfi/constants"
)

const (
	MaxDataSize     = 2 * constants.KiB
	MaxRollbackSize = constants.KiB
)

var (
	ErrMissingData     = errors.New("missing data")
	ErrMaxDataSize     = errors.New("data exceeds max size")
	ErrMaxRollbackSize = errors.New("rollback exceeds max size")
)

// CallMessage is the envelope handed to the gateway for a single dispatch.
// A nil Rollback makes it a one-way message.
type CallMessage struct {
	From     Address
	To       string
	Data     []byte
	Rollback []byte
}

// HasRollback reports whether the sender asked to be told about failures.
func (m *CallMessage) HasRollback() bool {
	return len(m.Rollback) > 0
}

// Destination parses the To field.
func (m *CallMessage) Destination() (BTPAddress, error) {
	return ParseBTPAddress(m.To)
}

// Validate checks the envelope against the gateway limits.
func (m *CallMessage) Validate() error {
	if _, err := m.Destination(); err != nil {
		return err
	}
	switch {
	case len(m.Data) == 0:
		return ErrMissingData
	case len(m.Data) > MaxDataSize:
		return fmt.Errorf("%w: %d > %d", ErrMaxDataSize, len(m.Data), MaxDataSize)
	case len(m.Rollback) > MaxRollbackSize:
		return fmt.Errorf("%w: %d > %d", ErrMaxRollbackSize, len(m.Rollback), MaxRollbackSize)
	}
	return nil
}

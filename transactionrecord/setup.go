// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/wavestx/fault"
)

// logging is optional, the codec works without Initialise
type globalDataType struct {
	sync.RWMutex
	log *logger.L
}

var globalData globalDataType

// Initialise - attach the "transaction" log channel
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("transaction")
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	return nil
}

// Finalise - flush and detach the log channel
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil == globalData.log {
		return
	}
	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.log = nil
}

// record a rejected input
func logDecodeFailure(layout string, length int, err error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if nil != globalData.log {
		globalData.log.Debugf("%s: %d bytes rejected: %s", layout, length, err)
	}
}

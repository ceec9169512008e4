// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/bitmark-inc/logger"
)

// hold the critical channel
var critical struct {
	sync.Mutex
	log *logger.L
}

// Initialise - setup a log channel for messages that must not be lost
func Initialise() error {
	critical.Lock()
	defer critical.Unlock()

	if nil != critical.log {
		return ErrAlreadyInitialised
	}
	critical.log = logger.New("PANIC")
	if nil == critical.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and detach the channel
func Finalise() {
	critical.Lock()
	defer critical.Unlock()

	if nil != critical.log {
		critical.log.Flush()
		critical.log = nil
	}
}

// Criticalf - log a formatted string with the caller's location
func Criticalf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
}

// without a channel the message goes to stderr
func internalCriticalf(format string, arguments ...interface{}) {
	critical.Lock()
	defer critical.Unlock()

	if nil == critical.log {
		fmt.Fprintf(os.Stderr, "*** "+format+"\n", arguments...)
		return
	}
	critical.log.Criticalf(format, arguments...)
	critical.log.Flush()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/wavestx/configuration"
	"github.com/bitmark-inc/wavestx/fault"
	"github.com/bitmark-inc/wavestx/transactionrecord"
)

func testConfiguration(t *testing.T) *configuration.Configuration {
	config, err := configuration.Default("testnet")
	require.Nil(t, err)
	config.Logging.Directory = t.TempDir()
	config.Logging.Console = false
	return config
}

func TestStartupAndShutdown(t *testing.T) {
	config := testConfiguration(t)
	app := cli.NewApp()

	require.Nil(t, startup(app, config, true))
	m, ok := app.Metadata["config"].(*metadata)
	require.True(t, ok)
	assert.Equal(t, byte('T'), m.chainId)
	assert.True(t, m.verbose)

	shutdown(app)
	_, ok = app.Metadata["config"]
	assert.False(t, ok)

	// a second shutdown has nothing to do
	shutdown(app)
}

func TestFailedStartupIsFinalised(t *testing.T) {
	config := testConfiguration(t)

	// leave the transaction channel attached so its start fails
	require.Nil(t, logger.Initialise(config.Logging))
	require.Nil(t, transactionrecord.Initialise())
	logger.Finalise()

	app := cli.NewApp()
	err := startup(app, config, false)
	assert.Equal(t, fault.ErrAlreadyInitialised, err)

	_, ok := app.Metadata["config"].(*metadata)
	assert.True(t, ok, "metadata must be stored before the subsystems start")

	shutdown(app)

	// everything was released, so all of it starts again
	require.Nil(t, logger.Initialise(config.Logging))
	assert.Nil(t, fault.Initialise())
	assert.Nil(t, transactionrecord.Initialise())
	transactionrecord.Finalise()
	fault.Finalise()
	logger.Finalise()
}

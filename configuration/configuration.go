// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/wavestx/chain"
	"github.com/bitmark-inc/wavestx/fault"
	"github.com/bitmark-inc/wavestx/util"
)

// basic defaults (directories and files are relative to the "data_directory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "wavestx.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultEncoding = EncodingBase58
)

// byte encodings accepted and printed by the tools
const (
	EncodingBase58 = "base58"
	EncodingBase64 = "base64"
	EncodingHex    = "hex"
)

// Configuration - settings shared by the command line tools
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Chain         string               `gluamapper:"chain" json:"chain"`
	Encoding      string               `gluamapper:"encoding" json:"encoding"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// ChainId - network byte of the configured chain
func (c *Configuration) ChainId() byte {
	return chain.Id(c.Chain)
}

// Default - configuration used when no file is given
//
// logging goes to the console only
func Default(chainName string) (*Configuration, error) {
	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Chain:         chainName,
		Encoding:      defaultEncoding,
		Logging: logger.Configuration{
			Directory: os.TempDir(),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   true,
			Levels:    defaultLogLevels(),
		},
	}
	if err := options.validate(); nil != err {
		return nil, err
	}
	return options, nil
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if !util.EnsureFileExists(configurationFileName) {
		return nil, errors.Wrapf(fault.ErrNotFoundConfigFile, "file: %q", configurationFileName)
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Chain:         chain.Mainnet,
		Encoding:      defaultEncoding,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.Wrapf(fault.ErrInvalidDirectory, "path: %q", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	// log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, errors.Wrapf(fault.ErrInvalidDirectory, "file: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0o700); nil != err {
		return nil, err
	}

	return options, nil
}

// normalise the names and reject unknown ones
func (c *Configuration) validate() error {
	c.Chain = strings.ToLower(c.Chain)
	if !chain.Valid(c.Chain) {
		return errors.Wrapf(fault.ErrInvalidChain, "chain: %q", c.Chain)
	}

	c.Encoding = strings.ToLower(c.Encoding)
	switch c.Encoding {
	case EncodingBase58, EncodingBase64, EncodingHex:
	default:
		return errors.Wrapf(fault.ErrInvalidEncoding, "encoding: %q", c.Encoding)
	}
	return nil
}

// fresh map each time as the parser fills in the existing one
func defaultLogLevels() map[string]string {
	return map[string]string{
		logger.DefaultTag: "critical",
	}
}

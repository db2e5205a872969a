/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package cli

import (
	"io"
	"os"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/kowabunga-cloud/weblets/weblets/common/klog"
	"github.com/kowabunga-cloud/weblets/weblets/workload"
)

const (
	PasswordLengthDefault = 16
)

type WebletConfig struct {
	Global    WebletGlobalConfig            `yaml:"global"`
	CloudInit WebletCloudInitConfig         `yaml:"cloudinit"`
	Workloads map[string]workload.Overrides `yaml:"workloads"`
}

type WebletGlobalConfig struct {
	LogLevel               string  `yaml:"logLevel"`
	LogFile                string  `yaml:"logFile"`
	PasswordLength         int     `yaml:"passwordLength"`
	MinPasswordEntropyBits float64 `yaml:"minPasswordEntropyBits"`
}

type WebletCloudInitConfig struct {
	UserData string `yaml:"userData"`
	MetaData string `yaml:"metaData"`
}

func DefaultConfig() WebletConfig {
	return WebletConfig{
		Global: WebletGlobalConfig{
			LogLevel:               klog.LevelDefault,
			PasswordLength:         PasswordLengthDefault,
			MinPasswordEntropyBits: workload.PasswordMinEntropyBitsDefault,
		},
		Workloads: map[string]workload.Overrides{},
	}
}

// ParseConfig reads the YAML configuration file, if any, on top of defaults
func ParseConfig(path string) (WebletConfig, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer func() {
		_ = f.Close()
	}()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(&config)
	if err != nil && err != io.EOF {
		return config, errors.Annotatef(err, "unable to unmarshal %s", path)
	}

	// workload kinds are case-insensitive, index them by canonical name
	workloads := map[string]workload.Overrides{}
	for kind, o := range config.Workloads {
		info, err := workload.Lookup(kind)
		if err != nil {
			return config, err
		}
		if _, ok := workloads[info.Kind]; ok {
			return config, errors.AlreadyExistsf("%s workload configuration (%q)", info.Kind, kind)
		}
		workloads[info.Kind] = o
	}
	config.Workloads = workloads

	// ensure custom cloud-init template files exist
	for _, t := range []string{config.CloudInit.UserData, config.CloudInit.MetaData} {
		if t == "" {
			continue
		}
		_, err = os.Stat(t)
		if err != nil {
			return config, err
		}
	}

	return config, nil
}

func (c *WebletConfig) Loggers(debug bool) []klog.LoggerConfiguration {
	level := c.Global.LogLevel
	if debug {
		level = "DEBUG"
	}

	loggers := klog.Console(level)
	if c.Global.LogFile != "" {
		loggers = append(loggers, klog.LoggerConfiguration{
			Type:    klog.LoggerTypeFile,
			Enabled: true,
			Level:   level,
			File:    c.Global.LogFile,
		})
	}
	return loggers
}

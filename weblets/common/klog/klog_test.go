/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package klog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/op/go-logging"
)

// must run before any Init call replaces the package backend
func TestDefaultBackend(t *testing.T) {
	if logging.GetLevel("weblets") != logging.INFO {
		t.Errorf("expected INFO default level, got %v", logging.GetLevel("weblets"))
	}
	if logging.GetLevel("weblets").String() != LevelDefault {
		t.Errorf("default level should match %s", LevelDefault)
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	if err != nil || l != logging.DEBUG {
		t.Errorf("expected DEBUG, got %v (%v)", l, err)
	}
	_, err = ParseLevel("VERBOSE")
	if err == nil {
		t.Errorf("VERBOSE should not be a supported level")
	}
}

func TestInitFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weblet.log")
	err := Init("test", []LoggerConfiguration{
		{
			Type:    LoggerTypeFile,
			Enabled: true,
			Level:   "WARNING",
			File:    path,
		},
		{
			Type:    LoggerTypeConsole,
			Enabled: false,
			Level:   "bogus",
		},
	})
	if err != nil {
		t.Fatalf("%s", err.Error())
	}

	Infof("hidden %d", 1)
	Warningf("shown %d", 2)
	Errorf("failed %d", 3)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("%s", err.Error())
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Errorf("INFO message should be filtered out: %s", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("WARNING message is missing: %s", out)
	}
	if !strings.Contains(out, "[klog_test.go:") || !strings.Contains(out, "failed 3") {
		t.Errorf("ERROR message should carry its caller: %s", out)
	}
}

func TestInitInvalidConfiguration(t *testing.T) {
	if err := Init("test", []LoggerConfiguration{{Type: "syslog", Enabled: true, Level: "INFO"}}); err == nil {
		t.Errorf("syslog logger should not be supported")
	}
	if err := Init("test", Console("LOUD")); err == nil {
		t.Errorf("LOUD should not be accepted as log level")
	}
}

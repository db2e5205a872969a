/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package klog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/op/go-logging"
)

const (
	LoggerTypeConsole = "console"
	LoggerTypeFile    = "file"

	LevelDefault = "INFO"

	consoleFormat = `%{color} ▶ [%{level:.4s}]%{color:reset} %{message}`
)

// LoggerConfiguration defines custom configuration of a logging engine
type LoggerConfiguration struct {
	Type    string
	Enabled bool
	Level   string
	File    string
}

var logger = logging.MustGetLogger("weblets")

var logLevels = map[string]logging.Level{
	"CRITICAL": logging.CRITICAL,
	"ERROR":    logging.ERROR,
	"WARNING":  logging.WARNING,
	"NOTICE":   logging.NOTICE,
	"INFO":     logging.INFO,
	"DEBUG":    logging.DEBUG,
}

// ParseLevel maps a textual level (case-insensitive) onto a go-logging one
func ParseLevel(level string) (logging.Level, error) {
	l, ok := logLevels[strings.ToUpper(level)]
	if !ok {
		return logging.INFO, fmt.Errorf("unsupported log-level value: %q", level)
	}
	return l, nil
}

// Console returns a configuration for a single stderr logger
func Console(level string) []LoggerConfiguration {
	return []LoggerConfiguration{
		{
			Type:    LoggerTypeConsole,
			Enabled: true,
			Level:   level,
		},
	}
}

func newBackend(w io.Writer, format string, level logging.Level) logging.LeveledBackend {
	b := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), logging.MustStringFormatter(format))
	lb := logging.AddModuleLevel(b)
	lb.SetLevel(level, "")
	return lb
}

// Library users that never call Init only get INFO and above
func init() {
	logging.SetBackend(newBackend(os.Stderr, consoleFormat, logging.INFO))
}

// Init initializes the logging sub-system. Console output goes to stderr so
// that command output on stdout stays machine-readable.
func Init(name string, loggers []LoggerConfiguration) error {
	logger = logging.MustGetLogger(name)

	backends := []logging.Backend{}
	for _, l := range loggers {
		if !l.Enabled {
			continue
		}

		level, err := ParseLevel(l.Level)
		if err != nil {
			return err
		}

		switch l.Type {
		case LoggerTypeConsole:
			backends = append(backends, newBackend(os.Stderr, consoleFormat, level))
		case LoggerTypeFile:
			f, err := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
			if err != nil {
				return err
			}
			backends = append(backends, newBackend(f,
				`[%{time:2006-01-02 15:04:05.000}] [%{level:.4s}] %{message}`, level))
		default:
			return fmt.Errorf("unsupported logger type: %q", l.Type)
		}
	}

	logging.SetBackend(backends...)
	return nil
}

func prependPC(msg string) string {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return msg
	}

	filename := file[strings.LastIndex(file, "/")+1:] + ":" + strconv.Itoa(line)
	funcname := runtime.FuncForPC(pc).Name()
	fn := funcname[strings.LastIndex(funcname, ".")+1:]
	return fmt.Sprintf("[%s][%s()] %s", filename, fn, msg)
}

// Critical logs a simple message when severity is set to CRITICAL or above
func Critical(args ...any) {
	logger.Critical(prependPC(fmt.Sprint(args...)))
}

// Criticalf logs a formatted message when severity is set to CRITICAL or above
func Criticalf(format string, args ...any) {
	logger.Critical(prependPC(fmt.Sprintf(format, args...)))
}

// Error logs a simple message when severity is set to ERROR or above
func Error(args ...any) {
	logger.Error(prependPC(fmt.Sprint(args...)))
}

// Errorf logs a formatted message when severity is set to ERROR or above
func Errorf(format string, args ...any) {
	logger.Error(prependPC(fmt.Sprintf(format, args...)))
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Notice(args ...any) {
	logger.Notice(args...)
}

func Noticef(format string, args ...any) {
	logger.Noticef(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

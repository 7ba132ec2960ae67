// Copyright 2026 The CodeCircle Authors, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// A Logger provides leveled logging for one module.
// The functions are Printf-style functions.
// They must be safe for concurrent use.
// They do not require a trailing newline in the format.
type Logger struct {
	moduleName string
	Verbosef   func(format string, args ...any)
	Infof      func(format string, args ...any)
	Warningf   func(format string, args ...any)
	Errorf     func(format string, args ...any)
}

// Log levels for use with NewLogger.
const (
	LogLevelSilent  = iota // No logging
	LogLevelVerbose        // Debug logging
	LogLevelInfo           // Info logging
	LogLevelWarning        // Warning logging
	LogLevelError          // Error logging
)

// Loglevel is the process-wide level used by GetLogger.
var Loglevel = LogLevelInfo

// SetLogLevel converts a level name to its numeric value.
func SetLogLevel(level string) int {
	switch strings.ToLower(level) {
	case "error":
		return LogLevelError
	case "verbose":
		return LogLevelVerbose
	case "info":
		return LogLevelInfo
	case "warning", "warn":
		return LogLevelWarning
	default:
		return LogLevelSilent
	}
}

// DiscardLogf is a Logger function that drops logged lines.
func DiscardLogf(format string, args ...any) {}

func (logger *Logger) logf(prefix string) func(string, ...any) {
	return log.New(os.Stdout, fmt.Sprintf("[%s] %s: ", logger.moduleName, prefix), log.Ldate|log.Ltime|log.Lshortfile).Printf
}

// NewLogger constructs a Logger that writes to stdout.
// It logs at the specified log level and above.
// It decorates log lines with the log level, date, time, and module name.
func NewLogger(level int, module string) *Logger {
	logger := &Logger{module, DiscardLogf, DiscardLogf, DiscardLogf, DiscardLogf}
	logger.set(level)
	return logger
}

var (
	mu      sync.Mutex
	loggers = map[string]*Logger{}
)

// GetLogger returns a cached Logger for the module at the process-wide level.
func GetLogger(module string) *Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[module]; ok {
		return l
	}
	l := NewLogger(Loglevel, module)
	loggers[module] = l
	return l
}

func (logger *Logger) set(level int) *Logger {
	switch level {
	case LogLevelSilent:
		logger.Verbosef = DiscardLogf
		logger.Infof = DiscardLogf
		logger.Warningf = DiscardLogf
		logger.Errorf = DiscardLogf
	case LogLevelVerbose:
		logger.Verbosef = logger.logf("DEBUG")
		logger.Infof = logger.logf("INFO")
		logger.Warningf = logger.logf("WARNING")
		logger.Errorf = logger.logf("ERROR")
	case LogLevelInfo:
		logger.Verbosef = DiscardLogf
		logger.Infof = logger.logf("INFO")
		logger.Warningf = logger.logf("WARNING")
		logger.Errorf = logger.logf("ERROR")
	case LogLevelWarning:
		logger.Verbosef = DiscardLogf
		logger.Infof = DiscardLogf
		logger.Warningf = logger.logf("WARNING")
		logger.Errorf = logger.logf("ERROR")
	case LogLevelError:
		logger.Verbosef = DiscardLogf
		logger.Infof = DiscardLogf
		logger.Warningf = DiscardLogf
		logger.Errorf = logger.logf("ERROR")
	default:
		//empty
	}

	return logger
}

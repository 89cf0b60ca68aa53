/*
 * Copyright 2021. Go-Sharding Author All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 *  File author: Anders Xiao
 */

package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// StandardLogger is the minimal logging surface the rest of the project
// depends on, *zap.SugaredLogger satisfies it.
type StandardLogger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
}

var loggerMutex sync.Mutex

// loggers is the set of named loggers in the system
var loggers = make(map[string]*zap.SugaredLogger)

var levels = make(map[string]zap.AtomicLevel)
var defaultLevel = zapcore.InfoLevel
var output = zapcore.AddSync(os.Stdout)

var logCore = newCore(ColorizedOutput, output, defaultLevel)

func newCore(format LogFormat, ws zapcore.WriteSyncer, level zapcore.LevelEnabler) zapcore.Core {
	cnf := zap.NewDevelopmentEncoderConfig()
	cnf.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch format {
	case JSONOutput:
		encoder = zapcore.NewJSONEncoder(cnf)
	case ColorizedOutput:
		cnf.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cnf)
	default:
		encoder = zapcore.NewConsoleEncoder(cnf)
	}
	return zapcore.NewCore(encoder, ws, level)
}

var DefaultLogger = GetLogger("go-sharding")

// GetLogger returns the named logger, creating it on first use. Loggers with
// the same name share one atomic level so SetLevel takes effect everywhere.
func GetLogger(name string) *zap.SugaredLogger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	log, ok := loggers[name]
	if !ok {
		levels[name] = zap.NewAtomicLevelAt(defaultLevel)

		log = zap.New(logCore, zap.AddCaller()).
			WithOptions(zap.IncreaseLevel(levels[name])).
			Named(name).
			Sugar()

		loggers[name] = log
	}

	return log
}

// SetLevel adjusts the level of one named logger at runtime.
func SetLevel(name string, level zapcore.Level) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	if l, ok := levels[name]; ok {
		l.SetLevel(level)
	}
}

/*
Copyright 2022 Cortex Labs, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logging

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.SugaredLogger
var loggerLock sync.Mutex

var _logLevels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

func initializeLogger() {
	logLevel := os.Getenv("MEDSEG_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	zapLevel, ok := _logLevels[strings.ToLower(logLevel)]
	if !ok {
		panic(ErrorInvalidLogLevel(logLevel, logLevelTypes()))
	}

	zapConfig := DefaultZapConfig(zapLevel)

	disableJSONLogging := strings.ToLower(os.Getenv("MEDSEG_DISABLE_JSON_LOGGING"))
	if disableJSONLogging == "true" {
		zapConfig.Encoding = "console"
	}

	builtLogger, err := zapConfig.Build()
	if err != nil {
		panic(err)
	}

	logger = builtLogger.Sugar()
}

func GetLogger() *zap.SugaredLogger {
	loggerLock.Lock()
	defer loggerLock.Unlock()

	if logger == nil {
		initializeLogger()
	}
	return logger
}

func DefaultZapConfig(level zapcore.Level) zap.Config {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "message"

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
}

func logLevelTypes() []string {
	levels := make([]string, 0, len(_logLevels))
	for level := range _logLevels {
		levels = append(levels, level)
	}
	return levels
}

/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package log

import (
	"os"
	"path/filepath"
)

import (
	"github.com/natefinch/lumberjack"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the level of logging.
type LogLevel int8

const (
	DebugLevel = LogLevel(zapcore.DebugLevel)
	InfoLevel  = LogLevel(zapcore.InfoLevel)
	WarnLevel  = LogLevel(zapcore.WarnLevel)
	ErrorLevel = LogLevel(zapcore.ErrorLevel)

	_minLevel = DebugLevel
	_maxLevel = ErrorLevel

	defaultLoggerLevel = InfoLevel
)

// LoggingConfig controls the fixture's debug logger. With an empty LogPath
// the logger writes to stdout only; otherwise a rotated file is added.
type LoggingConfig struct {
	LogName       string `yaml:"log_name" json:"log_name"`
	LogPath       string `yaml:"log_path" json:"log_path"`
	LogLevel      int    `yaml:"log_level" json:"log_level"`
	LogMaxSize    int    `yaml:"log_max_size" json:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups" json:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age" json:"log_max_age"`
	LogCompress   bool   `yaml:"log_compress" json:"log_compress"`
}

var (
	globalLogger *zap.SugaredLogger

	defaultLoggingConfig = &LoggingConfig{
		LogName:       "mockcursor.log",
		LogLevel:      int(defaultLoggerLevel),
		LogMaxSize:    10,
		LogMaxBackups: 5,
		LogMaxAge:     30,
	}
)

func init() {
	globalLogger = NewLogger(defaultLoggingConfig)
}

// Init replaces the global logger with one built from cfg.
func Init(cfg *LoggingConfig) {
	globalLogger = NewLogger(cfg)
}

// NewLogger builds a zap sugared logger from cfg.
func NewLogger(cfg *LoggingConfig) *zap.SugaredLogger {
	syncer := zapcore.AddSync(os.Stdout)
	if cfg.LogPath != "" {
		syncer = zapcore.NewMultiWriteSyncer(zapcore.AddSync(buildLumberJack(cfg)), syncer)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewConsoleEncoder(encoderConfig)
	core := zapcore.NewCore(encoder, syncer, zap.NewAtomicLevelAt(getLoggerLevel(cfg.LogLevel)))
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

func buildLumberJack(cfg *LoggingConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogPath, cfg.LogName),
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}
}

func getLoggerLevel(level int) zapcore.Level {
	logLevel := LogLevel(level)
	if logLevel < _minLevel || logLevel > _maxLevel {
		return zapcore.Level(defaultLoggerLevel)
	}
	return zapcore.Level(logLevel)
}

func Debug(v ...interface{}) {
	globalLogger.Debug(v...)
}

func Debugf(format string, v ...interface{}) {
	globalLogger.Debugf(format, v...)
}

func Info(v ...interface{}) {
	globalLogger.Info(v...)
}

func Infof(format string, v ...interface{}) {
	globalLogger.Infof(format, v...)
}

func Warn(v ...interface{}) {
	globalLogger.Warn(v...)
}

func Warnf(format string, v ...interface{}) {
	globalLogger.Warnf(format, v...)
}

func Error(v ...interface{}) {
	globalLogger.Error(v...)
}

func Errorf(format string, v ...interface{}) {
	globalLogger.Errorf(format, v...)
}

/*
Copyright 2024 The BizDock Authors.

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

package log

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level       string
	Filename    string
	SendToFile  bool
	Development bool
}

var (
	mu      sync.Mutex
	logger  *zap.Logger
	sugared *zap.SugaredLogger
)

// Init builds the process-wide logger. It is expected to be called once from
// main before anything logs; callers before Init get a sane default.
func Init(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()

	logger = newLogger(cfg)
	sugared = logger.Sugar()
}

func newLogger(cfg *Config) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Development {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), level),
	}
	if cfg.SendToFile && cfg.Filename != "" {
		if f, err := openLogFile(cfg.Filename); err == nil {
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.Lock(f), level))
		}
	}

	opts := []zap.Option{zap.AddCallerSkip(1)}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}

	return zap.New(zapcore.NewTee(cores...), opts...)
}

// NewFileLogger returns a logger which writes JSON lines to the given file
// only, used for the request log.
func NewFileLogger(path string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	f, err := openLogFile(path)
	if err != nil {
		return Logger()
	}

	return zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.Lock(f), zapcore.InfoLevel))
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = newLogger(&Config{Level: "debug", Development: true})
		sugared = logger.Sugar()
	}
	return logger
}

func SugaredLogger() *zap.SugaredLogger {
	Logger()
	return sugared
}

func Debugf(format string, args ...interface{}) { SugaredLogger().Debugf(format, args...) }
func Infof(format string, args ...interface{})  { SugaredLogger().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { SugaredLogger().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { SugaredLogger().Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { SugaredLogger().Fatalf(format, args...) }
func Panicf(format string, args ...interface{}) { SugaredLogger().Panicf(format, args...) }

func Debug(args ...interface{}) { SugaredLogger().Debug(args...) }
func Info(args ...interface{})  { SugaredLogger().Info(args...) }
func Warn(args ...interface{})  { SugaredLogger().Warn(args...) }
func Error(args ...interface{}) { SugaredLogger().Error(args...) }
func Fatal(args ...interface{}) { SugaredLogger().Fatal(args...) }

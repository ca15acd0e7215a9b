// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package commons

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging surface every component takes. It intentionally hides
// the zap types so call sites never depend on the logging backend.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	With(args ...interface{}) Logger
	Sync() error
}

type applicationLogger struct {
	sugar *zap.SugaredLogger
}

// LoggerOption customizes the application logger.
type LoggerOption func(*loggerOptions)

type loggerOptions struct {
	level    zapcore.Level
	filePath string
}

// WithLevel sets the minimum level from its string name; unknown names keep
// the default (info).
func WithLevel(level string) LoggerOption {
	return func(o *loggerOptions) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

// WithLogFile mirrors log output to a rotated file next to stderr.
func WithLogFile(path string) LoggerOption {
	return func(o *loggerOptions) {
		o.filePath = path
	}
}

// NewApplicationLogger builds the process-wide logger. Console output goes to
// stderr; an optional rotated file sink is added with WithLogFile.
func NewApplicationLogger(opts ...LoggerOption) (Logger, error) {
	options := loggerOptions{level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(&options)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), options.level),
	}
	if options.filePath != "" {
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   options.filePath,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg), fileSink, options.level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	return &applicationLogger{sugar: logger.Sugar()}, nil
}

func (l *applicationLogger) Debug(args ...interface{}) { l.sugar.Debug(args...) }

func (l *applicationLogger) Debugf(template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}

func (l *applicationLogger) Info(args ...interface{}) { l.sugar.Info(args...) }

func (l *applicationLogger) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}

func (l *applicationLogger) Warn(args ...interface{}) { l.sugar.Warn(args...) }

func (l *applicationLogger) Warnf(template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}

func (l *applicationLogger) Error(args ...interface{}) { l.sugar.Error(args...) }

func (l *applicationLogger) Errorf(template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}

func (l *applicationLogger) With(args ...interface{}) Logger {
	return &applicationLogger{sugar: l.sugar.With(args...)}
}

func (l *applicationLogger) Sync() error { return l.sugar.Sync() }

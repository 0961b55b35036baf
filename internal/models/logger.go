package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration after which a query is logged as a warning.
const slowQuery = 200 * time.Millisecond

// gormLogger writes gorm's log output to zerolog.
//
// Every query is traced at debug level. Queries slower than slowQuery
// are warnings and failed queries are errors. A missing record is not
// a failure, the callers translate it into ErrResourceNotFound.
type gormLogger struct {
	log   zerolog.Logger
	level gorm_logger.LogLevel
	slow  time.Duration
}

func newGormLogger(l zerolog.Logger) *gormLogger {
	return &gormLogger{
		log:   l.With().Str("component", "gorm").Logger(),
		level: gorm_logger.Info,
		slow:  slowQuery,
	}
}

func (l *gormLogger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gorm_logger.Info {
		l.log.Info().Msgf(msg, args...)
	}
}

func (l *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gorm_logger.Warn {
		l.log.Warn().Msgf(msg, args...)
	}
}

func (l *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gorm_logger.Error {
		l.log.Error().Msgf(msg, args...)
	}
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound)

	var event *zerolog.Event
	switch {
	case failed && l.level >= gorm_logger.Error:
		event = l.log.Error().Err(err)
	case elapsed > l.slow && l.level >= gorm_logger.Warn:
		event = l.log.Warn().Bool("slow", true)
	case l.level >= gorm_logger.Info:
		event = l.log.Debug()
	default:
		return
	}

	sql, rows := fc()
	event.Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("query")
}

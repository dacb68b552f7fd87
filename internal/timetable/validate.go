package timetable

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Filter drops malformed entries before grouping.
type Filter struct {
	validate *validator.Validate
	logger   *zap.Logger
}

// NewFilter creates a Filter. Nil arguments fall back to defaults.
func NewFilter(validate *validator.Validate, logger *zap.Logger) *Filter {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Filter{validate: validate, logger: logger}
}

// Valid returns the entries that satisfy the grid bounds, in input order.
// Dropped entries are logged but never reported to the caller.
func (f *Filter) Valid(entries []Entry) []Entry {
	valid := make([]Entry, 0, len(entries))
	for i, e := range entries {
		if err := f.validate.Struct(e); err != nil {
			f.logSkipped(i, e, err)
			continue
		}
		valid = append(valid, e)
	}
	return valid
}

func (f *Filter) logSkipped(index int, e Entry, err error) {
	fields := []zap.Field{
		zap.Int("index", index),
		zap.Int("day", e.Day),
		zap.Int("start_hour", e.StartHour),
		zap.Int("duration", e.Duration),
		zap.String("subject", e.Subject.Name),
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields = append(fields,
			zap.String("field", verrs[0].Namespace()),
			zap.String("rule", verrs[0].Tag()),
		)
	} else {
		fields = append(fields, zap.Error(err))
	}

	f.logger.Warn("entry skipped", fields...)
}

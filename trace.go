package vparse

import (
	"github.com/sirupsen/logrus"
)

// Trace runs p and logs its outcome at debug level. It is meant to be
// wrapped around the rules of a grammar while debugging it.
func Trace[I comparable, T any](logger logrus.FieldLogger, name string,
	in *Input[I], p Parser[I, T]) Result[I, T] {
	start := in.Offset()
	result := p(in)

	entry := logger.WithFields(logrus.Fields{
		"parser":   name,
		"offset":   start,
		"state":    result.state.String(),
		"consumed": in.Offset() - start,
	})

	switch result.state {
	case StateError:
		entry.WithError(result.err).Debug("parser failed")
	case StateIncomplete:
		entry.WithField("needed", result.needed).Debug("parser needs more data")
	default:
		entry.Debug("parser matched")
	}

	return result
}

// Traced wraps p so that every invocation is traced.
func Traced[I comparable, T any](logger logrus.FieldLogger, name string,
	p Parser[I, T]) Parser[I, T] {
	return func(in *Input[I]) Result[I, T] {
		return Trace(logger, name, in, p)
	}
}

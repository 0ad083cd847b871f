package vparse

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	assert "github.com/stretchr/testify/assert"
)

func TestTrace(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	in := NewInput([]byte("123x"))
	value, err := Trace(logger, "number", in, Decimal[uint8]).Unpack()
	assert.NoError(t, err)
	assert.Equal(t, uint8(123), value)

	entry := hook.LastEntry()
	assert.Equal(t, "parser matched", entry.Message)
	assert.Equal(t, "number", entry.Data["parser"])
	assert.Equal(t, "Data", entry.Data["state"])
	assert.Equal(t, 0, entry.Data["offset"])
	assert.Equal(t, 3, entry.Data["consumed"])

	Trace(logger, "number", in, Decimal[uint8])
	entry = hook.LastEntry()
	assert.Equal(t, "parser failed", entry.Message)
	assert.Equal(t, 3, entry.Data["offset"])
	assert.NotNil(t, entry.Data[logrus.ErrorKey])

	stream := NewStreamInput[byte]()
	stream.Fill([]byte("12"))
	Trace(logger, "number", stream, Decimal[uint8])
	entry = hook.LastEntry()
	assert.Equal(t, "Incomplete", entry.Data["state"])
	assert.Equal(t, 1, entry.Data["needed"])
}

func TestTraced(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	values, err := Many(NewInput([]byte("ab1")), Traced(logger, "letter", letter)).Unpack()
	assert.NoError(t, err)
	assert.Equal(t, []byte("ab"), values)

	// Two matches and the failure which ends the repetition.
	assert.Equal(t, 3, len(hook.AllEntries()))

	// Nothing is logged above debug level.
	hook.Reset()
	logger.SetLevel(logrus.InfoLevel)
	Many(NewInput([]byte("ab1")), Traced(logger, "letter", letter))
	assert.Equal(t, 0, len(hook.AllEntries()))
}

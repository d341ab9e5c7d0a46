package statistics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndyer/tetros/pkg/statistics"
)

func TestRecordClearUpdatesLinesAndSizeCounter(t *testing.T) {
	s := statistics.New()

	s.RecordClear(0)
	s.RecordClear(1)
	s.RecordClear(2)
	s.RecordClear(3)
	s.RecordClear(4)

	assert.Equal(t, uint64(1+2+3+4), s.Lines)
	assert.Equal(t, uint64(1), s.Singles)
	assert.Equal(t, uint64(1), s.Doubles)
	assert.Equal(t, uint64(1), s.Triples)
	assert.Equal(t, uint64(1), s.Fours)
	assert.Equal(t, s.Lines, s.Singles+2*s.Doubles+3*s.Triples+4*s.Fours)
}

func TestRecordLockCountsPieces(t *testing.T) {
	s := statistics.New()
	s.RecordLock()
	s.RecordLock()

	assert.Equal(t, uint64(2), s.Pieces)
}

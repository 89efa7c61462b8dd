package gateway

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestSequenceNotFiredMatchesSQLState55000(t *testing.T) {
	err := &pq.Error{Code: "55000", Message: `currval of sequence "orders_ordernumber_seq" is not yet defined in this session`}

	assert.True(t, sequenceNotFired(err))
	assert.True(t, sequenceNotFired(fmt.Errorf("scan: %w", err)))
}

func TestSequenceNotFiredIgnoresOtherErrors(t *testing.T) {
	assert.False(t, sequenceNotFired(nil))
	assert.False(t, sequenceNotFired(errors.New("connection reset")))
	assert.False(t, sequenceNotFired(&pq.Error{Code: "42P01"}))
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckedCount(t *testing.T) {
	session := WorkoutSession{Checks: []bool{true, false, true}}
	assert.Equal(t, 2, session.CheckedCount())

	session.Checks = make([]bool, SessionSize)
	assert.Equal(t, 0, session.CheckedCount())
}

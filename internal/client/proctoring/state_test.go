package proctoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_CountersAndListeners(t *testing.T) {
	s := NewStore()
	calls := 0
	unsub := s.Subscribe(func() { calls++ })

	s.AddWarning()
	s.AddWarning()
	s.RecordViolation("tab-switch", "left the page")

	assert.Equal(t, 2, s.Warnings())
	v := s.Violations()
	if assert.Len(t, v, 1) {
		assert.Equal(t, "tab-switch", v[0].Kind)
		assert.False(t, v[0].At.IsZero())
	}
	assert.Equal(t, 3, calls)

	unsub()
	unsub()
	s.AddWarning()
	assert.Equal(t, 3, calls)
}

func TestStore_ViolationsIsACopy(t *testing.T) {
	s := NewStore()
	s.RecordViolation("face-missing", "")

	v := s.Violations()
	v[0].Kind = "edited"
	assert.Equal(t, "face-missing", s.Violations()[0].Kind)
}

func TestStore_StartStopNotifiesOnChangeOnly(t *testing.T) {
	s := NewStore()
	calls := 0
	s.Subscribe(func() { calls++ })

	s.Start()
	s.Start()
	assert.True(t, s.Running())
	s.Stop()
	assert.False(t, s.Running())
	assert.Equal(t, 2, calls)
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.AddWarning()
	s.RecordViolation("x", "")
	s.Reset()
	assert.Zero(t, s.Warnings())
	assert.Empty(t, s.Violations())
}

func TestStore_ListenerMayReadState(t *testing.T) {
	s := NewStore()
	var seen int
	s.Subscribe(func() { seen = s.Warnings() })
	s.AddWarning()
	assert.Equal(t, 1, seen)
}

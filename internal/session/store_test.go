package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendAndGet(t *testing.T) {
	s := NewStore(20, 0)
	id := s.NewID()

	s.Append(id, "user", "Do you ship to Canada?")
	s.Append(id, "assistant", "Yes, we ship worldwide.")

	msgs, ok := s.Get(id)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", msgs[0].Role)
	assert.Equal(t, "Do you ship to Canada?", msgs[0].Content)
	assert.Equal(t, "assistant", msgs[1].Role)
	assert.False(t, msgs[0].Timestamp.IsZero())
}

func TestStore_UnknownSession(t *testing.T) {
	s := NewStore(20, 0)

	msgs, ok := s.Get("nope")
	assert.False(t, ok)
	assert.Nil(t, msgs)
}

func TestStore_TranscriptCap(t *testing.T) {
	s := NewStore(4, 0)
	id := s.NewID()

	for i := 0; i < 10; i++ {
		s.Append(id, "user", fmt.Sprintf("message %d", i))
	}

	msgs, ok := s.Get(id)
	require.True(t, ok)
	require.Len(t, msgs, 4)
	assert.Equal(t, "message 6", msgs[0].Content)
	assert.Equal(t, "message 9", msgs[3].Content)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(20, 0)
	id := s.NewID()
	s.Append(id, "user", "hello")

	s.Clear(id)
	_, ok := s.Get(id)
	assert.False(t, ok)

	// Clearing twice is harmless.
	s.Clear(id)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore(20, 0)
	id := s.NewID()
	s.Append(id, "user", "original")

	msgs, _ := s.Get(id)
	msgs[0].Content = "mutated"

	again, _ := s.Get(id)
	assert.Equal(t, "original", again[0].Content)
}

func TestStore_Sweep(t *testing.T) {
	s := NewStore(20, 40*time.Millisecond)
	defer s.Close()

	id := s.NewID()
	s.Append(id, "user", "hello")
	require.Equal(t, 1, s.Len())

	assert.Eventually(t, func() bool {
		return s.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestStore_UniqueIDs(t *testing.T) {
	s := NewStore(20, 0)
	assert.NotEqual(t, s.NewID(), s.NewID())
}

package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelguide-backend/internal/models"
)

func result(destination, text string) models.ItineraryResult {
	return models.ItineraryResult{
		Destination: destination,
		Itinerary:   text,
		GeneratedAt: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestSession_GetEmpty(t *testing.T) {
	sess := &Session{ID: "s1"}

	_, ok := sess.Get()

	assert.False(t, ok)
}

func TestSession_PutThenGet(t *testing.T) {
	sess := &Session{ID: "s1"}

	sess.Put(result("Paris", "Day 1: ..."))

	got, ok := sess.Get()
	require.True(t, ok)
	assert.Equal(t, "Paris", got.Destination)
	assert.Equal(t, "Day 1: ...", got.Itinerary)
}

func TestSession_GetIsIdempotent(t *testing.T) {
	sess := &Session{ID: "s1"}
	sess.Put(result("Rome", "Colosseum first."))

	first, ok1 := sess.Get()
	second, ok2 := sess.Get()

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestSession_PutReplacesWholesale(t *testing.T) {
	sess := &Session{ID: "s1"}
	sess.Put(result("Paris", "old itinerary"))

	sess.Put(result("Tokyo", "new itinerary"))

	got, ok := sess.Get()
	require.True(t, ok)
	assert.Equal(t, "Tokyo", got.Destination)
	assert.Equal(t, "new itinerary", got.Itinerary)
}

func TestStore_SameIDSameSession(t *testing.T) {
	st := NewStore(time.Hour)

	a := st.Get("id-1")
	b := st.Get("id-1")

	assert.Same(t, a, b)
	assert.Equal(t, 1, st.Len())
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	st := NewStore(time.Hour)

	st.Get("alice").Put(result("Paris", "alice's trip"))
	st.Get("bob").Put(result("Oslo", "bob's trip"))

	got, ok := st.Get("alice").Get()
	require.True(t, ok)
	assert.Equal(t, "alice's trip", got.Itinerary)

	got, ok = st.Get("bob").Get()
	require.True(t, ok)
	assert.Equal(t, "bob's trip", got.Itinerary)
}

func TestStore_NewSessionStartsEmpty(t *testing.T) {
	st := NewStore(time.Hour)

	_, ok := st.Get("fresh").Get()

	assert.False(t, ok)
}

func TestSession_GenerationGateSerializes(t *testing.T) {
	sess := &Session{ID: "s1"}
	order := make(chan string, 2)

	sess.BeginGeneration()
	go func() {
		sess.BeginGeneration()
		order <- "second"
		sess.EndGeneration()
	}()

	order <- "first"
	sess.EndGeneration()

	assert.Equal(t, "first", <-order)
	assert.Equal(t, "second", <-order)
}

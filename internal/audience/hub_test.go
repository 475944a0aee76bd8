package audience

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seminar/internal/deck"
)

func TestInfo(t *testing.T) {
	assert.Equal(t, SectionInfo{ID: deck.SectionDemo, Label: "Digital Signage Demo", Badge: "08"}, Info(deck.SectionDemo))
	assert.Equal(t, deck.SectionIntro, Info("bogus").ID, "unknown ids describe the intro")
}

func TestHubFollowsController(t *testing.T) {
	hub := NewHub()
	c := deck.NewController()
	c.Observe(hub.Observer())

	assert.Equal(t, deck.SectionIntro, hub.Current())
	require.NoError(t, c.Select(deck.SectionRouting))
	assert.Equal(t, deck.SectionRouting, hub.Current())

	hub.Publish("bogus")
	assert.Equal(t, deck.SectionRouting, hub.Current(), "invalid ids are ignored")
}

func TestHubSubscriberGetsCurrentThenLatest(t *testing.T) {
	hub := NewHub()
	hub.Publish(deck.SectionAgenda)

	c, ok := hub.subscribe()
	require.True(t, ok)
	assert.Equal(t, 1, hub.Viewers())

	var got SectionInfo
	require.NoError(t, json.Unmarshal(<-c.send, &got))
	assert.Equal(t, deck.SectionAgenda, got.ID)

	// Publishing faster than the viewer drains never blocks; the newest wins.
	hub.Publish(deck.SectionWorkflow)
	hub.Publish(deck.SectionEmbedding)
	hub.Publish(deck.SectionDemo)
	require.NoError(t, json.Unmarshal(<-c.send, &got))
	assert.Equal(t, deck.SectionDemo, got.ID)
	assert.Equal(t, "08", got.Badge)

	hub.unsubscribe(c)
	hub.unsubscribe(c)
	assert.Equal(t, 0, hub.Viewers())
	_, open := <-c.send
	assert.False(t, open)
}

func TestHubClose(t *testing.T) {
	hub := NewHub()
	c, ok := hub.subscribe()
	require.True(t, ok)
	<-c.send

	hub.Close()
	_, open := <-c.send
	assert.False(t, open, "close disconnects viewers")
	_, ok = hub.subscribe()
	assert.False(t, ok, "closed hub refuses viewers")
	hub.Publish(deck.SectionDemo) // must not panic on closed channels
}

package audience

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seminar/internal/deck"
)

func newTestServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub()
	srv := httptest.NewServer(NewServer(context.Background(), hub).Handler())
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

func noRedirect(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	client := &http.Client{CheckRedirect: noRedirect}
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRootRedirectsToCurrent(t *testing.T) {
	hub, srv := newTestServer(t)
	hub.Publish(deck.SectionWorkflow)

	resp, _ := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/sections/workflow", resp.Header.Get("Location"))
}

func TestSectionPageShowsBodyWithoutNotes(t *testing.T) {
	_, srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/sections/frustrations")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Why Do LLMs Frustrate Us?")
	assert.Contains(t, body, "It hallucinated an API, library or function that simply doesn")
	for _, note := range deck.Resolve(deck.SectionFrustrations).Notes {
		assert.NotContains(t, body, note[:30], "presenter notes must not reach the audience")
	}
}

func TestSectionPageRendersEveryBlockKind(t *testing.T) {
	_, srv := newTestServer(t)
	for _, s := range deck.Sections() {
		resp, body := get(t, srv.URL+"/sections/"+string(s.ID))
		assert.Equal(t, http.StatusOK, resp.StatusCode, s.ID)
		assert.True(t, strings.Contains(body, `data-section="`+string(s.ID)+`"`), s.ID)
	}
	_, body := get(t, srv.URL+"/sections/mental-shift")
	assert.Contains(t, body, `class="columns"`)
	assert.Contains(t, body, "Deterministic Code")
	_, body = get(t, srv.URL+"/sections/workflow")
	assert.Contains(t, body, "Think Before You Prompt")
	_, body = get(t, srv.URL+"/sections/agenda")
	assert.Contains(t, body, "21–25 min")
}

func TestUnknownSectionFallsBackToIntro(t *testing.T) {
	_, srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/sections/bogus")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "LLMs in Production: What Breaks, What Works, and Why")
	assert.Contains(t, body, `data-section="intro"`)
}

func TestAPISectionsInOrder(t *testing.T) {
	_, srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/api/sections")
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var got []SectionInfo
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	sections := deck.Sections()
	require.Len(t, got, len(sections))
	for i, s := range sections {
		assert.Equal(t, SectionInfo{ID: s.ID, Label: s.Label, Badge: deck.Badge(i)}, got[i])
	}
}

func TestAPICurrent(t *testing.T) {
	hub, srv := newTestServer(t)
	hub.Publish(deck.SectionTakeaways)

	_, body := get(t, srv.URL+"/api/current")
	var got SectionInfo
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, SectionInfo{ID: deck.SectionTakeaways, Label: "Key Takeaways", Badge: "09"}, got)
}

func TestAPIRejectsOtherMethods(t *testing.T) {
	_, srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/current", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestWebsocketPushesTransitions(t *testing.T) {
	hub, srv := newTestServer(t)
	c := deck.NewController()
	c.Observe(hub.Observer())

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var got SectionInfo
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, deck.SectionIntro, got.ID, "current section on connect")

	require.NoError(t, c.Select(deck.SectionDemo))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, SectionInfo{ID: deck.SectionDemo, Label: "Digital Signage Demo", Badge: "08"}, got)
}

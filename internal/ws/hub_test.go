package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// dialPair returns both ends of a live websocket connection.
func dialPair(t *testing.T) (client, server *websocket.Conn) {
	t.Helper()

	serverCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverCh <- conn
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case server = <-serverCh:
	case <-time.After(2 * time.Second):
		t.Fatal("server side of websocket never arrived")
	}
	return client, server
}

func readMessage(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	return string(data)
}

func TestBroadcastReachesSubscriber(t *testing.T) {
	hub := NewHub()
	client, server := dialPair(t)

	hub.Subscribe("ABCD2345", server)
	hub.Broadcast("ABCD2345", Message{Type: "attendee_accepted", Data: map[string]string{"name": "Ana"}})

	msg := readMessage(t, client)
	assert.Contains(t, msg, `"attendee_accepted"`)
	assert.Contains(t, msg, `"Ana"`)
}

func TestBroadcastWithoutSubscribersIsSilent(t *testing.T) {
	hub := NewHub()
	hub.Broadcast("NOSUB234", Message{Type: "attendee_accepted"})
	assert.Zero(t, hub.SubscriberCount("NOSUB234"))
}

func TestResubscribeSwitchesSessions(t *testing.T) {
	hub := NewHub()
	client, server := dialPair(t)

	hub.Subscribe("AAAA2345", server)
	hub.Subscribe("BBBB2345", server)

	assert.Zero(t, hub.SubscriberCount("AAAA2345"))
	assert.Equal(t, 1, hub.SubscriberCount("BBBB2345"))

	hub.Broadcast("BBBB2345", Message{Type: "attendee_accepted", Data: "later"})
	assert.Contains(t, readMessage(t, client), "later")

	// Nothing from the old session should arrive.
	hub.Broadcast("AAAA2345", Message{Type: "attendee_accepted", Data: "stale"})
	client.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := client.ReadMessage()
	assert.Error(t, err)
}

func TestUnsubscribeDetaches(t *testing.T) {
	hub := NewHub()
	_, server := dialPair(t)

	hub.Subscribe("ABCD2345", server)
	require.Equal(t, 1, hub.SubscriberCount("ABCD2345"))

	hub.Unsubscribe(server)
	assert.Zero(t, hub.SubscriberCount("ABCD2345"))
}

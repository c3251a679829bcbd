package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"tron/communication"
	"tron/game"
	"tron/searcher"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) string {
	t.Helper()
	s := New(func() *searcher.Searcher { return searcher.NewSearcher(searcher.WithSeed(7)) }, 2)
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readUntilIdle(t *testing.T, conn *websocket.Conn) []communication.Message {
	t.Helper()
	var msgs []communication.Message
	for {
		var msg communication.Message
		require.NoError(t, conn.ReadJSON(&msg))
		msgs = append(msgs, msg)
		if msg.Type == communication.Idle || msg.Type == communication.Error {
			return msgs
		}
	}
}

func TestServer(t *testing.T) {
	pos, err := game.NewPosition(2, 2, 2, 1)
	require.NoError(t, err)
	grid := game.NewGridFromPoints(5, 5)

	t.Run("acts once per level then idles", func(t *testing.T) {
		conn := dial(t, startServer(t))

		require.NoError(t, conn.WriteJSON(communication.NewRequest("tick-1", pos, grid, 3)))
		msgs := readUntilIdle(t, conn)

		require.Len(t, msgs, 5)
		for depth, msg := range msgs[:4] {
			require.Equal(t, communication.Act, msg.Type)
			require.Equal(t, "tick-1", msg.CorrelationID)
			require.Equal(t, depth, msg.Depth)
		}
		require.Equal(t, game.Forward, msgs[0].Direction)
		require.Equal(t, communication.Idle, msgs[4].Type)
	})

	t.Run("every act carries its depth on the wire", func(t *testing.T) {
		conn := dial(t, startServer(t))

		require.NoError(t, conn.WriteJSON(communication.NewRequest("tick-0", pos, grid, 1)))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		require.JSONEq(t, `{"type":"act","correlationID":"tick-0","direction":"FORWARD","depth":0}`, string(raw))
	})

	t.Run("uses the default depth", func(t *testing.T) {
		conn := dial(t, startServer(t))

		request := communication.NewRequest("tick-2", pos, grid, 0)
		request.MaxDepth = nil
		require.NoError(t, conn.WriteJSON(request))

		require.Len(t, readUntilIdle(t, conn), 4)
	})

	t.Run("reports malformed messages and keeps serving", func(t *testing.T) {
		conn := dial(t, startServer(t))

		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
		msgs := readUntilIdle(t, conn)
		require.Equal(t, communication.Error, msgs[0].Type)

		require.NoError(t, conn.WriteJSON(communication.NewRequest("tick-3", pos, grid, 0)))
		msgs = readUntilIdle(t, conn)
		require.Equal(t, communication.Act, msgs[0].Type)
		require.Equal(t, communication.Idle, msgs[1].Type)
	})

	t.Run("rejects a position without a heading", func(t *testing.T) {
		conn := dial(t, startServer(t))

		request := communication.NewRequest("tick-4", game.Position{X: 2, Y: 2, Prev: game.Point{X: 2, Y: 2}}, grid, 1)
		require.NoError(t, conn.WriteJSON(request))

		msgs := readUntilIdle(t, conn)
		require.Len(t, msgs, 1)
		require.Equal(t, communication.Error, msgs[0].Type)
		require.Equal(t, "tick-4", msgs[0].CorrelationID)
		require.NotEmpty(t, msgs[0].Error)
	})

	t.Run("rejects unknown message types", func(t *testing.T) {
		conn := dial(t, startServer(t))

		request := communication.NewRequest("tick-5", pos, grid, 1)
		request.Type = "pause"
		require.NoError(t, conn.WriteJSON(request))

		msgs := readUntilIdle(t, conn)
		require.Equal(t, communication.Error, msgs[0].Type)
	})
}

func TestQueueDropsWhenFull(t *testing.T) {
	ch := make(chan communication.Message, 1)
	q := queue(ch)

	q.Act("id", game.Forward, 0)
	q.Act("id", game.Larboard, 1)

	require.Len(t, ch, 1)
	msg := <-ch
	require.Equal(t, game.Forward, msg.Direction)
}

package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth")
	require.NoError(t, err)

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 0, Kind: Random, Seed: 9},
			{ID: 1, Kind: Lookahead, Depth: 4, Seed: 9},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "depth", "seed"},
			{"0", "random", "0", "9"},
			{"1", "lookahead", "4", "9"},
		}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID: 1, Agent1: 0, Agent2: 1,
			GameMetric: GameMetric{Winner: "Player2", Turns: 17, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "0", "1", "Player2", "17", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1])
	})

	t.Run("move records round trip through parquet", func(t *testing.T) {
		records := []MoveRecord{
			NewMoveRecord(1, MoveMetric{Step: 1, Player: "Player1", Move: "FORWARD", SearchMetric: SearchMetric{MaxDepth: 2, Levels: 3, Expanded: 12, Pruned: 1, Dropped: 2, Duration: 1500 * time.Microsecond}}),
			NewMoveRecord(1, MoveMetric{Step: 1, Player: "Player2", Move: "LARBOARD"}),
		}
		require.NoError(t, w.WriteMoveRecords(records))

		path := filepath.Join(w.Dir(), "move_records.parquet")
		_, err := os.Stat(path + ".tmp")
		require.True(t, os.IsNotExist(err))

		read, err := ReadMoveRecords(path)
		require.NoError(t, err)
		require.Equal(t, records, read)
		require.Equal(t, int64(1500), read[0].Micros)
	})

	t.Run("missing move records", func(t *testing.T) {
		_, err := ReadMoveRecords(filepath.Join(w.Dir(), "nothing.parquet"))

		require.Error(t, err)
	})
}

package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrent updates", func(t *testing.T) {
		c := NewCollector()
		c.Start(7)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddExpanded()
					c.AddPushed()
					c.AddPruned(PruneBudget)
				}
			}()
		}
		wg.Wait()
		c.SetSource(FromFallback)
		metric := c.Complete()

		require.Equal(t, 7, metric.Depth)
		require.Equal(t, 800, metric.Expanded)
		require.Equal(t, 800, metric.Pushed)
		require.Equal(t, 800, metric.Pruned[PruneBudget])
		require.Zero(t, metric.Pruned[PruneVisited])
		require.Equal(t, FromFallback, metric.Source)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddExpanded()
		c.AddPruned(PruneTarget)
		c.SetSource(FromForced)
		c.Complete()

		c.Start(2)
		metric := c.Complete()

		require.Zero(t, metric.Expanded)
		require.Zero(t, metric.Pruned[PruneTarget])
		require.Equal(t, FromSearch, metric.Source)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3)
		c.AddExpanded()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "smoke")
	require.NoError(t, err)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Mode: "ai"}, {ID: 2, Mode: "random", Seed: 9}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID:     1,
		Config: 2,
		GameMetric: GameMetric{
			Level:      "level1",
			Agent:      "Random Player",
			StartTime:  start,
			EndTime:    start.Add(time.Second),
			Duration:   time.Second,
			TotalMoves: 30,
		},
	}}))
	metric := SearchMetric{Depth: 29, Expanded: 4, Pushed: 10, Source: FromSearch}
	metric.Pruned[PruneBlocking] = 3
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 1, Piece: 3, From: 35, To: 24, SearchMetric: metric},
	}}))

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "mode", "seed", "max_moves"},
		{"1", "ai", "0", "0"},
		{"2", "random", "9", "0"},
	}, configs)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, []string{"1", "2", "level1", "Random Player", "false", "30",
		"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, games[1])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, []string{"1", "1", "3", "35", "24", "search", "29", "0s", "4", "10",
		"0", "0", "0", "0", "3"}, moves[1])
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

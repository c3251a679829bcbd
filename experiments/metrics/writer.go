package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type AgentKind string

const (
	Lookahead AgentKind = "lookahead"
	Random    AgentKind = "random"
)

type AgentConfig struct {
	ID    int
	Kind  AgentKind
	Depth int
	Seed  uint64
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

// MoveRecord is one decision of one player. It is stored as a parquet row.
type MoveRecord struct {
	Game     int32  `parquet:"game"`
	Step     int32  `parquet:"step"`
	Player   string `parquet:"player,dict"`
	Move     string `parquet:"move,dict"`
	MaxDepth int32  `parquet:"max_depth"`
	Levels   int32  `parquet:"levels"`
	Expanded int32  `parquet:"expanded"`
	Pruned   int32  `parquet:"pruned"`
	Dropped  int32  `parquet:"dropped"`
	Replaced int32  `parquet:"replaced"`
	Micros   int64  `parquet:"duration_us"`
}

func NewMoveRecord(game int, mm MoveMetric) MoveRecord {
	return MoveRecord{
		Game:     int32(game),
		Step:     int32(mm.Step),
		Player:   mm.Player,
		Move:     mm.Move,
		MaxDepth: int32(mm.MaxDepth),
		Levels:   int32(mm.Levels),
		Expanded: int32(mm.Expanded),
		Pruned:   int32(mm.Pruned),
		Dropped:  int32(mm.Dropped),
		Replaced: int32(mm.Replaced),
		Micros:   mm.Duration.Microseconds(),
	}
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			string(config.Kind),
			strconv.Itoa(config.Depth),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", []string{"id", "kind", "depth", "seed"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Winner,
			strconv.Itoa(record.Turns),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	header := []string{"id", "agent1", "agent2", "winner", "turns", "start_time", "end_time", "duration"}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

// WriteMoveRecords stores the moves as zstd-compressed parquet. The file is
// written to a temporary path first and renamed into place.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.parquet")
	tmpPath := path + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, records,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "move_record_v1"),
	); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename move records: %w", err)
	}
	return nil
}

func ReadMoveRecords(path string) ([]MoveRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	reader := parquet.NewGenericReader[MoveRecord](pf)
	defer reader.Close()

	records := make([]MoveRecord, reader.NumRows())
	n, err := reader.Read(records)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records[:n], nil
}

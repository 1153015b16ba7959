package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped folder under root for one soak run.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, "soak", timestamp)
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

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "seed", "starting_side", "start_time", "end_time", "duration", "total_moves", "captures", "parachutes", "rejected"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			record.StartingSide,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Captures),
			strconv.Itoa(record.Parachutes),
			strconv.Itoa(record.Rejected),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "side", "kind", "captured", "board_pieces", "a_side_hand", "ia_side_hand", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Side,
			record.Kind,
			strconv.FormatBool(record.Captured),
			strconv.Itoa(record.BoardPieces),
			strconv.Itoa(record.ASideHand),
			strconv.Itoa(record.IASideHand),
			record.Duration.String(),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

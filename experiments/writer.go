package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores experiment output as CSV files in a timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(outDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outDir, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create experiment directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory the writer stores files in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(filename string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", filename, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", filename, err)
		}
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Simulations),
			strconv.FormatFloat(config.CPuct, 'f', -1, 64),
		})
	}
	return w.writeCSV("agent_configs.csv", []string{"id", "simulations", "c_puct"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.AgentA),
			strconv.Itoa(record.AgentB),
			record.Outcome,
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Moves),
			record.Duration.String(),
		})
	}
	header := []string{"id", "agent_a", "agent_b", "outcome", "winner", "moves", "duration"}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	rows := make([][]string, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, []string{
			strconv.Itoa(summary.Agent),
			strconv.Itoa(summary.Games),
			strconv.FormatFloat(summary.MeanScore, 'f', 4, 64),
			strconv.FormatFloat(summary.ScoreStdDev, 'f', 4, 64),
			strconv.FormatFloat(summary.MeanMoves, 'f', 1, 64),
		})
	}
	header := []string{"agent", "games", "mean_score", "score_stddev", "mean_moves"}
	return w.writeCSV("summaries.csv", header, rows)
}

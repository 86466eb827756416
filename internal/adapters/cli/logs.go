package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewLogsCommand creates the logs command
func NewLogsCommand() *cobra.Command {
	var (
		limit int
		level string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent engine operation logs",
		Long: `Lists the most recent operation log entries recorded by the engine.

Examples:
  factoryops logs
  factoryops logs --limit 100 --level ERROR`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogs(limit, level)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of entries to show")
	cmd.Flags().StringVar(&level, "level", "", "Filter by level (DEBUG, INFO, WARN, ERROR)")

	return cmd
}

// runLogs executes the logs command
func runLogs(limit int, level string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	var levelFilter *string
	if level != "" {
		normalized := strings.ToUpper(level)
		levelFilter = &normalized
	}

	entries, err := eng.logRepo.Recent(eng.ctx(), limit, levelFilter)
	if err != nil {
		return fmt.Errorf("failed to load logs: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No log entries found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tLEVEL\tMESSAGE\tMETADATA")
	for _, entry := range entries {
		metadata := ""
		if len(entry.Metadata) > 0 {
			if raw, err := json.Marshal(entry.Metadata); err == nil {
				metadata = string(raw)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Level, entry.Message, metadata)
	}
	w.Flush()

	return nil
}

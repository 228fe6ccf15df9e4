package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Digital-Shane/tvdbxml/internal/log"
)

var logsLimit int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List recent session logs",
	Long: `List recent invocations with the number of fetch, unpack and parse
operations they performed. Session files live in ~/.tvdbxml/logs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := log.ReadSessions(logsLimit)
		if err != nil {
			return fmt.Errorf("failed to read log sessions: %w", err)
		}
		return sessionsView(sessions).print(cmd.OutOrStdout(), jsonOutput)
	},
}

func sessionsView(sessions []*log.LogSession) view {
	return view{data: sessions, table: func(w io.Writer) {
		if len(sessions) == 0 {
			fmt.Fprintln(w, mutedStyle.Render("No sessions logged yet."))
			return
		}
		heading(w, "Sessions", len(sessions))
		rows := make([][]string, 0, len(sessions))
		for _, s := range sessions {
			m := s.Metadata
			rows = append(rows, []string{
				m.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(strings.Join(m.CommandArgs, " "), descWidth/2),
				fmt.Sprint(m.TotalOps),
				fmt.Sprint(m.FailedOps),
				fmt.Sprint(m.BytesFetched),
			})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Started", "Command", "Ops", "Failed", "Bytes"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
		))
	}}
}

func init() {
	logsCmd.Flags().IntVarP(&logsLimit, "limit", "n", 20, "Number of sessions to list (0 for all)")
	rootCmd.AddCommand(logsCmd)
}

package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Inspect the audit log",
	}
	cmd.AddCommand(logsListCmd())
	return cmd
}

func logsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all audit entries in insertion order",
		Run: func(cmd *cobra.Command, args []string) {
			entries, err := apiClient.Logs.List(context.Background())
			if err != nil {
				fatal("list logs", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "PERSON", "OPERATION", "TIMESTAMP"}
				var rows [][]string
				for _, e := range entries {
					rows = append(rows, []string{
						strconv.FormatInt(e.ID, 10),
						strconv.FormatInt(e.PersonID, 10),
						e.OperationType,
						e.Timestamp.Format(time.RFC3339),
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, e := range entries {
					fmt.Println(e.ID)
				}
				return
			}
			output(entries, "")
		},
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

func newCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Bulk import and export people as CSV",
	}
	cmd.AddCommand(csvUploadCmd())
	cmd.AddCommand(csvDownloadCmd())
	return cmd
}

func csvUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Import people from a CSV file (Portuguese header, day-first dates)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			f, err := os.Open(args[0])
			if err != nil {
				fatal("open file", err)
			}
			defer f.Close()

			msg, err := apiClient.CSV.Upload(context.Background(), filepath.Base(args[0]), f)
			if err != nil {
				fatal("upload csv", err)
			}
			fmt.Println(msg)
		},
	}
}

func csvDownloadCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "download <id>...",
		Short: "Export the given people as CSV",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ids := make([]int64, 0, len(args))
			for _, a := range args {
				id, err := strconv.ParseInt(a, 10, 64)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: person id must be an integer, got %q\n", a)
					os.Exit(1)
				}
				ids = append(ids, id)
			}

			data, err := apiClient.CSV.Download(context.Background(), ids)
			if err != nil {
				fatal("download csv", err)
			}

			if out == "" || out == "-" {
				os.Stdout.Write(data) //nolint:errcheck
				return
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				fatal("write file", err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %d bytes to %s\n", len(data), out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout)")
	return cmd
}

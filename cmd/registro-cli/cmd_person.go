package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/registrohq/registro/client"
	"github.com/spf13/cobra"
)

func newPersonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage people",
	}
	cmd.AddCommand(personCreateCmd())
	cmd.AddCommand(personGetCmd())
	cmd.AddCommand(personUpdateCmd())
	cmd.AddCommand(personDeleteCmd())
	cmd.AddCommand(personListCmd())
	return cmd
}

// parsePersonID converts a positional id argument, exiting on garbage input.
func parsePersonID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: person id must be an integer, got %q\n", arg)
		os.Exit(1)
	}
	return id
}

func personCreateCmd() *cobra.Command {
	var birthdate, gender, nationality string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a person",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreatePersonRequest{
				Name:        args[0],
				Gender:      gender,
				Nationality: nationality,
			}
			if birthdate != "" {
				req.Birthdate = &birthdate
			}
			person, err := apiClient.People.Create(context.Background(), req)
			if err != nil {
				fatal("create person", err)
			}
			output(person, strconv.FormatInt(person.ID, 10))
		},
	}
	cmd.Flags().StringVar(&birthdate, "birthdate", "", "Birthdate (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&nationality, "nationality", "", "Nationality")
	cmd.MarkFlagRequired("birthdate") //nolint:errcheck
	cmd.MarkFlagRequired("gender")    //nolint:errcheck
	return cmd
}

func personGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a person by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			person, err := apiClient.People.Get(context.Background(), parsePersonID(args[0]))
			if err != nil {
				fatal("get person", err)
			}
			output(person, strconv.FormatInt(person.ID, 10))
		},
	}
}

func personUpdateCmd() *cobra.Command {
	var name, birthdate, gender, nationality string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a person (all fields are replaced)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdatePersonRequest{
				Name:        name,
				Gender:      gender,
				Nationality: nationality,
			}
			if birthdate != "" {
				req.Birthdate = &birthdate
			}
			person, err := apiClient.People.Update(context.Background(), parsePersonID(args[0]), req)
			if err != nil {
				fatal("update person", err)
			}
			output(person, strconv.FormatInt(person.ID, 10))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&birthdate, "birthdate", "", "Birthdate (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&nationality, "nationality", "", "Nationality")
	cmd.MarkFlagRequired("name")      //nolint:errcheck
	cmd.MarkFlagRequired("birthdate") //nolint:errcheck
	cmd.MarkFlagRequired("gender")    //nolint:errcheck
	return cmd
}

func personDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a person",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.People.Delete(context.Background(), parsePersonID(args[0])); err != nil {
				fatal("delete person", err)
			}
			fmt.Println("deleted")
		},
	}
}

func personListCmd() *cobra.Command {
	var filterColumn, filterValue, keyword string
	var limit, skip int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people",
		Run: func(cmd *cobra.Command, args []string) {
			if limit < 0 {
				fmt.Fprintf(os.Stderr, "Error: --limit must be non-negative\n")
				os.Exit(1)
			}
			if skip < 0 {
				fmt.Fprintf(os.Stderr, "Error: --skip must be non-negative\n")
				os.Exit(1)
			}
			opts := &client.PersonListOptions{
				FilterColumn: filterColumn,
				FilterValue:  filterValue,
				Keyword:      keyword,
				Limit:        limit,
				Skip:         skip,
			}
			people, err := apiClient.People.List(context.Background(), opts)
			if err != nil {
				fatal("list people", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "NAME", "BIRTHDATE", "GENDER", "NATIONALITY"}
				var rows [][]string
				for _, p := range people {
					bd := ""
					if p.Birthdate != nil {
						bd = *p.Birthdate
					}
					rows = append(rows, []string{
						strconv.FormatInt(p.ID, 10), p.Name, bd, p.Gender, p.Nationality,
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, p := range people {
					fmt.Println(p.ID)
				}
				return
			}
			output(people, "")
		},
	}
	cmd.Flags().StringVar(&filterColumn, "filter-column", "", "Column to filter on (id, name, gender, nationality)")
	cmd.Flags().StringVar(&filterValue, "filter-value", "", "Filter value")
	cmd.Flags().StringVar(&keyword, "keyword", "", "Keyword search across name, gender and nationality")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&skip, "skip", 0, "Rows to skip")
	return cmd
}

package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// executeArgs runs the given root command with args and returns any error.
// It suppresses cobra's usage/error output so test output stays clean.
func executeArgs(t *testing.T, root *cobra.Command, args ...string) error {
	t.Helper()
	root.SetOut(&strings.Builder{})
	root.SetErr(&strings.Builder{})
	root.SetArgs(args)
	_, err := root.ExecuteC()
	return err
}

// newTestRoot builds a root command tree identical to main() but with
// PersistentPreRun stubbed out so the API client is never initialised.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "registro",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Skip client initialisation in tests.
		},
	}
	root.PersistentFlags().StringVar(&flagURL, "url", defaultURL, "")
	root.PersistentFlags().StringVar(&flagFmt, "format", "json", "")

	root.AddCommand(newPersonCmd())
	root.AddCommand(newLogsCmd())
	root.AddCommand(newCSVCmd())
	return root
}

// --- person create ---

func TestPersonCreateArgValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"requires exactly one positional arg (name)", []string{"person", "create"}},
		{"rejects two positional args", []string{"person", "create", "Ana", "extra", "--birthdate", "1990-05-20", "--gender", "female"}},
		{"missing required flags", []string{"person", "create", "Ana Souza"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := newTestRoot()
			if err := executeArgs(t, root, tc.args...); err == nil {
				t.Errorf("expected error, got nil")
			}
		})
	}
}

// TestPersonExactArgs1Commands verifies the single-id subcommands reject wrong
// arg counts without invoking Run.
func TestPersonExactArgs1Commands(t *testing.T) {
	subcommands := []string{"get", "delete", "update"}
	for _, sub := range subcommands {
		t.Run(sub, func(t *testing.T) {
			argsValidator := cobra.ExactArgs(1)
			if err := argsValidator(nil, []string{"7"}); err != nil {
				t.Errorf("%s: one arg should be accepted: %v", sub, err)
			}
			if err := argsValidator(nil, []string{}); err == nil {
				t.Errorf("%s: zero args should be rejected", sub)
			}
			if err := argsValidator(nil, []string{"7", "8"}); err == nil {
				t.Errorf("%s: two args should be rejected", sub)
			}
		})
	}
}

// --- person list flag defaults ---

func TestPersonListFlagDefaults(t *testing.T) {
	cmd := personListCmd()

	cases := []struct {
		flag string
		want string
	}{
		{"filter-column", ""},
		{"filter-value", ""},
		{"keyword", ""},
		{"limit", "0"},
		{"skip", "0"},
	}
	for _, tc := range cases {
		f := cmd.Flags().Lookup(tc.flag)
		if f == nil {
			t.Errorf("--%s flag not found", tc.flag)
			continue
		}
		if f.DefValue != tc.want {
			t.Errorf("--%s default: got %q, want %q", tc.flag, f.DefValue, tc.want)
		}
	}
}

// --- person create/update flag registration ---

func TestPersonCreateFlagRegistration(t *testing.T) {
	cmd := personCreateCmd()
	for _, name := range []string{"birthdate", "gender", "nationality"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag not found on person create", name)
		}
	}
}

func TestPersonUpdateFlagRegistration(t *testing.T) {
	cmd := personUpdateCmd()
	for _, name := range []string{"name", "birthdate", "gender", "nationality"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag not found on person update", name)
		}
	}
}

// --- csv ---

func TestCSVUploadArgValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file arg", []string{"csv", "upload"}},
		{"too many args", []string{"csv", "upload", "a.csv", "b.csv"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := newTestRoot()
			if err := executeArgs(t, root, tc.args...); err == nil {
				t.Errorf("expected error, got nil")
			}
		})
	}
}

func TestCSVDownloadOutFlag(t *testing.T) {
	cmd := csvDownloadCmd()
	f := cmd.Flags().Lookup("out")
	if f == nil {
		t.Fatal("--out flag not found on csv download")
	}
	if f.DefValue != "" {
		t.Errorf("--out default: got %q, want empty", f.DefValue)
	}
}

// --- global format flag ---

func TestFormatFlagDefault(t *testing.T) {
	root := newTestRoot()
	f := root.PersistentFlags().Lookup("format")
	if f == nil {
		t.Fatal("--format flag not found")
	}
	if f.DefValue != "json" {
		t.Errorf("default format: got %q, want %q", f.DefValue, "json")
	}
}

// TestFormatFlagValues verifies that accepted format values are "json", "table",
// and "quiet" — these are the only strings the output functions branch on.
func TestFormatFlagValues(t *testing.T) {
	validFormats := []string{"json", "table", "quiet"}
	for _, fmtVal := range validFormats {
		flagFmt = fmtVal
		// output() must not panic for any of these values.
		captureStdout(t, func() { output(map[string]string{"k": "v"}, "id") })
	}
}

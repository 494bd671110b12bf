package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"tasktagger/internal/app"
	"tasktagger/internal/client"
	"tasktagger/internal/clix"
	"tasktagger/internal/models"
)

// categorizeCmd classifies text given as arguments, a file path, or "-" for stdin.
var categorizeCmd = &cobra.Command{
	Use:   "categorize [text | file | -]",
	Short: "Assign tags and a priority to a piece of text",
	Long: `Classifies text with the keyword rule table and prints the tags and priority.
The input may be free text (several arguments are joined with spaces), the
path of a text file, or "-" to read from stdin. With --remote the text is sent
to a running server instead of being classified in-process.`,
	Example: `  tasktagger categorize "pay the rent asap"
  tasktagger categorize notes.txt --json
  tasktagger categorize "shop for the course" --tags-only
  echo "buy groceries" | tasktagger categorize - --remote=http://ml:8000`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return err
		}

		input, err := appInstance.InputProcessor.Process(ctx, clix.JoinArgs(args))
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		remote, err := clix.ParseRemote(cmd.Flags(), appInstance.Config.Client.URL)
		if err != nil {
			return err
		}

		if tagsOnly, _ := cmd.Flags().GetBool("tags-only"); tagsOnly {
			tags, err := suggestTags(cmd, appInstance, remote, input.Text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tags, ","))
			return nil
		}

		resp, err := classify(cmd, appInstance, remote, input.Text)
		if err != nil {
			return err
		}

		if clix.ParseOutput(cmd.Flags()).JSON {
			return writeJSON(cmd.OutOrStdout(), resp)
		}
		renderResult(cmd.OutOrStdout(), input.Text, resp)
		return nil
	},
}

func classify(cmd *cobra.Command, a *app.App, remote clix.RemoteParams, text string) (*models.CategorizeResponse, error) {
	if remote.Enabled {
		resp, err := client.New(remote.URL, a.Config.Client.Timeout).Categorize(cmd.Context(), text)
		if err != nil {
			return nil, fmt.Errorf("remote categorize failed: %w", err)
		}
		return resp, nil
	}
	resp, err := a.CategorizationService.Categorize(cmd.Context(), text)
	if err != nil {
		return nil, fmt.Errorf("categorize failed: %w", err)
	}
	return resp, nil
}

// suggestTags returns only the tag names, through the tagging service when classifying locally.
func suggestTags(cmd *cobra.Command, a *app.App, remote clix.RemoteParams, text string) ([]string, error) {
	if !remote.Enabled {
		tags, err := a.TaggingService.SuggestTags(cmd.Context(), text)
		if err != nil {
			return nil, fmt.Errorf("suggest tags failed: %w", err)
		}
		return tags, nil
	}
	resp, err := classify(cmd, a, remote, text)
	if err != nil {
		return nil, err
	}
	tags := make([]string, len(resp.Tags))
	for i, t := range resp.Tags {
		tags[i] = string(t)
	}
	return tags, nil
}

func writeJSON(w io.Writer, resp *models.CategorizeResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func renderResult(w io.Writer, text string, resp *models.CategorizeResponse) {
	tags := make([]string, len(resp.Tags))
	for i, t := range resp.Tags {
		tags[i] = string(t)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Text", "Tags", "Priority"})
	table.SetBorder(false)
	table.SetAutoWrapText(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append([]string{
		truncate(text, 60),
		strings.Join(tags, ", "),
		colorPriority(resp.Priority),
	})
	table.Render()
}

func colorPriority(p models.Priority) string {
	switch rank := p.Rank(); {
	case rank >= models.PriorityUrgent.Rank():
		return color.RedString(p.Label())
	case rank == models.PriorityHigh.Rank():
		return color.YellowString(p.Label())
	case rank == models.PriorityLow.Rank():
		return color.CyanString(p.Label())
	default:
		return p.Label()
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func init() {
	rootCmd.AddCommand(categorizeCmd)

	categorizeCmd.Flags().Bool("json", false, "Print the result as JSON")
	categorizeCmd.Flags().Bool("tags-only", false, "Print only the comma-separated tags")
	categorizeCmd.Flags().String("remote", "", "Send the text to a running server (defaults to client.url)")
	categorizeCmd.Flags().Lookup("remote").NoOptDefVal = " "
}

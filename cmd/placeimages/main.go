// Command placeimages is a maintenance tool for the places JSON seed files.
// It walks every record, finds the ones with a missing image URL, offers
// candidates from the image search provider and writes the chosen URLs back.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/yatra-labs/yatra-server/internal/services"
)

var (
	flagFile   string
	flagField  string
	flagAuto   bool
	flagDryRun bool
	flagAll    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "placeimages",
		Short: "Fill in missing destination images in a places JSON file",
		Long: `placeimages reads a JSON array of destination records, looks up image
candidates for records whose image field is empty, and writes the updated
file back in place. Run with --all to revisit records that already have an
image.`,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "path to the places JSON file (required)")
	rootCmd.Flags().StringVar(&flagField, "field", "image_url", "name of the image URL field")
	rootCmd.Flags().BoolVar(&flagAuto, "auto", false, "take the first search result without prompting")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "report what would change without writing")
	rootCmd.Flags().BoolVar(&flagAll, "all", false, "also revisit records that already have an image")
	_ = rootCmd.MarkFlagRequired("file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load(".env.local")

	accessKey := os.Getenv("UNSPLASH_ACCESS_KEY")
	if accessKey == "" {
		return fmt.Errorf("UNSPLASH_ACCESS_KEY is not set")
	}
	imageService := services.NewImageService(accessKey)

	raw, err := os.ReadFile(flagFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %v", flagFile, err)
	}

	// Decode into generic maps so fields this tool doesn't know about
	// survive the round trip.
	var records []map[string]interface{}
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("failed to parse %s: %v", flagFile, err)
	}

	reader := bufio.NewReader(os.Stdin)
	updated := 0

	for i, record := range records {
		name, _ := record["name"].(string)
		city, _ := record["city"].(string)
		if name == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "record %d has no name, skipping\n", i)
			continue
		}

		current, _ := record[flagField].(string)
		if current != "" && !flagAll {
			continue
		}

		query := strings.TrimSpace(name + " " + city + " India")
		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		results, err := imageService.Search(ctx, query, 5)
		cancel()
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: image search failed: %v\n", name, err)
			continue
		}
		if len(results) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: no image candidates found\n", name)
			continue
		}

		var chosen string
		if flagAuto {
			chosen = results[0].URL
		} else {
			chosen, err = promptForChoice(cmd, reader, name, results)
			if err != nil {
				return err
			}
			if chosen == "" {
				continue
			}
		}

		if flagDryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: would set %s = %s\n", name, flagField, chosen)
			continue
		}

		record[flagField] = chosen
		updated++
		fmt.Fprintf(cmd.OutOrStdout(), "%s: set %s\n", name, chosen)
	}

	if flagDryRun || updated == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no changes written\n")
		return nil
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode updated records: %v", err)
	}
	if err := os.WriteFile(flagFile, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %v", flagFile, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "updated %d record(s) in %s\n", updated, flagFile)
	return nil
}

// promptForChoice lists the candidates and reads a selection from stdin.
// Returns "" when the user skips the record.
func promptForChoice(cmd *cobra.Command, reader *bufio.Reader, name string, results []services.ImageResult) (string, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", name)
	for i, r := range results {
		credit := r.Credit
		if credit == "" {
			credit = "unknown"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  [%d] %s (by %s)\n", i+1, r.URL, credit)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "pick 1-%d, paste a URL, or press enter to skip: ", len(results))

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read selection: %v", err)
	}
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		return "", nil
	case strings.HasPrefix(line, "http://"), strings.HasPrefix(line, "https://"):
		return line, nil
	default:
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(results) {
			fmt.Fprintln(cmd.OutOrStdout(), "invalid selection, skipping")
			return "", nil
		}
		return results[n-1].URL, nil
	}
}

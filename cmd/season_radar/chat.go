package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jonathan/season-radar/internal/agent"
	"github.com/jonathan/season-radar/internal/llm"
	"github.com/spf13/cobra"
	"google.golang.org/api/googleapi"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to Season Radar in an interactive terminal session",
	Long: `Start an interactive chat with the Season Radar agent. The agent answers
free-form travel questions by searching the city catalog and grounding its
recommendations in the ranked results.`,
	RunE: runChat,
}

var (
	chatAPIKey string
	chatModel  string
	chatData   string
)

func init() {
	chatCmd.Flags().StringVar(&chatAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	chatCmd.Flags().StringVar(&chatModel, "model", "", "Model name (optional, defaults to SEASON_RADAR_MODEL env var)")
	chatCmd.Flags().StringVar(&chatData, "data", "", "Path to a catalog JSON file (default: embedded catalog)")

	rootCmd.AddCommand(chatCmd)
}

// quitWords are the inputs that end a chat session.
var quitWords = map[string]bool{"quit": true, "exit": true, "q": true, "bye": true}

const goodbye = "\nGoodbye! Safe travels."

func runChat(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: API key handling
	apiKey := chatAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	// Step 2: Load the catalog
	cat, err := loadCatalog(chatData)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Step 3: Create the model client
	llmCfg := llm.ConfigFromEnv()
	if chatModel != "" {
		llmCfg = llmCfg.WithModel(chatModel)
	}
	client, err := llm.NewClient(ctx, llmCfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	radar := agent.New(client, cat)

	// Ctrl+C ends the session like a quit word would.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Println("\n" + goodbye)
		os.Exit(0)
	}()

	printBanner(cat.Len())

	// Step 4: Read-eval loop, one agent turn per line
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			// EOF (Ctrl+D) or read failure
			fmt.Println("\n" + goodbye)
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if quitWords[strings.ToLower(input)] {
			fmt.Println(goodbye)
			return nil
		}

		fmt.Print("\nSeason Radar: ")
		reply, err := radar.RunTurn(ctx, input)
		if err != nil {
			reply = friendlyModelError(err)
		}
		fmt.Println(reply)
		fmt.Printf("\n%s\n\n", strings.Repeat("─", 62))
	}
}

// friendlyModelError turns a model call failure into a reply-shaped message
// so one bad turn never kills the session.
func friendlyModelError(err error) string {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("[API error %d: %s]", apiErr.Code, apiErr.Message)
	}
	return "[Connection error: check your internet and try again.]"
}

func printBanner(cityCount int) {
	border := strings.Repeat("=", 64)
	fmt.Printf(`
%s
         SEASON RADAR  --  Seasonal Travel Decision Engine
%s

Powered by real climate data for %d global destinations.
Helping flexible travellers go somewhere worth going.

Try asking:
  - Where is spring right now?
  - Best beach destinations in April with low crowds
  - I want warm weather, dry, shoulder season -- not Europe
  - I'm in Dubai, where should I go next month to escape the heat?
  - Good places in October under 25C with little rain?

Type 'quit' or Ctrl+C to exit.
%s

`, border, border, cityCount, border)
}

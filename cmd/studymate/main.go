package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"studymate-backend/internal/config"
	"studymate-backend/internal/history"
	"studymate-backend/internal/logging"
	"studymate-backend/internal/models"
	"studymate-backend/internal/services"
)

// localOwner keys the single history list kept on this machine.
const localOwner = "local"

var (
	langFlag   string
	historyDir string
	savePath   string
	timeout    time.Duration
	verbose    bool

	cfg *config.Config
)

// newOracle is replaced in tests.
var newOracle = func(ctx context.Context, apiKey string) (services.Oracle, func(), error) {
	o, err := services.NewGeminiOracle(ctx, apiKey)
	if err != nil {
		return nil, nil, err
	}
	return o, o.Close, nil
}

var rootCmd = &cobra.Command{
	Use:   "studymate",
	Short: "StudyMate - AI study assistant for the terminal",
	Long: `StudyMate generates study material with Gemini.

Facts about a topic, summaries of a text file, a fact of the day, a current
affairs briefing and exam breakdowns, in English or Hindi. Topics you ask
facts about are kept in a local history of the ten most recent.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logging.Init(level, false)
		logging.SetOutput(cmd.ErrOrStderr())
		if historyDir == "" {
			historyDir = cfg.HistoryDir
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "en", "Output language (en or hi)")
	rootCmd.PersistentFlags().StringVar(&historyDir, "history-dir", "", "History directory (default: HISTORY_DIR or the user config dir)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	for _, c := range []*cobra.Command{factsCmd, summarizeCmd, factOfTheDayCmd, currentAffairsCmd, examCmd} {
		c.Flags().StringVar(&savePath, "save", "", "Write the exported text to this file")
	}

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(factsCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(factOfTheDayCmd)
	rootCmd.AddCommand(currentAffairsCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func language() models.Language {
	lang, _ := models.ParseLanguage(langFlag)
	return lang
}

func historyService() *history.Service {
	return history.NewService(history.NewFileStore(historyDir))
}

// studyService builds the orchestrator. The caller must invoke the returned
// cleanup once done.
func studyService(ctx context.Context) (*services.StudyService, func(), error) {
	oracle, closeFn, err := newOracle(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, nil, services.Classify(err, "starting the assistant")
	}
	return services.NewStudyService(oracle, cfg.GeminiModel, historyService(), cfg.StrictResults), closeFn, nil
}

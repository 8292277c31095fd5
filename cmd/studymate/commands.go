package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"studymate-backend/internal/i18n"
	"studymate-backend/internal/models"
	"studymate-backend/internal/services"
)

var factsCmd = &cobra.Command{
	Use:   "facts <topic...>",
	Short: "Generate facts and related topics for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFacts,
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Summarize a text, markdown, PDF or DOCX file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummarize,
}

var factOfTheDayCmd = &cobra.Command{
	Use:   "fact-of-the-day",
	Short: "Print a science or technology fact of the day",
	Args:  cobra.NoArgs,
	RunE:  runFactOfTheDay,
}

var currentAffairsCmd = &cobra.Command{
	Use:   "current-affairs",
	Short: "Print today's current affairs briefing",
	Args:  cobra.NoArgs,
	RunE:  runCurrentAffairs,
}

var examCmd = &cobra.Command{
	Use:   "exam <name...>",
	Short: "Describe an exam: dates, pattern and syllabus",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExam,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear recently searched topics",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent topics, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := historyService().List(cmd.Context(), localOwner)
		if err != nil {
			return err
		}
		for _, t := range topics {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all recent topics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return historyService().Clear(cmd.Context(), localOwner)
	},
}

// withStudy runs fn with a ready orchestrator under the --timeout deadline.
func withStudy(cmd *cobra.Command, fn func(ctx context.Context, s *services.StudyService) (models.Export, error)) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	study, closeFn, err := studyService(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	export, err := fn(ctx, study)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), export.Text)
	if savePath != "" {
		if err := os.WriteFile(savePath, []byte(export.Text), 0o644); err != nil {
			return fmt.Errorf("failed to save %s: %w", savePath, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved to %s\n", savePath)
	}
	return nil
}

func runFacts(cmd *cobra.Command, args []string) error {
	topic := strings.Join(args, " ")
	return withStudy(cmd, func(ctx context.Context, s *services.StudyService) (models.Export, error) {
		result, err := s.GenerateFacts(ctx, localOwner, topic, language())
		if err != nil {
			return models.Export{}, err
		}
		return services.ExportFacts(topic, result), nil
	})
}

func runSummarize(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	name := filepath.Base(path)
	text, err := services.NewFileExtractService().ExtractText(name, data)
	if err != nil {
		return err
	}

	return withStudy(cmd, func(ctx context.Context, s *services.StudyService) (models.Export, error) {
		summary, err := s.Summarize(ctx, text, language())
		if err != nil {
			return models.Export{}, err
		}
		return services.ExportSummary(name, summary), nil
	})
}

func runFactOfTheDay(cmd *cobra.Command, args []string) error {
	return withStudy(cmd, func(ctx context.Context, s *services.StudyService) (models.Export, error) {
		fact, err := s.FactOfTheDay(ctx, language())
		if err != nil {
			return models.Export{}, err
		}
		return services.ExportFactOfTheDay(fact), nil
	})
}

func runCurrentAffairs(cmd *cobra.Command, args []string) error {
	return withStudy(cmd, func(ctx context.Context, s *services.StudyService) (models.Export, error) {
		lang := language()
		items, err := s.CurrentAffairs(ctx, lang)
		if err != nil {
			return models.Export{}, err
		}
		if len(items) == 0 {
			return models.Export{Text: i18n.For(lang).CurrentAffairsHeader}, nil
		}
		return services.ExportCurrentAffairs(items, lang), nil
	})
}

func runExam(cmd *cobra.Command, args []string) error {
	examName := strings.Join(args, " ")
	return withStudy(cmd, func(ctx context.Context, s *services.StudyService) (models.Export, error) {
		lang := language()
		info, err := s.ExamInfo(ctx, examName, lang)
		if err != nil {
			return models.Export{}, err
		}
		return services.ExportExamInfo(examName, info, lang), nil
	})
}

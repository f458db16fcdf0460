package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hiresmart-ai/hiresmart/internal/ai"
	"github.com/hiresmart-ai/hiresmart/internal/ai/gemini"
	"github.com/hiresmart-ai/hiresmart/internal/extract"
	"github.com/hiresmart-ai/hiresmart/internal/logger"
	"github.com/hiresmart-ai/hiresmart/internal/report"
	"github.com/hiresmart-ai/hiresmart/internal/screening"
	"github.com/hiresmart-ai/hiresmart/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptExit          = "Exit"
	PromptShowReport    = "Show report"
	PromptExportReport  = "Export report to file"
	PromptExportCSV     = "Export results to CSV"
	PromptResultsToFile = "Dump results to file"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReport, PromptExportReport, PromptExportCSV, PromptResultsToFile, PromptExit},
}

// resume files are expected as pre-extracted plain text
var resumeExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".md":   true,
}

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen a folder of resumes against the configured job description",
	Run: func(cmd *cobra.Command, _ []string) {
		screen(cmd)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().BoolP("auto-approve", "y", false, "write the report without asking and exit")
	screenCmd.Flags().StringP("resumes-dir", "r", "", "directory with resume files. Overrides resumes.dir from the config.")

	viper.BindPFlag("resumes.dir", screenCmd.Flags().Lookup("resumes-dir"))
}

// screen is the main command for the cli.
func screen(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting hiresmart", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	description, err := resolveJobDescription(config)
	if err != nil {
		logger.Fatal("loading job description",
			zap.Error(err),
			zap.String("hint", "set job.description or job.description-file in the configuration file"),
		)
	}

	resumesDir := ""
	recursive := false
	if config.Resumes != nil {
		resumesDir = strings.TrimSpace(config.Resumes.Dir)
		recursive = config.Resumes.Recursive
	}
	if flagDir := strings.TrimSpace(viper.GetString("resumes.dir")); flagDir != "" {
		resumesDir = flagDir
	}
	if resumesDir == "" {
		logger.Fatal("resumes directory is required under resumes.dir")
	}

	files, err := gatherResumeFiles(resumesDir, recursive)
	if err != nil {
		logger.Fatal("gathering resume files", zap.Error(err))
	}

	if len(files) == 0 {
		logger.Info("exiting", zap.String("reason", "no resume files found"), zap.String("dir", resumesDir))
		return
	}

	logger.Info("gathered resume files", zap.Int("count", len(files)), zap.String("dir", resumesDir))

	var enricher ai.Enricher
	if config.AI != nil && config.AI.Enabled {
		enricher, err = newEnricher(ctx, config.AI, logger)
		if err != nil {
			logger.Fatal("creating ai enricher", zap.Error(err))
		}
	} else {
		logger.Info("ai enrichment disabled, using templated summaries")
	}

	title := ""
	var niceToHave []string
	if config.Job != nil {
		title = config.Job.Title
		niceToHave = config.Job.NiceToHave
	}

	job, err := buildJob(ctx, title, description, niceToHave, enricher, logger)
	if err != nil {
		logger.Fatal("building job context", zap.Error(err))
	}

	runner := screening.NewRunner(screeningConfig(config), logger, &extract.FileExtractor{}, enricher)

	batch, err := runner.RunBatch(ctx, files, job)
	if err != nil {
		logger.Fatal("screening failed", zap.Error(err))
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		format, output := reportTarget(config)
		if err := report.WriteFile(output, format, batch); err != nil {
			logger.Fatal("writing report", zap.Error(err))
		}
		logger.Info("report written", zap.String("filename", output), zap.String("format", format))
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, batch, config, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, batch *screening.BatchResult, config *Config, logger *zap.Logger) error {
	switch action {
	case PromptShowReport:
		fmt.Println(report.Text(batch))
		return nil
	case PromptExportReport:
		format, output := reportTarget(config)
		if err := report.WriteFile(output, format, batch); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("report written", zap.String("filename", output), zap.String("format", format))
		return nil
	case PromptExportCSV:
		output := csvPath(config)
		if err := report.WriteFile(output, "csv", batch); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		logger.Info("csv written", zap.String("filename", output))
		return nil
	case PromptResultsToFile:
		filename, err := report.DumpToTmpFile(batch)
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping results to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// buildJob derives the lexical job context and, when an enricher is
// available, folds the model-suggested keywords into it. Suggestion
// failures are logged and ignored; the lexical context always stands on
// its own.
func buildJob(ctx context.Context, title, description string, niceToHave []string, enricher ai.Enricher, logger *zap.Logger) (*screening.JobContext, error) {
	var suggested *ai.JobKeywords
	if enricher != nil {
		var err error
		suggested, err = enricher.SuggestJobKeywords(ctx, description)
		if err != nil {
			logger.Warn("job keyword suggestion failed, continuing with lexical derivation", zap.Error(err))
			suggested = nil
		}
	}

	extraNice := [][]string{niceToHave}
	if suggested != nil {
		extraNice = append(extraNice, suggested.NiceToHaveSkills)
	}

	job, err := screening.BuildJobContext(title, description, extraNice...)
	if err != nil {
		return nil, err
	}

	if suggested != nil {
		job.RequiredSkill = screening.MergeRequiredSkills(job.RequiredSkill, suggested.MustHaveSkills, suggested.Technologies)
		if job.RequiredYears == 0 && suggested.ExperienceRequired > 0 {
			job.RequiredYears = suggested.ExperienceRequired
		}
		if job.Title == "" {
			job.Title = suggested.JobTitle
		}
	}

	logger.Info("job context ready",
		zap.String("title", job.Title),
		zap.Int("required_skills", len(job.RequiredSkill)),
		zap.Int("nice_to_have", len(job.NiceToHave)),
		zap.Int("required_years", job.RequiredYears),
	)

	return job, nil
}

func resolveJobDescription(config *Config) (string, error) {
	if config == nil || config.Job == nil {
		return "", errors.New("job section is required")
	}

	file := strings.TrimSpace(config.Job.DescriptionFile)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading job description from %q: %w", file, err)
		}
		if text := strings.TrimSpace(string(data)); text != "" {
			return text, nil
		}
		return "", fmt.Errorf("job description file %q is empty", file)
	}

	if text := strings.TrimSpace(config.Job.Description); text != "" {
		return text, nil
	}

	return "", errors.New("job description is not configured")
}

func gatherResumeFiles(dir string, recursive bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if resumeExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func screeningConfig(config *Config) screening.Config {
	cfg := screening.DefaultConfig()
	if config == nil || config.Screening == nil {
		return cfg
	}

	if config.Screening.Workers > 0 {
		cfg.MaxWorkers = config.Screening.Workers
	}
	if config.Screening.SkillMatchThreshold > 0 {
		cfg.SkillMatchThreshold = config.Screening.SkillMatchThreshold
	}
	if config.Screening.NameMatchThreshold > 0 {
		cfg.NameMatchThreshold = config.Screening.NameMatchThreshold
	}
	if config.Screening.DegenerateSimilarity > 0 {
		cfg.DegenerateSimilarity = config.Screening.DegenerateSimilarity
	}

	return cfg
}

func reportTarget(config *Config) (format, output string) {
	format = "text"
	output = "screening_report.txt"

	if config == nil || config.Report == nil {
		return format, output
	}

	if f := strings.TrimSpace(config.Report.Format); f != "" {
		format = f
		switch strings.ToLower(f) {
		case "csv":
			output = "screening_report.csv"
		case "json":
			output = "screening_report.json"
		}
	}
	if o := strings.TrimSpace(config.Report.Output); o != "" {
		output = o
	}

	return format, output
}

func csvPath(config *Config) string {
	if config != nil && config.Report != nil {
		if o := strings.TrimSpace(config.Report.Output); o != "" && strings.EqualFold(config.Report.Format, "csv") {
			return o
		}
	}
	return "screening_results.csv"
}

func newEnricher(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Enricher, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	geminiCfg := cfg.Gemini
	if geminiCfg == nil {
		geminiCfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  geminiCfg.APIKeyFile,
		Value: geminiCfg.APIKey,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, geminiCfg.Model, geminiCfg.MaxRetries, log)
	if err != nil {
		return nil, fmt.Errorf("create gemini generator: %w", err)
	}

	genLogger := logger.WithCommonFields(log, "gemini", generator.Model())

	return gemini.NewEnricher(generator, genLogger, geminiCfg.MaxLogLength), nil
}

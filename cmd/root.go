package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "hiresmart"
)

type Config struct {
	Job       *JobConfig       `mapstructure:"job"`
	Resumes   *ResumesConfig   `mapstructure:"resumes"`
	Screening *ScreeningConfig `mapstructure:"screening"`
	AI        *AIConfig        `mapstructure:"ai"`
	Report    *ReportConfig    `mapstructure:"report"`
}

type JobConfig struct {
	Title           string   `mapstructure:"title"`
	Description     string   `mapstructure:"description"`
	DescriptionFile string   `mapstructure:"description-file"`
	NiceToHave      []string `mapstructure:"nice-to-have"`
}

type ResumesConfig struct {
	Dir       string `mapstructure:"dir"`
	Recursive bool   `mapstructure:"recursive"`
}

type ScreeningConfig struct {
	Workers              int     `mapstructure:"workers"`
	SkillMatchThreshold  int     `mapstructure:"skill-match-threshold"`
	NameMatchThreshold   int     `mapstructure:"name-match-threshold"`
	DegenerateSimilarity float64 `mapstructure:"degenerate-similarity"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type ReportConfig struct {
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hiresmart is a cli for screening a folder of resumes against a job description",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hiresmart.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for the screen command. If there is no config, we can skip initialization
	if screenCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

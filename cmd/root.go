package cmd

import (
	"errors"
	"io/fs"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hey-rash/PlacementNex/internal/filtering"
	"github.com/hey-rash/PlacementNex/internal/logger"
	"github.com/hey-rash/PlacementNex/internal/placement"
	"github.com/hey-rash/PlacementNex/internal/responder"
	"github.com/hey-rash/PlacementNex/internal/simulation"
)

const (
	app = "placement-analyzer"
)

type Config struct {
	Dataset    string            `mapstructure:"dataset"`
	Simulation *SimulationConfig `mapstructure:"simulation"`
	Chat       *ChatConfig       `mapstructure:"chat"`
	AI         *AIConfig         `mapstructure:"ai"`
}

type SimulationConfig struct {
	Delay   time.Duration      `mapstructure:"delay"`
	Seed    uint64             `mapstructure:"seed"`
	Rounds  []simulation.Round `mapstructure:"rounds"`
	Filters filtering.Config   `mapstructure:"filters"`
}

type ChatConfig struct {
	Phrases []responder.Phrase `mapstructure:"phrases"`
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

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "placement-analyzer is a cli for exploring campus placement data",
		Long: `placement-analyzer ranks students, sorts them by any attribute, reports skill
gaps against recruiter demand, simulates hiring drives and answers questions
about the placement season.`,
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is placement-analyzer.yaml in current directory)")
	rootCmd.PersistentFlags().String("dataset", "", "dataset file (yaml, json or toml); the built-in sample is used when unset")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	viper.BindPFlag("dataset", rootCmd.PersistentFlags().Lookup("dataset"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))

	viper.SetDefault("simulation.delay", 800*time.Millisecond)
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("ai.gemini.max-retries", 3)
	viper.SetDefault("ai.gemini.max-log-length", 200)

	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}
}

func initConfig() {
	// A missing .env is fine; a broken one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The config file is optional unless it was requested explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Simulation == nil {
		config.Simulation = &SimulationConfig{}
	}
	if len(config.Simulation.Rounds) == 0 {
		config.Simulation.Rounds = simulation.DefaultRounds()
	}
	if config.Chat == nil {
		config.Chat = &ChatConfig{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}

	return config, nil
}

func newCommandLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("json"), viper.GetBool("debug"))
}

// bootstrap builds the logger, reads the config and loads the dataset.
// Any failure is fatal.
func bootstrap() (*zap.Logger, *Config, *placement.Dataset) {
	logger, err := newCommandLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting the "+app, zap.String("version", version), zap.String("dataset", config.Dataset))

	var ds *placement.Dataset
	if config.Dataset == "" {
		ds = placement.Sample()
		logger.Debug("using the built-in sample dataset")
	} else {
		ds, err = placement.Load(config.Dataset)
		if err != nil {
			logger.Fatal("loading the dataset", zap.Error(err))
		}
	}

	for _, warning := range ds.Warnings() {
		logger.Warn("dataset inconsistency", zap.String("detail", warning))
	}

	logger.Debug("dataset loaded",
		zap.Int("candidates", len(ds.Candidates)),
		zap.Int("organizations", len(ds.Organizations)),
	)

	return logger, config, ds
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hey-rash/PlacementNex/internal/ai/gemini"
	"github.com/hey-rash/PlacementNex/internal/insights"
	"github.com/hey-rash/PlacementNex/internal/logger"
	"github.com/hey-rash/PlacementNex/internal/placement"
	"github.com/hey-rash/PlacementNex/internal/responder"
	"github.com/hey-rash/PlacementNex/internal/secrets"
)

const promptExit = "exit"

var chatCmd = &cobra.Command{
	Use:   "chat [question...]",
	Short: "Ask the placement assistant a question",
	Long: `Ask the placement assistant a question. Known phrases such as "highest package",
"placement rate", "top recruiter" or "<branch> students" are answered from the
dataset; anything else goes to the AI assistant when it is enabled.
Without arguments an interactive session is started.`,
	Run: func(_ *cobra.Command, args []string) {
		chat(args)
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Check a resume against the skills recruiters ask for",
	Run: func(cmd *cobra.Command, _ []string) {
		reviewResume(cmd)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd, resumeCmd)

	resumeCmd.Flags().StringP("file", "f", "", "plain text resume file")
	resumeCmd.Flags().String("student", "", "use the resume text of the student with this id")
	resumeCmd.Flags().StringSlice("skills", nil, "skills to look for (default: skills required by all organizations)")
	resumeCmd.Flags().Bool("advice", false, "ask the AI assistant for improvement advice")
}

func chat(args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log, config, ds := bootstrap()

	trie := responder.NewTrie()
	trie.InsertAll(insights.Facts(ds))
	trie.InsertAll(config.Chat.Phrases)

	var bot *responder.Chat
	advisor, err := newAdvisor(ctx, config.AI, ds, log)
	switch {
	case err != nil:
		log.Warn("continuing without the AI assistant", zap.Error(err))
		bot = responder.NewChat(trie, nil, log)
	case advisor != nil:
		bot = responder.NewChat(trie, advisor, log)
	default:
		bot = responder.NewChat(trie, nil, log)
	}

	log.Debug("chat ready", zap.Int("phrases", trie.Len()), zap.Bool("ai", advisor != nil))

	if len(args) > 0 {
		answer(ctx, bot, log, strings.Join(args, " "))
		return
	}

	for {
		input := promptui.Prompt{
			Label: fmt.Sprintf("Ask (%q to quit)", promptExit),
		}

		question, err := input.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return
			}
			log.Fatal("reading the question", zap.Error(err))
		}

		if strings.EqualFold(strings.TrimSpace(question), promptExit) {
			return
		}

		if !answer(ctx, bot, log, question) {
			return
		}
	}
}

// answer prints the reply and reports whether the session can continue.
func answer(ctx context.Context, bot *responder.Chat, log *zap.Logger, question string) bool {
	reply, err := bot.Reply(ctx, question)
	if err != nil {
		log.Warn("chat interrupted", zap.Error(err))
		return false
	}
	log.Debug("replied", zap.String("source", reply.Source))
	fmt.Println(reply.Text)
	return true
}

func reviewResume(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log, config, ds := bootstrap()

	file, _ := cmd.Flags().GetString("file")
	studentID, _ := cmd.Flags().GetString("student")
	skills, _ := cmd.Flags().GetStringSlice("skills")

	var text string
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			log.Fatal("reading the resume", zap.Error(err))
		}
		text = string(data)
	case studentID != "":
		student, err := ds.FindCandidate(studentID)
		if err != nil {
			log.Fatal("finding the student", zap.Error(err))
		}
		text = student.ResumeText
	default:
		log.Fatal("a resume is required", zap.String("hint", "pass --file or --student"))
	}

	if len(skills) == 0 {
		for _, o := range ds.Organizations {
			skills = append(skills, o.RequiredSkills...)
		}
		skills = placement.CanonicalSkills(skills)
	}

	r := newRenderer()
	r.Resume(insights.AnalyzeResume(text, skills))

	if advice, _ := cmd.Flags().GetBool("advice"); !advice {
		return
	}

	advisor, err := newAdvisor(ctx, config.AI, ds, log)
	if err != nil {
		log.Fatal("creating the AI assistant", zap.Error(err))
	}
	if advisor == nil {
		log.Fatal("the AI assistant is disabled", zap.String("hint", "set ai.enabled in the config file"))
	}

	review, err := advisor.Review(ctx, text, skills)
	if err != nil {
		log.Fatal("reviewing the resume", zap.Error(err))
	}
	r.Text("Suggestions", review)
}

// newAdvisor returns nil without an error when the assistant is disabled.
func newAdvisor(ctx context.Context, cfg *AIConfig, ds *placement.Dataset, log *zap.Logger) (*gemini.Advisor, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != gemini.Provider {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Value: cfg.Gemini.APIKey,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, gemini.Options{
		Model:      cfg.Gemini.Model,
		MaxRetries: cfg.Gemini.MaxRetries,
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}

	advisorLogger := logger.WithFields(
		logger.ForComponent(log, "advisor"),
		logger.AIFields(gemini.Provider, generator.Model())...,
	)

	return gemini.NewAdvisor(generator, ds, advisorLogger, cfg.Gemini.MaxLogLength), nil
}

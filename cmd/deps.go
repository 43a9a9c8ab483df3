package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmate/internal/assess"
	"github.com/abhisek/quizmate/internal/interview"
	"github.com/abhisek/quizmate/internal/ledger"
	"github.com/abhisek/quizmate/internal/llm"
	"github.com/abhisek/quizmate/internal/qcache"
	"github.com/abhisek/quizmate/internal/quizbank"
	"github.com/abhisek/quizmate/internal/quizgen"
	"github.com/abhisek/quizmate/internal/screens/question"
	"github.com/abhisek/quizmate/internal/selector"
	"github.com/abhisek/quizmate/internal/settings"
	"github.com/abhisek/quizmate/internal/store"
	"github.com/abhisek/quizmate/internal/weakness"
)

// deps wires the store-backed services a command needs. Close the store
// when done.
type deps struct {
	store      *store.Store
	settings   *settings.Manager
	ledger     *ledger.Service
	analyzer   *weakness.Analyzer
	assessor   *assess.Assessor
	cache      *qcache.Cache
	bank       *quizbank.Bank
	selector   *selector.Selector
	interviews *interview.Manager
	aiReady    bool
}

// openDeps opens the store and builds the service graph. The LLM provider
// is optional: when no provider is configured, AI generation is skipped
// and the selector serves cached and static questions only.
func openDeps(cmd *cobra.Command) (*deps, error) {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	stateRepo := st.StateRepo()

	settingsMgr, err := settings.NewManager(ctx, stateRepo)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load settings: %w", err)
	}
	led, err := ledger.NewService(ctx, stateRepo)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	analyzer := weakness.NewAnalyzer(ctx, stateRepo)
	assessor := assess.NewAssessor(ctx, stateRepo)
	cache := qcache.NewCache(ctx, stateRepo)
	bank := quizbank.New()

	d := &deps{
		store:      st,
		settings:   settingsMgr,
		ledger:     led,
		analyzer:   analyzer,
		assessor:   assessor,
		cache:      cache,
		bank:       bank,
		interviews: interview.NewManager(ctx, stateRepo, bank),
	}

	s := settingsMgr.Get()
	var gen selector.Generator
	if cfg, ok := providerConfig(s); ok {
		provider, perr := llm.NewProvider(ctx, cfg, st.EventRepo())
		if perr != nil {
			fmt.Fprintln(os.Stderr, "LLM provider unavailable:", perr)
			fmt.Fprintln(os.Stderr, "AI question generation is off; serving cached and static questions.")
		} else {
			gcfg := quizgen.DefaultConfig()
			gcfg.CustomPrompt = s.CustomPrompt
			gen = quizgen.New(provider, gcfg)
			d.aiReady = true
		}
	} else if s.Question.UseAI {
		fmt.Fprintln(os.Stderr, "AI is enabled in settings but no provider is configured.")
		fmt.Fprintln(os.Stderr, "Set an API key (quizmate settings set --openai-key ...) or an env var like OPENAI_API_KEY.")
	}

	d.selector = selector.New(analyzer, gen, cache, bank)
	return d, nil
}

func (d *deps) Close() error {
	return d.store.Close()
}

// prefs snapshots the current question preferences. AI is only enabled
// when the settings ask for it and a provider is actually configured.
func (d *deps) prefs() selector.Prefs {
	s := d.settings.Get()
	return selector.Prefs{
		Topics:    s.Question.PreferredTopics,
		Levels:    s.Question.PreferredLevels,
		AIEnabled: s.Question.UseAI && d.aiReady,
	}
}

// askOnce runs one question round and refreshes the weakness analysis
// so the next selection sees the new attempt.
func (d *deps) askOnce(ctx context.Context, p selector.Prefs) error {
	if err := question.Run(d.selector, d.ledger, p); err != nil {
		return err
	}
	d.analyzer.Analyze(ctx, d.ledger.Aggregates(), d.ledger.WeeklyStats())
	return nil
}

// providerConfig resolves the LLM configuration. Environment variables
// win; settings-stored keys and provider choice fill the gaps; as a last
// resort the standard vendor env vars are probed.
func providerConfig(s settings.Settings) (llm.Config, bool) {
	cfg := llm.ConfigFromEnv()

	if os.Getenv("QUIZMATE_LLM_PROVIDER") == "" && s.AIProvider != "" {
		cfg.Provider = s.AIProvider
	}
	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = s.OpenAIAPIKey
	}
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = s.GeminiAPIKey
	}

	if cfg.Validate() == nil {
		return cfg, true
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered, true
	}
	return cfg, false
}

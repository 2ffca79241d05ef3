package main

import (
	"os"

	"github.com/example/studycoach/internal/advisor"
	"github.com/example/studycoach/internal/cli"
	"github.com/example/studycoach/internal/config"
	"github.com/example/studycoach/internal/logger"
	"github.com/example/studycoach/internal/services"
	"github.com/example/studycoach/internal/store"
	"github.com/example/studycoach/internal/tips"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	log.Debug("data_path=%s", cfg.DataPath)
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("review_limit=%d", cfg.ReviewLimit)
	log.Debug("advisor_enabled=%t", cfg.AdvisorEnabled())

	st := store.Open(cfg.DataPath)

	var adv advisor.Advisor = advisor.Disabled{}
	if cfg.AdvisorEnabled() {
		adv = advisor.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	}
	coach := advisor.NewCoach(adv)

	app := &cli.App{
		Config:     cfg,
		Store:      st,
		Coach:      coach,
		Roadmap:    services.NewRoadmapService(st),
		Progress:   services.NewProgressService(st),
		Flashcards: services.NewFlashcardService(st, coach),
		Resources:  services.NewResourceService(st),
		Projects:   services.NewProjectService(st),
		Tips:       services.NewTipsService(st, tips.New(tips.DefaultBank()), coach),
		Out:        os.Stdout,
		In:         os.Stdin,
	}

	os.Exit(app.Run(os.Args[1:]))
}

package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

var TrainEmojis = []string{"🚝", "🚅", "🚄", "🚇", "🚞", "🚈", "🚉", "🚂", "🚃", "🚊", "🚋"}

type SpinnerCfg struct {
	Message  string
	Tokens   []string
	Duration time.Duration
}

var s = &spinner.Spinner{}

func StartSpinner(cfg *SpinnerCfg) {
	// spinner frames over a pipe would end up in captured output
	if !SupportsANSICodes() {
		return
	}
	if cfg.Tokens == nil {
		cfg.Tokens = TrainEmojis
	}
	if cfg.Duration == 0 {
		cfg.Duration = 100 * time.Millisecond
	}
	s = spinner.New(cfg.Tokens, cfg.Duration)
	s.Writer = os.Stdout

	if cfg.Message != "" {
		s.Suffix = " " + cfg.Message
	}

	s.Start()
}

func StopSpinner(msg string) {
	if msg != "" {
		s.FinalMSG = msg + "\n"
	}

	s.Stop()
}

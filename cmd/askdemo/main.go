// Package main is a guided tour of every askstorm prompt kind.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dshills/askstorm"
	"github.com/dshills/askstorm/validate"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	theme := askstorm.DefaultTheme()
	if opts.themePath != "" {
		if err := applyThemeFile(theme, opts.themePath); err != nil {
			logger.Error("failed to load theme", "path", opts.themePath, "err", err)
			return 1
		}
	}

	p := askstorm.New(askstorm.Options{Theme: theme})
	defer p.Close()

	ctx := context.Background()
	if err := tour(ctx, p, logger); err != nil {
		if errors.Is(err, askstorm.ErrCancelled) {
			logger.Info("cancelled")
			return 0
		}
		logger.Error("prompt failed", "err", err)
		return 1
	}
	return 0
}

type options struct {
	themePath string
}

func parseFlags() options {
	var opts options
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.StringVar(&opts.themePath, "theme", "", "path to a TOML theme file")
	flag.Parse()

	if *showVersion {
		fmt.Printf("askdemo %s (%s)\n", version, commit)
		os.Exit(0)
	}
	return opts
}

// tour walks through every prompt kind in sequence.
func tour(ctx context.Context, p *askstorm.Prompter, logger *log.Logger) error {
	name, err := p.Text(ctx, askstorm.TextConfig{
		Message:     "Project name",
		Placeholder: "my-project",
		Default:     "demo",
	})
	if err != nil {
		return err
	}

	secret, err := p.Password(ctx, askstorm.PasswordConfig{Message: "API token"})
	if err != nil {
		return err
	}

	port, err := p.Number(ctx, askstorm.NumberConfig{
		Message:  "Port",
		Validate: validate.Number().Min(1).Max(65535).Integer(),
	})
	if err != nil {
		return err
	}

	tags, err := p.List(ctx, askstorm.ListConfig{
		Message:  "Tags (comma separated)",
		MaxItems: 5,
	})
	if err != nil {
		return err
	}

	lang, err := askstorm.Autocomplete(ctx, p, askstorm.AutocompleteConfig[string]{
		Message: "Language",
		Options: askstorm.Choices("Go", "Rust", "Python", "TypeScript", "JavaScript", "Java", "Zig"),
	})
	if err != nil {
		return err
	}

	features, err := askstorm.MultiSelect(ctx, p, askstorm.MultiSelectConfig[string]{
		Message: "Features",
		Options: []askstorm.Option[string]{
			{Label: "HTTP server", Value: "http", Hint: "net/http scaffold"},
			{Label: "Database", Value: "db"},
			{Label: "Metrics", Value: "metrics"},
			{Label: "Tracing", Value: "tracing"},
		},
	})
	if err != nil {
		return err
	}

	env, err := askstorm.Select(ctx, p, askstorm.SelectConfig[string]{
		Message: "Environment",
		Options: askstorm.Choices("development", "staging", "production"),
	})
	if err != nil {
		return err
	}

	cfgPath, err := p.FilePath(ctx, askstorm.FilePathConfig{
		Message: "Config directory",
		Initial: "./",
		DirOnly: true,
	})
	if err != nil {
		return err
	}

	release, err := p.Date(ctx, askstorm.DateConfig{
		Message: "Release date",
		Min:     time.Now(),
		Max:     time.Now().AddDate(1, 0, 0),
	})
	if err != nil {
		return err
	}

	notify, err := p.Toggle(ctx, askstorm.ToggleConfig{
		Message: "Notifications",
		Default: true,
	})
	if err != nil {
		return err
	}

	notes, err := p.Editor(ctx, askstorm.EditorConfig{
		Message:   "Release notes",
		Default:   "## Changes\n\n- \n",
		Extension: ".md",
	})
	if err != nil {
		return err
	}

	owner, err := p.Form(ctx, askstorm.FormConfig{
		Message: "Owner",
		Fields: []askstorm.Field{
			{Name: "name", Message: "Owner name", Required: true},
			{Name: "oncall", Message: "On call?", Kind: askstorm.FieldConfirm},
			{Name: "team", Message: "Team", Kind: askstorm.FieldSelect,
				Options: askstorm.Choices("platform", "runtime", "tooling")},
		},
	})
	if err != nil {
		return err
	}

	ok, err := p.Confirm(ctx, askstorm.ConfirmConfig{
		Message: "Apply this configuration?",
		Default: true,
	})
	if err != nil {
		return err
	}
	if !ok {
		logger.Info("nothing applied")
		return nil
	}

	simulateApply(p)

	logger.Info("configured",
		"project", name,
		"token", len(secret) > 0,
		"port", port,
		"tags", tags,
		"language", lang,
		"features", features,
		"env", env,
		"config", cfgPath,
		"release", release.Format("2006-01-02"),
		"notify", notify,
		"notes", len(notes),
		"owner", owner["name"],
	)
	return nil
}

// simulateApply drives the live primitives: a spinner for the setup phase
// and a draft with one line per concurrent fake download.
func simulateApply(p *askstorm.Prompter) {
	sp := p.Spinner("Preparing workspace")
	time.Sleep(600 * time.Millisecond)
	sp.SetMessage("Resolving dependencies")
	time.Sleep(600 * time.Millisecond)
	sp.Succeed("Workspace ready")

	d := p.Draft()
	var wg sync.WaitGroup
	for _, pkg := range []string{"runtime", "compiler", "stdlib", "toolchain"} {
		line := d.AddLine(pkg + ": queued")
		wg.Add(1)
		go func(pkg string, l *askstorm.DraftLine) {
			defer wg.Done()
			for pct := 0; pct <= 100; pct += 10 {
				l.Update(fmt.Sprintf("%s: %d%%", pkg, pct))
				time.Sleep(time.Duration(30+rand.Intn(90)) * time.Millisecond)
			}
			l.Done(pkg + ": done")
		}(pkg, line)
	}
	wg.Wait()
}

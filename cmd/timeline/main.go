package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/ivlev/timeline/internal/config"
	"github.com/ivlev/timeline/internal/engine"
	"github.com/ivlev/timeline/internal/system"
	"github.com/ivlev/timeline/scenario"
)

// Задается через -ldflags "-X main.buildVersion=..."
var buildVersion = "dev"

const usage = `timeline - sample keyframe scenarios

Usage:
  timeline sample  [options]   sample tracks once per frame (csv or yaml)
  timeline convert [options]   rewrite a scenario as YAML
  timeline inspect [options]   list tracks, kinds and durations

Run "timeline <command> -h" for the options of a command.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("[-] Ошибка: %v", err)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("не указана команда")
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "sample", "convert", "inspect":
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("неизвестная команда %q", cmd)
	}

	if err := config.LoadEnvFiles(); err != nil {
		return err
	}
	cfg := config.Default()
	cfg.BuildVersion = buildVersion
	cfgFile := os.Getenv("TIMELINE_CONFIG")
	if cfgFile == "" {
		cfgFile = config.DefaultFile
	}
	if err := cfg.ApplyFile(cfgFile); err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}

	fs := flag.NewFlagSet("timeline "+cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.InputPath, "input", "", "Путь к сценарию .yaml/.json/.xml/.hcl (по умолчанию: самый свежий файл в -scenarios)")
	fs.StringVar(&cfg.OutputPath, "output", "", "Путь к результату (для sample: по умолчанию stdout; auto: файл с меткой времени в -output-dir)")
	fs.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "Папка для -output auto")
	fs.StringVar(&cfg.ScenarioDir, "scenarios", cfg.ScenarioDir, "Папка со сценариями")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Уровень логов: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Формат логов: text, json")
	var tracks string
	if cmd == "sample" {
		fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "FPS")
		fs.Float64Var(&cfg.Duration, "duration", cfg.Duration, "Длительность в секундах (если 0, берется из сценария)")
		fs.StringVar(&cfg.Format, "format", cfg.Format, "Формат результата: csv, yaml")
		fs.StringVar(&tracks, "tracks", strings.Join(cfg.Tracks, ","), "Треки через запятую (по умолчанию: все)")
		fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Потоки")
		fs.BoolVar(&cfg.ShowStats, "stats", cfg.ShowStats, "Показать отчет о производительности")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd == "sample" {
		cfg.Tracks = config.SplitList(tracks)
	}

	logger := system.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	if cfg.InputPath == "" {
		latest, err := system.FindLatestScenario(cfg.ScenarioDir, scenario.Extensions)
		if err != nil {
			return fmt.Errorf("%w. Положите сценарий в %s/", err, cfg.ScenarioDir)
		}
		cfg.InputPath = latest
		fmt.Fprintf(stderr, "[*] Выбран файл: %s\n", cfg.InputPath)
	}

	// Таблица идет в stdout, если не задан -output, поэтому прогресс пишем в stderr.
	project := engine.NewProject(cfg, logger, stderr)
	project.Data = stdout
	switch cmd {
	case "sample":
		return project.Run(ctx)
	case "convert":
		return project.Convert()
	default:
		project.Out = stdout
		return project.Inspect()
	}
}

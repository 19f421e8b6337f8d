package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ivlev/timeline"
	"github.com/ivlev/timeline/internal/config"
	"github.com/ivlev/timeline/internal/renderer"
	"github.com/ivlev/timeline/internal/system"
	"github.com/ivlev/timeline/scenario"
)

type Project struct {
	Config *config.Config
	Logger *slog.Logger
	Out    io.Writer // прогресс и отчеты
	Data   io.Writer // таблица, если путь результата не задан (nil: Out)
}

func NewProject(cfg *config.Config, logger *slog.Logger, out io.Writer) *Project {
	return &Project{Config: cfg, Logger: logger, Out: out}
}

// Load загружает сценарий из конфига в новую временную шкалу.
func (p *Project) Load() (*timeline.Timeline, error) {
	tl := timeline.New()
	if err := scenario.LoadFile(tl, p.Config.InputPath); err != nil {
		return nil, err
	}
	p.Logger.Debug("scenario loaded", "path", p.Config.InputPath, "tracks", tl.Len(), "duration", tl.MaxDuration())
	return tl, nil
}

// Run сэмплирует сценарий и записывает таблицу в заданный вывод.
func (p *Project) Run(ctx context.Context) error {
	startTime := time.Now()

	if err := p.Config.Validate(); err != nil {
		return err
	}

	tl, err := p.Load()
	if err != nil {
		return err
	}
	loadTime := time.Since(startTime)

	names, err := p.selectTracks(tl)
	if err != nil {
		return err
	}

	duration := tl.MaxDuration()
	if p.Config.Duration > 0 {
		duration = time.Duration(p.Config.Duration * float64(time.Second))
	}

	p.resolveOutput(p.Config.Format)

	fmt.Fprintln(p.Out, "--- [TIMELINE: SAMPLER] ---")
	fmt.Fprintf(p.Out, "[*] Сценарий: %s | Треков: %d\n", p.Config.InputPath, len(names))
	fmt.Fprintf(p.Out, "[*] Длительность: %s @ %d FPS | Кадров: %d\n",
		scenario.FormatTimecode(duration), p.Config.FPS, renderer.FrameCount(duration, p.Config.FPS))
	fmt.Fprintln(p.Out, "-----------------------------")

	sampleStart := time.Now()
	table, err := renderer.Sample(ctx, tl, names, duration, p.Config.FPS, p.Config.Workers)
	if err != nil {
		return fmt.Errorf("ошибка сэмплирования: %w", err)
	}
	sampleTime := time.Since(sampleStart)

	writeStart := time.Now()
	if err := p.writeTable(table); err != nil {
		return fmt.Errorf("ошибка записи результата: %w", err)
	}
	writeTime := time.Since(writeStart)

	if p.Config.ShowStats {
		p.report(len(table.Times), len(names), time.Since(startTime), loadTime, sampleTime, writeTime)
	}
	return nil
}

// selectTracks возвращает треки из конфига или все треки с ключевыми кадрами.
// Пустые треки пропускаются с предупреждением.
func (p *Project) selectTracks(tl *timeline.Timeline) ([]string, error) {
	if len(p.Config.Tracks) > 0 {
		for _, name := range p.Config.Tracks {
			if _, ok := tl.Lookup(name); !ok {
				return nil, fmt.Errorf("трек %q не найден (есть: %s)", name, strings.Join(tl.Names(), ", "))
			}
		}
		return p.Config.Tracks, nil
	}

	var names []string
	for _, name := range tl.Names() {
		if tl.Get(name).Len() == 0 {
			p.Logger.Warn("skipping empty track", "track", name)
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("в сценарии нет треков с ключевыми кадрами")
	}
	return names, nil
}

// resolveOutput заменяет -output auto на путь с меткой времени в OutputDir.
func (p *Project) resolveOutput(ext string) {
	if p.Config.OutputPath == config.AutoOutput {
		p.Config.OutputPath = system.GenerateOutputPath(p.Config.OutputDir, p.Config.InputPath, ext)
	}
}

func (p *Project) writeTable(table *renderer.Table) error {
	write := func(w io.Writer) error {
		if p.Config.Format == "yaml" {
			return renderer.WriteYAML(w, table)
		}
		return renderer.WriteCSV(w, table, system.NewRowPool())
	}

	if p.Config.OutputPath == "" {
		w := p.Data
		if w == nil {
			w = p.Out
		}
		return write(w)
	}

	if err := createFile(p.Config.OutputPath, write); err != nil {
		return err
	}
	fmt.Fprintf(p.Out, "[+] Результат: %s\n", p.Config.OutputPath)
	return nil
}

// createFile создает path вместе с каталогом и пишет в него через write.
// Ошибка Close возвращается, если запись прошла без ошибок.
func createFile(path string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

func (p *Project) report(frames, tracks int, total, load, sample, write time.Duration) {
	samplesPerSec := float64(frames*tracks) / sample.Seconds()

	fmt.Fprintf(p.Out,
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %s\n"+
			"Loading: %s\n"+
			"Sampling: %s\n"+
			"Writing: %s\n"+
			"Samples/s: %.0f\n",
		p.Config.BuildVersion, system.Elapsed(total), system.Elapsed(load),
		system.Elapsed(sample), system.Elapsed(write), samplesPerSec,
	)

	st, err := system.ProcessStats()
	if err != nil {
		p.Logger.Warn("process stats unavailable", "err", err)
	} else {
		fmt.Fprintf(p.Out, "Memory (RSS): %s\nCPU: %.1f%%\nGoroutines: %d\n",
			system.FormatBytes(st.RSS), st.CPUPercent, st.Goroutines)
	}
	fmt.Fprintln(p.Out, "----------------------------")
}

// Convert сохраняет сценарий в YAML по пути результата.
func (p *Project) Convert() error {
	p.resolveOutput("yaml")
	if p.Config.OutputPath == "" {
		return fmt.Errorf("не указан -output для convert")
	}
	if ext := strings.ToLower(filepath.Ext(p.Config.OutputPath)); !slices.Contains([]string{".yaml", ".yml"}, ext) {
		return fmt.Errorf("convert пишет только YAML, получено расширение %q", ext)
	}

	tl, err := p.Load()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.Config.OutputPath), 0755); err != nil {
		return err
	}
	if err := scenario.WriteYAML(scenario.FromTimeline(tl), p.Config.OutputPath); err != nil {
		return err
	}

	fmt.Fprintf(p.Out, "[+] Сценарий сохранен: %s\n", p.Config.OutputPath)
	return nil
}

// Inspect печатает тип, число ключей и длительность каждого трека.
func (p *Project) Inspect() error {
	tl, err := p.Load()
	if err != nil {
		return err
	}

	fmt.Fprintf(p.Out, "[*] Сценарий: %s\n", p.Config.InputPath)
	for _, name := range tl.Names() {
		tr := tl.Get(name)
		fmt.Fprintf(p.Out, "  %-16s %-8s keys=%-4d duration=%s\n",
			name, tr.Kind(), tr.Len(), scenario.FormatTimecode(tr.Duration()))
	}
	fmt.Fprintf(p.Out, "[*] Треков: %d | Общая длительность: %s\n", tl.Len(), scenario.FormatTimecode(tl.MaxDuration()))
	return nil
}

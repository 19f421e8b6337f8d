package system

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Stats - снимок состояния текущего процесса.
type Stats struct {
	RSS        uint64 // резидентная память, байты
	CPUPercent float64
	Goroutines int
}

// ProcessStats читает резидентную память и загрузку CPU текущего процесса.
func ProcessStats() (Stats, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return Stats{}, err
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		return Stats{}, fmt.Errorf("memory info: %w", err)
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return Stats{}, fmt.Errorf("cpu percent: %w", err)
	}
	return Stats{RSS: mem.RSS, CPUPercent: cpu, Goroutines: runtime.NumGoroutine()}, nil
}

// FormatBytes форматирует n в двоичных единицах.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Elapsed форматирует длительность в секундах для отчета о производительности.
func Elapsed(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}

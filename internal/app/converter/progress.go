package converter

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
		mpb.WithRefreshRate(120*time.Millisecond),
		// Render even when the writer is not a terminal (piped stderr, log files).
		mpb.WithAutoRefresh(),
	)

	return &ProgressManager{
		container: container,
		enabled:   true,
	}
}

func (pm *ProgressManager) CreateBar(total int, description string) *ProgressBar {
	if pm == nil || !pm.enabled || pm.container == nil {
		return &ProgressBar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " ✓ ",
			),
			decor.OnComplete(
				decor.EwmaSpeed(0, "%.1f files/s", 30, decor.WCSyncSpace), "",
			),
		),
	)

	return &ProgressBar{
		bar:     bar,
		enabled: true,
	}
}

// Increment advances the bar by one file. EWMA decorators need the elapsed time.
func (pb *ProgressBar) Increment(elapsed time.Duration) {
	if pb.enabled && pb.bar != nil {
		pb.bar.EwmaIncrement(elapsed)
	}
}

func (pm *ProgressManager) Wait() {
	if pm != nil && pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr)
}

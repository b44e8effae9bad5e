package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"voicemap/internal/app/gloss"
	"voicemap/internal/app/intake"
	"voicemap/internal/app/pipeline"
)

// Runner is the part of the pipeline the batch converter drives
type Runner interface {
	Transcribe(ctx context.Context, inputFilePath string) (*pipeline.Transcription, error)
	SignLanguage(ctx context.Context, inputFilePath string) (*pipeline.SignLanguage, error)
}

// Options control a batch run
type Options struct {
	Parallel     int
	SignLanguage bool
}

// Result is the outcome for one file. Err is set when the pipeline rejected it.
type Result struct {
	File          string           `json:"file"`
	Language      string           `json:"language,omitempty"`
	Transcription string           `json:"transcription,omitempty"`
	Gloss         []string         `json:"gloss,omitempty"`
	Videos        []gloss.VideoRef `json:"videos,omitempty"`
	Error         string           `json:"error,omitempty"`
	Err           error            `json:"-"`
}

// Converter runs local audio files through the pipeline in parallel
type Converter struct {
	runner   Runner
	progress *ProgressManager
	logger   *zap.Logger
}

func NewConverter(runner Runner, progress ProgressConfig, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		runner:   runner,
		progress: NewProgressManager(progress),
		logger:   logger,
	}
}

// Close waits for the progress bars to render their final state
func (c *Converter) Close() {
	c.progress.Wait()
}

// CollectAudioFiles expands files and directories into the sorted list of
// audio files with an accepted extension. Directories are not walked recursively.
func CollectAudioFiles(paths []string) ([]string, error) {
	var found []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", p, err)
		}

		if !info.IsDir() {
			if !intake.AllowedFile(p) {
				return nil, fmt.Errorf("%s: unsupported audio extension", p)
			}
			found = append(found, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", p, err)
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() && intake.AllowedFile(entry.Name()) {
				found = append(found, filepath.Join(p, entry.Name()))
			}
		}
	}

	sort.Strings(found)
	return found, nil
}

// Do processes files with at most opts.Parallel in flight. Results keep the
// input order; per-file failures are reported in the result, not returned.
func (c *Converter) Do(ctx context.Context, files []string, opts Options) []Result {
	results := make([]Result, len(files))
	if len(files) == 0 {
		return results
	}

	parallel := opts.Parallel
	if parallel < 1 {
		parallel = 1
	}

	description := "Transcribing"
	if opts.SignLanguage {
		description = "Translating to sign"
	}
	progressBar := c.progress.CreateBar(len(files), description)

	var wg sync.WaitGroup
	sem := make(chan struct{}, parallel)

	for i, file := range files {
		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()

			sem <- struct{}{}
			start := time.Now()
			results[i] = c.convert(ctx, file, opts.SignLanguage)
			<-sem

			progressBar.Increment(time.Since(start))
			if results[i].Err != nil {
				c.logger.Warn("conversion failed", zap.String("file", file), zap.Error(results[i].Err))
			} else {
				c.logger.Debug("conversion finished", zap.String("file", file), zap.Duration("elapsed", time.Since(start)))
			}
		}(i, file)
	}
	wg.Wait()

	return results
}

func (c *Converter) convert(ctx context.Context, file string, signLanguage bool) Result {
	result := Result{File: file}

	if err := ctx.Err(); err != nil {
		result.Err = err
		result.Error = err.Error()
		return result
	}

	if signLanguage {
		out, err := c.runner.SignLanguage(ctx, file)
		if err != nil {
			result.Err = err
			result.Error = err.Error()
			return result
		}
		result.Language = out.Language
		result.Transcription = out.Text
		result.Gloss = out.Gloss
		result.Videos = out.Videos
		return result
	}

	out, err := c.runner.Transcribe(ctx, file)
	if err != nil {
		result.Err = err
		result.Error = err.Error()
		return result
	}
	result.Language = out.Language
	result.Transcription = out.Text
	return result
}

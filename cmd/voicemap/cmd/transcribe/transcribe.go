package transcribe

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voicemap/internal/app"
	"voicemap/internal/app/converter"
)

var (
	parallel     int
	signLanguage bool
	progress     bool
)

func init() {
	Cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "Number of files transcribed at once")
	Cmd.Flags().BoolVarP(&signLanguage, "sign", "s", false, "Also produce gloss tokens and sign videos")
	Cmd.Flags().BoolVar(&progress, "progress", false, "Force the progress bar even when stderr is not a terminal")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <file-or-dir>...",
	Short: "Run local audio files through the VoiceMap pipeline",
	Long: `Run local audio files through the VoiceMap pipeline.

- Directories are scanned (not recursively) for mp3, mp4, mpeg, mpga, m4a, wav and webm files
- Each result is printed as one JSON line on stdout
- Files in an unsupported language are reported, not fatal`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := app.Bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		files, err := converter.CollectAudioFiles(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no audio files found")
		}

		p, err := app.InitializePipeline(cfg, logger)
		if err != nil {
			return err
		}

		c := converter.NewConverter(p, converter.ProgressConfig{
			Enabled: converter.ShouldShowProgress(progress),
			Writer:  cmd.ErrOrStderr(),
		}, logger)
		results := c.Do(cmd.Context(), files, converter.Options{
			Parallel:     parallel,
			SignLanguage: signLanguage,
		})
		c.Close()

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetEscapeHTML(false)
		for _, r := range results {
			if err := encoder.Encode(r); err != nil {
				return err
			}
		}

		failed := lo.CountBy(results, func(r converter.Result) bool { return r.Err != nil })
		logger.Info("Batch finished", zap.Int("files", len(results)), zap.Int("failed", failed))
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(results))
		}
		return nil
	},
}

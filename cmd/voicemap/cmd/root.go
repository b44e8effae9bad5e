package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"voicemap/cmd/voicemap/cmd/check"
	"voicemap/cmd/voicemap/cmd/serve"
	"voicemap/cmd/voicemap/cmd/transcribe"
	"voicemap/cmd/voicemap/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "voicemap",
	Short: "Speech to text and sign language video service",
	Long: `VoiceMap transcribes uploaded audio, accepts English and Hindi speech,
and maps the transcript to sign language gloss tokens and sign videos.

- serve runs the HTTP service
- transcribe runs local audio files through the same pipeline
- check verifies the configured transcription engine is reachable`,
	TraverseChildren: true,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

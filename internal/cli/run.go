package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crimson-sun/utvalg/internal/config"
	"github.com/crimson-sun/utvalg/internal/filter"
	"github.com/crimson-sun/utvalg/internal/logging"
	"github.com/crimson-sun/utvalg/internal/output"
	"github.com/crimson-sun/utvalg/internal/pipeline"
	"github.com/crimson-sun/utvalg/internal/tagger"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Filter a corpus and write the accepted sentences in chunks",
	Long: `Run reads the input TSV (id, sentence), applies the fast filter cascade
and the proper-noun tagger, and writes survivors into numbered output_N.tsv
chunks in the output directory.

Example:
  utvalg run --input corpus.tsv --output-dir out/
  utvalg run --input corpus.tsv --output-dir out/ --single-sentences --chunk-size 50000`,
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("input", "i", "", "input TSV file (required)")
	runCmd.Flags().StringP("output-dir", "o", "", "existing directory for output chunks (required)")
	runCmd.Flags().Bool("single-sentences", false, "write bare sentences without provenance columns")
	runCmd.Flags().Int("chunk-size", output.DefaultChunkSize, "maximum sentences per output file")
	runCmd.Flags().String("model-dir", "models", "directory with the POS model bundle (model.onnx, vocab.txt, labels.txt)")

	_ = viper.BindPFlag("input.path", runCmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("output.dir", runCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("output.single_sentences", runCmd.Flags().Lookup("single-sentences"))
	_ = viper.BindPFlag("output.chunk_size", runCmd.Flags().Lookup("chunk-size"))
	_ = viper.BindPFlag("tagger.model_dir", runCmd.Flags().Lookup("model-dir"))
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg := config.Load(viper.GetViper())
	logging.Init(logging.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Load the model before touching any data so a broken installation
	// aborts the run up front.
	tag, err := tagger.New(cfg.Tagger.ModelDir)
	if err != nil {
		return err
	}
	defer tag.Close()

	runner := filter.NewRunner(filter.DefaultCascade(), tag)
	writer := output.New(cfg.Output.Dir, cfg.Provenance,
		output.WithChunkSize(cfg.Output.ChunkSize),
		output.WithSingleSentenceMode(cfg.Output.SingleSentence),
	)

	p := pipeline.New(runner, writer)
	res, err := p.Run(cmd.Context(), cfg.Input.Path)
	if err != nil {
		return err
	}

	res.Stats.Report(os.Stdout, cfg.Output.Dir, res.Chunks)
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pixbench/pixbench/bench"
	"github.com/pixbench/pixbench/corpus"
	"github.com/pixbench/pixbench/internal/logging"
)

var (
	flagCorpusDir    string
	flagCorpusCount  int
	flagCorpusWidth  int
	flagCorpusHeight int
	flagCorpusSeed   int64
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Generate a deterministic synthetic image set to benchmark against",
	RunE:  runCorpus,
}

func init() {
	stock := corpus.DefaultSpec()
	corpusCmd.Flags().StringVar(&flagCorpusDir, "dir", bench.DefaultInputDir, "directory to write the corpus into")
	corpusCmd.Flags().IntVar(&flagCorpusCount, "count", stock.Count, "number of images to generate")
	corpusCmd.Flags().IntVar(&flagCorpusWidth, "width", stock.BaseWidth, "base image width in pixels")
	corpusCmd.Flags().IntVar(&flagCorpusHeight, "height", stock.BaseHeight, "base image height in pixels")
	corpusCmd.Flags().Int64Var(&flagCorpusSeed, "seed", stock.Seed, "seed for the noise renders")
	rootCmd.AddCommand(corpusCmd)
}

func runCorpus(cmd *cobra.Command, args []string) error {
	log := logging.New(flagLogLevel, flagLogFormat)

	spec := corpus.Spec{
		Count:      flagCorpusCount,
		BaseWidth:  flagCorpusWidth,
		BaseHeight: flagCorpusHeight,
		Seed:       flagCorpusSeed,
	}
	paths, err := corpus.Generate(flagCorpusDir, spec)
	if err != nil {
		log.Error("corpus generation failed", "dir", flagCorpusDir, "error", err)
		return err
	}

	log.Info("corpus generated", "dir", flagCorpusDir, "images", len(paths))
	return nil
}

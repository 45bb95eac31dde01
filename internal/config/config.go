package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/crimson-sun/utvalg/internal/model"
	"github.com/crimson-sun/utvalg/internal/output"
)

// Config holds all utvalg configuration.
type Config struct {
	Input      InputConfig
	Output     OutputConfig
	Tagger     TaggerConfig
	Provenance model.Provenance
	LogLevel   string
}

// InputConfig identifies the corpus to read.
type InputConfig struct {
	Path string
}

// OutputConfig controls where and how chunks are written.
type OutputConfig struct {
	Dir            string
	ChunkSize      int
	SingleSentence bool
}

// TaggerConfig locates the POS model bundle.
type TaggerConfig struct {
	ModelDir string
}

// SetDefaults registers every configuration default on v. Flag and env
// bindings layer on top of these.
func SetDefaults(v *viper.Viper) {
	prov := model.DefaultProvenance()
	v.SetDefault("output.chunk_size", output.DefaultChunkSize)
	v.SetDefault("output.single_sentences", false)
	v.SetDefault("tagger.model_dir", "models")
	v.SetDefault("provenance.source_url", prov.SourceURL)
	v.SetDefault("provenance.rationale", prov.Rationale)
	v.SetDefault("provenance.domain", prov.Domain)
	v.SetDefault("log.level", "info")
}

// Load materializes a Config from v.
func Load(v *viper.Viper) Config {
	return Config{
		Input: InputConfig{
			Path: v.GetString("input.path"),
		},
		Output: OutputConfig{
			Dir:            v.GetString("output.dir"),
			ChunkSize:      v.GetInt("output.chunk_size"),
			SingleSentence: v.GetBool("output.single_sentences"),
		},
		Tagger: TaggerConfig{
			ModelDir: v.GetString("tagger.model_dir"),
		},
		Provenance: model.Provenance{
			SourceURL: v.GetString("provenance.source_url"),
			Rationale: v.GetString("provenance.rationale"),
			Domain:    v.GetString("provenance.domain"),
		},
		LogLevel: v.GetString("log.level"),
	}
}

// Validate fails fast on configuration an operator must fix before any data
// is read. Every message says what to do about it.
func (c Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("config: no input file given (pass --input with a .tsv corpus)")
	}
	if !strings.HasSuffix(strings.ToLower(c.Input.Path), ".tsv") {
		return fmt.Errorf("config: input %s must be a .tsv file", c.Input.Path)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("config: no output directory given (pass --output-dir)")
	}
	info, err := os.Stat(c.Output.Dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("config: output directory %s does not exist; create it or specify an existing directory", c.Output.Dir)
	}
	if c.Output.ChunkSize <= 0 {
		return fmt.Errorf("config: chunk size must be a positive integer, got %d", c.Output.ChunkSize)
	}
	if c.Tagger.ModelDir == "" {
		return fmt.Errorf("config: no model directory given (pass --model-dir with the POS model bundle)")
	}
	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hh-ranker/internal/engine"
	"github.com/spigell/hh-ranker/internal/logger"
	"github.com/spigell/hh-ranker/internal/records"
	"github.com/spigell/hh-ranker/internal/store"
)

// session is what every ranking command starts from.
type session struct {
	logger *zap.Logger
	config *Config
	memory *store.Memory
	engine *engine.Engine
}

func newSession() *session {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err),
			zap.String("hint", "set the dataset with --data, the 'data' key or "+envPrefix+"_DATA"))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	dataset, err := store.Load(config.Data)
	if err != nil {
		logger.Fatal("loading dataset", zap.Error(err))
	}

	logger.Debug("dataset loaded",
		zap.String("path", config.Data),
		zap.Int("positions", len(dataset.Positions)),
		zap.Int("candidates", len(dataset.Candidates)),
		zap.Int("applications", len(dataset.Applications)),
	)

	memory := store.NewMemory(dataset)

	e, err := engine.New(memory.Stores(), config.Config, logger)
	if err != nil {
		logger.Fatal("creating the engine", zap.Error(err))
	}

	return &session{logger: logger, config: config, memory: memory, engine: e}
}

// modeFlag returns the parsed --mode flag. An unset flag yields an empty mode.
func modeFlag(cmd *cobra.Command) (records.Mode, error) {
	raw, err := cmd.Flags().GetString("mode")
	if err != nil || raw == "" {
		return "", err
	}
	return records.ParseMode(raw)
}

func addModeFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("mode", "m", "", "job or internship (default is the mode of the position)")
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

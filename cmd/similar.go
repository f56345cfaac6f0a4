package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var similarCmd = &cobra.Command{
	Use:   "similar",
	Short: "Find positions similar to the given one",
	Run: func(cmd *cobra.Command, _ []string) {
		similar(cmd)
	},
}

func init() {
	rootCmd.AddCommand(similarCmd)

	similarCmd.Flags().StringP("position", "p", "", "id of the target position")
	similarCmd.Flags().IntP("limit", "l", 0, "number of results (default from limits.similar)")
	addModeFlag(similarCmd)

	similarCmd.MarkFlagRequired("position")
}

func similar(cmd *cobra.Command) {
	ctx := context.Background()
	s := newSession()

	mode, err := modeFlag(cmd)
	if err != nil {
		s.logger.Fatal("parsing mode", zap.Error(err))
	}

	positionID, _ := cmd.Flags().GetString("position")
	limit, _ := cmd.Flags().GetInt("limit")

	results, err := s.engine.SimilarTo(ctx, positionID, mode, limit)
	if err != nil {
		s.logger.Fatal("finding similar positions", zap.Error(err), zap.String("position_id", positionID))
	}

	if err := printJSON(results); err != nil {
		s.logger.Fatal("printing results", zap.Error(err))
	}
}

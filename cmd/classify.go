package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Preview the fit of one candidate for one position",
	Run: func(cmd *cobra.Command, _ []string) {
		classify(cmd)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringP("candidate", "c", "", "id of the candidate")
	classifyCmd.Flags().StringP("position", "p", "", "id of the position")
	addModeFlag(classifyCmd)

	classifyCmd.MarkFlagRequired("candidate")
	classifyCmd.MarkFlagRequired("position")
}

func classify(cmd *cobra.Command) {
	ctx := context.Background()
	s := newSession()

	mode, err := modeFlag(cmd)
	if err != nil {
		s.logger.Fatal("parsing mode", zap.Error(err))
	}

	candidateID, _ := cmd.Flags().GetString("candidate")
	positionID, _ := cmd.Flags().GetString("position")

	result, err := s.engine.ClassifySingle(ctx, candidateID, positionID, mode)
	if err != nil {
		s.logger.Fatal("classifying candidate", zap.Error(err),
			zap.String("candidate_id", candidateID),
			zap.String("position_id", positionID),
		)
	}

	if err := printJSON(result); err != nil {
		s.logger.Fatal("printing results", zap.Error(err))
	}
}

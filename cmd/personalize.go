package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var personalizeCmd = &cobra.Command{
	Use:   "personalize",
	Short: "Rank positions for a candidate based on their application history",
	Run: func(cmd *cobra.Command, _ []string) {
		personalize(cmd)
	},
}

func init() {
	rootCmd.AddCommand(personalizeCmd)

	personalizeCmd.Flags().StringP("candidate", "c", "", "id of the candidate")
	personalizeCmd.Flags().IntP("limit", "l", 0, "number of results (default from limits.personalized)")
	personalizeCmd.Flags().String("method", "", "bayes or knn (default from personalize.method)")
	personalizeCmd.Flags().StringP("mode", "m", "", "job or internship (default is job)")

	personalizeCmd.MarkFlagRequired("candidate")
}

func personalize(cmd *cobra.Command) {
	ctx := context.Background()

	// The method flag overrides the config before the engine is built.
	if method, _ := cmd.Flags().GetString("method"); method != "" {
		viper.Set("personalize.method", method)
	}

	s := newSession()

	mode, err := modeFlag(cmd)
	if err != nil {
		s.logger.Fatal("parsing mode", zap.Error(err))
	}

	candidateID, _ := cmd.Flags().GetString("candidate")
	limit, _ := cmd.Flags().GetInt("limit")

	out, err := s.engine.PersonalizedFor(ctx, candidateID, mode, limit)
	if err != nil {
		s.logger.Fatal("building personalized ranking", zap.Error(err), zap.String("candidate_id", candidateID))
	}

	if err := printJSON(out); err != nil {
		s.logger.Fatal("printing results", zap.Error(err))
	}
}

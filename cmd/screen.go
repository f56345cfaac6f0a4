package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hh-ranker/internal/records"
	"github.com/spigell/hh-ranker/internal/utils"
)

const (
	PromptBack            = "back"
	PromptPositionsToFile = "Dump positions to file"
	titleLabelSize        = 60
)

var errNoSelection = errors.New("no position selected")

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Score and rank every applicant of a position",
	Run: func(cmd *cobra.Command, _ []string) {
		screen(cmd)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringP("position", "p", "", "id of the position (asked interactively when unset)")
	addModeFlag(screenCmd)
}

func screen(cmd *cobra.Command) {
	ctx := context.Background()
	s := newSession()

	mode, err := modeFlag(cmd)
	if err != nil {
		s.logger.Fatal("parsing mode", zap.Error(err))
	}

	positionID, _ := cmd.Flags().GetString("position")
	if positionID == "" {
		positionID, err = choosePosition(ctx, s, mode)
		if errors.Is(err, errNoSelection) {
			s.logger.Info("exiting", zap.String("reason", "no position selected"))
			return
		}
		if err != nil {
			s.logger.Fatal("choosing a position", zap.Error(err))
		}
	}

	screening, err := s.engine.Screen(ctx, positionID, mode)
	if err != nil {
		s.logger.Fatal("screening applicants", zap.Error(err), zap.String("position_id", positionID))
	}

	if err := printJSON(screening); err != nil {
		s.logger.Fatal("printing results", zap.Error(err))
	}
}

// choosePosition asks for one of the positions of the mode, or of any mode when unset.
func choosePosition(ctx context.Context, s *session, mode records.Mode) (string, error) {
	listed, err := s.memory.ListPositions(ctx)
	if err != nil {
		return "", err
	}

	positions := records.NewPositions(listed)
	if mode != "" {
		positions.Keep(func(p *records.Position) bool { return p.Mode() == mode })
	}
	if positions.Len() == 0 {
		return "", errNoSelection
	}

	items := make([]string, 0, positions.Len()+2)
	for _, p := range positions.Items {
		items = append(items, positionLabel(p))
	}

	positionPrompt := promptui.Select{
		Label: "Choose a position and press ENTER",
		Items: append(items, PromptPositionsToFile, PromptBack),
	}

	for {
		_, selected, err := positionPrompt.Run()
		if err != nil {
			return "", err
		}

		switch selected {
		case PromptBack:
			return "", errNoSelection
		case PromptPositionsToFile:
			filename, err := positions.DumpToTmpFile()
			if err != nil {
				return "", fmt.Errorf("dump positions to file: %w", err)
			}
			s.logger.Info("dumping positions to file", zap.String("filename", filename))
		default:
			return strings.Split(selected, " ")[0], nil
		}
	}
}

func positionLabel(p *records.Position) string {
	return fmt.Sprintf("%s %s / %s / %d applications",
		p.ID, utils.TruncateLabel(p.Title, titleLabelSize), p.Mode(), p.Applications,
	)
}

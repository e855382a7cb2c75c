package main

import (
	"github.com/spf13/cobra"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/logger"
)

var (
	emitCount   int
	emitMessage string
)

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Write one record per level, count times",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for i := 0; i < emitCount; i++ {
			for _, level := range core.Levels {
				logger.Log(level, emitMessage)
			}
		}
		logger.Named("simplelog::emit").Infof("emitted %d rounds", emitCount)
		return nil
	},
}

func init() {
	emitCmd.Flags().IntVarP(&emitCount, "count", "n", 1, "number of rounds")
	emitCmd.Flags().StringVarP(&emitMessage, "message", "m", "hello from simplelog", "message text")
}

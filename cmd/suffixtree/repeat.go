package main

import (
	"log/slog"
	"time"

	suffixtree "github.com/arborio/suffixtree"
	"github.com/arborio/suffixtree/cmd/suffixtree/internal/input"
	"github.com/arborio/suffixtree/cmd/suffixtree/internal/output"
	"github.com/spf13/cobra"
)

func newRepeatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repeat <file>",
		Short: "Find the longest tandem repeat in file",
		Args:  cobra.ExactArgs(1),
		RunE:  runRepeat,
	}
}

func runRepeat(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return usageErr(err)
	}
	sentinel, err := sentinelByte(cfg.Sentinel)
	if err != nil {
		return usageErr(err)
	}
	logger := newLogger(cfg.LogLevel)

	text, err := input.ReadRepeat(file)
	if err != nil {
		return ioErr(err)
	}

	start := time.Now()
	tree, err := suffixtree.Build(text, sentinel)
	construction := time.Since(start)
	if err != nil {
		logger.Debug("build",
			slog.String(suffixtree.LoggerOperationKey, "build"),
			slog.Int(suffixtree.LoggerTextLenKey, len(text)+1),
			slog.Duration(suffixtree.LoggerDurationKey, construction),
			slog.Any(suffixtree.LoggerErrorKey, err),
		)
		return coreErr(err)
	}
	logger.Debug("build",
		slog.String(suffixtree.LoggerOperationKey, "build"),
		slog.Int(suffixtree.LoggerTextLenKey, tree.Len()),
		slog.Int(suffixtree.LoggerNodeCountKey, tree.NodeCount()),
		slog.Duration(suffixtree.LoggerDurationKey, construction),
	)

	qStart := time.Now()
	solStart, solLength := tree.LongestTandemRepeat()
	queryTime := time.Since(qStart)
	logger.Debug("repeat",
		slog.String(suffixtree.LoggerOperationKey, "repeat"),
		slog.Int(suffixtree.LoggerStartKey, solStart),
		slog.Int(suffixtree.LoggerLengthKey, solLength),
		slog.Duration(suffixtree.LoggerDurationKey, queryTime),
	)

	w := output.NewWriter(cmd.OutOrStdout(), cfg.JSON)
	if err := w.Repeat(file, solStart, solLength, construction, queryTime); err != nil {
		return ioErr(err)
	}
	return nil
}

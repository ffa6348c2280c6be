package main

import (
	"log/slog"
	"time"

	suffixtree "github.com/arborio/suffixtree"
	"github.com/arborio/suffixtree/cmd/suffixtree/internal/input"
	"github.com/arborio/suffixtree/cmd/suffixtree/internal/output"
	"github.com/spf13/cobra"
)

func newTopKCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topk <file>",
		Short: "Answer a batch of (length, rank) most-frequent-substring queries read from file",
		Args:  cobra.ExactArgs(1),
		RunE:  runTopK,
	}
}

func runTopK(cmd *cobra.Command, args []string) error {
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

	queries, text, err := input.ReadTopK(file)
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

	w := output.NewWriter(cmd.OutOrStdout(), cfg.JSON)
	if err := w.ConstructionOnly("topk", file, construction); err != nil {
		return ioErr(err)
	}

	for _, q := range queries {
		qStart := time.Now()
		solution, err := tree.TopK(q.Length, q.Rank)
		queryTime := time.Since(qStart)
		if err != nil {
			logger.Debug("topk",
				slog.String(suffixtree.LoggerOperationKey, "topk"),
				slog.Int(suffixtree.LoggerLengthKey, q.Length),
				slog.Int(suffixtree.LoggerRankKey, q.Rank),
				slog.Duration(suffixtree.LoggerDurationKey, queryTime),
				slog.Any(suffixtree.LoggerErrorKey, err),
			)
			return coreErr(err)
		}
		logger.Debug("topk",
			slog.String(suffixtree.LoggerOperationKey, "topk"),
			slog.Int(suffixtree.LoggerLengthKey, q.Length),
			slog.Int(suffixtree.LoggerRankKey, q.Rank),
			slog.Int(suffixtree.LoggerStartKey, solution),
			slog.Duration(suffixtree.LoggerDurationKey, queryTime),
		)
		if err := w.Query(file, q.Length, q.Rank, solution, queryTime); err != nil {
			return ioErr(err)
		}
	}

	return nil
}

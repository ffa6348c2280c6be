// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package suffixtree

// Keys for the structured log attributes the reference CLI (cmd/suffixtree)
// emits around calls to Build, TopK and LongestTandemRepeat. The core
// package itself never logs (§5, §9 "profiling as a driver-only concern");
// these constants exist so the driver's log lines stay consistent with the
// field names documented here rather than being repeated as string
// literals at every call site.
const (
	// LoggerOperationKey is the key for the operation name (build, topk,
	// repeat). The associated [slog.Value] is a string.
	LoggerOperationKey = "op"
	// LoggerTextLenKey is the key for the indexed text length, sentinel
	// included. The associated [slog.Value] is an int.
	LoggerTextLenKey = "text_len"
	// LoggerNodeCountKey is the key for the number of nodes allocated in
	// the arena. The associated [slog.Value] is an int.
	LoggerNodeCountKey = "node_count"
	// LoggerDurationKey is the key for the elapsed wall time of the
	// operation. The associated [slog.Value] is a time.Duration.
	LoggerDurationKey = "duration"
	// LoggerLengthKey is the key for a TopK query's requested substring
	// length. The associated [slog.Value] is an int.
	LoggerLengthKey = "length"
	// LoggerRankKey is the key for a TopK query's requested rank. The
	// associated [slog.Value] is an int.
	LoggerRankKey = "rank"
	// LoggerCandidatesKey is the key for the number of distinct candidate
	// substrings found for a TopK query. The associated [slog.Value] is
	// an int.
	LoggerCandidatesKey = "candidates"
	// LoggerStartKey is the key for a query result's start offset into the
	// indexed text. The associated [slog.Value] is an int.
	LoggerStartKey = "start"
	// LoggerErrorKey is the key under which a failed operation's error is
	// logged. The associated [slog.Value] is an error.
	LoggerErrorKey = "err"
)

// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package suffixtree

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (possibly wrapped) by the package. Callers should
// use [errors.Is] rather than comparing values directly, since Build, TopK
// and LongestTandemRepeat wrap these with additional detail.
var (
	// ErrInvalidInput is returned by Build when the text is empty or the
	// chosen sentinel occurs somewhere other than as the final symbol.
	ErrInvalidInput = errors.New("suffixtree: invalid input")
	// ErrOutOfRange is returned by TopK when the requested length ℓ is not
	// in [1, n).
	ErrOutOfRange = errors.New("suffixtree: length out of range")
	// ErrNotFound is returned by TopK when the requested rank k exceeds
	// the number of candidate substrings of the requested length.
	ErrNotFound = errors.New("suffixtree: rank not found")
)

// RangeError reports a TopK query whose requested length fell outside the
// valid range [1, n).
type RangeError struct {
	// Length is the requested substring length ℓ.
	Length int
	// TextLen is the length of the indexed text, sentinel included.
	TextLen int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("suffixtree: length %d out of range [1, %d)", e.Length, e.TextLen)
}

// Unwrap returns the sentinel value [ErrOutOfRange].
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// RankError reports a TopK query whose requested rank exceeded the number
// of distinct length-ℓ candidate substrings.
type RankError struct {
	// Rank is the requested rank k.
	Rank int
	// Candidates is the number of candidates actually found for ℓ.
	Candidates int
}

func (e *RankError) Error() string {
	return fmt.Sprintf("suffixtree: rank %d exceeds %d candidate(s)", e.Rank, e.Candidates)
}

// Unwrap returns the sentinel value [ErrNotFound].
func (e *RankError) Unwrap() error {
	return ErrNotFound
}

func newRangeError(length, textLen int) error {
	return fmt.Errorf("%w: %w", ErrOutOfRange, &RangeError{Length: length, TextLen: textLen})
}

func newRankError(rank, candidates int) error {
	return fmt.Errorf("%w: %w", ErrNotFound, &RankError{Rank: rank, Candidates: candidates})
}

func newInvalidInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}

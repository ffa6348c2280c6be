package suffixtree

import "sort"

// NaiveTopK computes the same result as (*Tree).TopK by brute force over
// the full sentinel-appended buffer buf, without building any tree. It is
// an independent, obviously-correct O(n²·length) reference: a test
// oracle to check the suffix-tree-accelerated TopK against arbitrary
// inputs, including ones property-based tests generate. Production code
// never calls this; only tests do.
func NaiveTopK(buf []byte, length, k int) (int, error) {
	n := len(buf)
	if length < 1 || length >= n {
		return 0, newRangeError(length, n)
	}

	type candidate struct {
		start int
		freq  int
	}

	freq := make(map[string]int)
	var order []string
	for i := 0; i+length <= n; i++ {
		s := string(buf[i : i+length])
		if _, ok := freq[s]; !ok {
			order = append(order, s)
		}
		freq[s]++
	}

	candidates := make([]candidate, 0, len(order))
	for _, s := range order {
		candidates = append(candidates, candidate{start: naiveIndexOf(buf, s), freq: freq[s]})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].freq != candidates[j].freq {
			return candidates[i].freq > candidates[j].freq
		}
		si := buf[candidates[i].start : candidates[i].start+length]
		sj := buf[candidates[j].start : candidates[j].start+length]
		return string(si) < string(sj)
	})

	if k < 1 || k > len(candidates) {
		return 0, newRankError(k, len(candidates))
	}

	return candidates[k-1].start, nil
}

func naiveIndexOf(buf []byte, s string) int {
	for i := 0; i+len(s) <= len(buf); i++ {
		if string(buf[i:i+len(s)]) == s {
			return i
		}
	}
	return -1
}

// NaiveLongestTandemRepeat computes the same result as
// (*Tree).LongestTandemRepeat by brute force: every start position and
// half-length is checked directly against the text. O(n³) worst case,
// used only as a test oracle on small inputs.
func NaiveLongestTandemRepeat(buf []byte) (start, length int) {
	n := len(buf)
	for i := 0; i < n; i++ {
		for d := 1; i+2*d <= n; d++ {
			if string(buf[i:i+d]) == string(buf[i+d:i+2*d]) {
				if 2*d > length {
					length = 2 * d
					start = i
				}
			}
		}
	}
	return start, length
}

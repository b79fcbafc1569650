package schedule

import "strings"

// fuzzyMatchThreshold is the similarity ratio above which two subject
// keys are treated as the same subject. 0.85 was tuned against the
// actual roster data; a single-character typo in a ~14 character name
// scores ~0.93, while genuinely different subjects stay well below.
const fuzzyMatchThreshold = 0.85

// IsFuzzyMatch reports whether two normalized subject keys refer to the
// same subject. A substring either way catches abbreviated names; the
// similarity ratio catches spelling variance.
func IsFuzzyMatch(a, b string) bool {
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return Ratio(a, b) > fuzzyMatchThreshold
}

// Ratio is the classic longest-matching-blocks similarity measure:
// 2*M/T where M is the total number of matched characters over all
// matching blocks and T is the combined length of both strings. Equal
// strings score 1.0, disjoint strings 0.0.
func Ratio(a, b string) float64 {
	if len(a)+len(b) == 0 {
		return 1.0
	}

	// Positions of each byte in b, for the longest-match scan.
	b2j := make(map[byte][]int, len(b))
	for j := 0; j < len(b); j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	matched := 0
	var recurse func(alo, ahi, blo, bhi int)
	recurse = func(alo, ahi, blo, bhi int) {
		i, j, size := longestMatch(a, b2j, alo, ahi, blo, bhi)
		if size == 0 {
			return
		}
		matched += size
		recurse(alo, i, blo, j)
		recurse(i+size, ahi, j+size, bhi)
	}
	recurse(0, len(a), 0, len(b))

	return 2 * float64(matched) / float64(len(a)+len(b))
}

// longestMatch finds the longest block common to a[alo:ahi] and
// b[blo:bhi], preferring the earliest such block.
func longestMatch(a string, b2j map[byte][]int, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}

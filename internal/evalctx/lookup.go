package evalctx

import (
	"sort"
	"strings"

	"github.com/sunholo/lcc/internal/term"
)

// GetConstLocal looks up name only in this frame's own const table,
// without walking Parent (spec §6: get_const_local).
func (c *Context) GetConstLocal(name string) (term.Value, bool) {
	v, ok := c.consts[name]
	return v, ok
}

// RecGetConstObj looks up name in this frame, then recursively in each
// enclosing frame (spec §4.2 step 1, §6: rec_get_const_obj).
func (c *Context) RecGetConstObj(name string) (term.Value, bool) {
	for cur := c; cur != nil; cur = cur.Parent {
		if v, ok := cur.consts[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetSimilarName finds the closest-matching bound name to name across
// this frame and its ancestors, for "did you mean" diagnostics (spec
// §6: get_similar_name). Returns ok == false if nothing is close
// enough (edit distance > half the candidate's length).
func (c *Context) GetSimilarName(name string) (string, bool) {
	best := ""
	bestDist := -1
	for cur := c; cur != nil; cur = cur.Parent {
		names := make([]string, 0, len(cur.consts))
		for n := range cur.consts {
			names = append(names, n)
		}
		sort.Strings(names) // deterministic tie-break
		for _, n := range names {
			d := levenshtein(name, n)
			threshold := (len(n) + 1) / 2
			if d == 0 || d > threshold {
				continue
			}
			if bestDist == -1 || d < bestDist {
				bestDist = d
				best = n
			}
		}
	}
	return best, bestDist != -1
}

func levenshtein(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

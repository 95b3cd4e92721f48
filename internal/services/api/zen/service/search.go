package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"github.com/FFlyyy/bot/internal/services/api/zen/domain"
)

const defaultSearchLimit = 25

var (
	fzfOnce  sync.Once
	slabPool = sync.Pool{New: func() any { return util.MakeSlab(64, 4096) }}
)

// Search ranks corpus lines against a partial query with the fzf v2 matcher
//
// An empty query lists lines in order. Ties keep corpus order.
func (s *Svc) Search(_ context.Context, in domain.SearchInput) ([]domain.Candidate, error) {
	fzfOnce.Do(func() { algo.Init("default") })

	limit := in.Limit
	if limit <= 0 || limit > defaultSearchLimit {
		limit = defaultSearchLimit
	}
	lines := s.corpus.Lines()
	q := strings.ToLower(strings.TrimSpace(in.Query))

	out := make([]domain.Candidate, 0, len(lines))
	if q == "" {
		for i, l := range lines {
			out = append(out, domain.Candidate{Index: i, Line: l})
		}
		return trim(out, limit), nil
	}

	slab := slabPool.Get().(*util.Slab)
	defer slabPool.Put(slab)
	pattern := []rune(q)
	for i, l := range lines {
		chars := util.ToChars([]byte(strings.ToLower(l)))
		res, _ := algo.FuzzyMatchV2(false, true, true, &chars, pattern, false, slab)
		if res.Score > 0 {
			out = append(out, domain.Candidate{Index: i, Line: l, Score: res.Score})
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	return trim(out, limit), nil
}

func trim(c []domain.Candidate, n int) []domain.Candidate {
	if len(c) > n {
		return c[:n]
	}
	return c
}

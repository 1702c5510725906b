package movie

import (
	"MovieList/internal/model"
	"slices"
	"sort"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

const (
	minSimilarity    = 0.6
	similarityMargin = 0.11
	maxSearchResults = 5
)

func newTitleMetric() *metrics.SmithWatermanGotoh {
	swg := metrics.NewSmithWatermanGotoh()
	swg.CaseSensitive = false
	swg.GapPenalty = -0.1
	swg.Substitution = metrics.MatchMismatch{
		Match:    1,
		Mismatch: -0.5,
	}
	return swg
}

// rankByTitle keeps titles similar enough to query. An exact match hides everything
// else; otherwise results trailing the best one by more than the margin are dropped.
func rankByTitle(movies []model.Movie, query string) []model.SearchResult {
	swg := newTitleMetric()

	var results []model.SearchResult
	best := 0.0
	for _, mv := range movies {
		if similarity := strutil.Similarity(query, mv.Name, swg); similarity >= minSimilarity {
			best = max(best, similarity)
			results = append(results, model.SearchResult{Movie: mv, Similarity: similarity})
		}
	}

	if best == 1.0 {
		results = slices.DeleteFunc(results, func(r model.SearchResult) bool {
			return r.Similarity != best
		})
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Similarity > results[j].Similarity
		})
		cut := len(results)
		for i, r := range results {
			if best >= r.Similarity+similarityMargin {
				cut = i
				break
			}
		}
		results = results[:cut]
	}

	return results[:min(maxSearchResults, len(results))]
}

package match

import (
	"math"

	"adeval/internal/adevent"
)

// DPMatcher computes a global alignment (Needleman-Wunsch style) over a
// weighted combination of temporal and textual similarity, producing 1:1
// matches with explicit gap records for skipped events. Time and space are
// O(n*m) for the score table.
type DPMatcher struct {
	opts Options
}

// NewDPMatcher builds a DP matcher from opts, substituting TokenJaccard when
// no text similarity is supplied.
func NewDPMatcher(opts Options) *DPMatcher {
	if opts.TextSimilarity == nil {
		opts.TextSimilarity = TokenJaccard
	}
	return &DPMatcher{opts: opts}
}

// Name implements Matcher.
func (m *DPMatcher) Name() string { return "dp" }

func (m *DPMatcher) timeSimilarity(g, r adevent.Event) float64 {
	if m.opts.TimeSoft {
		dt := math.Abs(g.Start - r.Start)
		return math.Exp(-dt / m.opts.TimeScale)
	}
	return adevent.TemporalIoU(g, r)
}

func (m *DPMatcher) combinedSimilarity(g, r adevent.Event) float64 {
	sTime := m.timeSimilarity(g, r)
	sText := m.opts.TextSimilarity(g.Text, r.Text)
	return m.opts.WTime*sTime + m.opts.WText*sText
}

func (m *DPMatcher) similarityMatrix(gen, ref []adevent.Event) [][]float64 {
	sim := make([][]float64, len(gen))
	for i, g := range gen {
		row := make([]float64, len(ref))
		for j, r := range ref {
			row[j] = m.combinedSimilarity(g, r)
		}
		sim[i] = row
	}
	return sim
}

// Backtracking moves recorded while filling the score table.
const (
	moveDiagonal = iota // consume one generated and one reference event
	moveSkipGen         // consume one generated event (gap)
	moveSkipRef         // consume one reference event (gap)
)

// alignStep is one step of the alignment path. A negative genIdx or refIdx
// marks a gap on that side.
type alignStep struct {
	genIdx int
	refIdx int
	score  float64
}

func (m *DPMatcher) align(sim [][]float64, n, mCols int) []alignStep {
	dp := make([][]float64, n+1)
	bt := make([][]uint8, n+1)
	for i := 0; i <= n; i++ {
		dp[i] = make([]float64, mCols+1)
		bt[i] = make([]uint8, mCols+1)
	}

	for i := 1; i <= n; i++ {
		dp[i][0] = dp[i-1][0] + m.opts.GapPenaltyGen
		bt[i][0] = moveSkipGen
	}
	for j := 1; j <= mCols; j++ {
		dp[0][j] = dp[0][j-1] + m.opts.GapPenaltyRef
		bt[0][j] = moveSkipRef
	}

	// Tie-break order matters for reproducibility: diagonal wins over
	// skip-generated, which wins over skip-reference.
	for i := 1; i <= n; i++ {
		for j := 1; j <= mCols; j++ {
			best := dp[i-1][j-1] + sim[i-1][j-1]
			move := uint8(moveDiagonal)
			if skipGen := dp[i-1][j] + m.opts.GapPenaltyGen; skipGen > best {
				best = skipGen
				move = moveSkipGen
			}
			if skipRef := dp[i][j-1] + m.opts.GapPenaltyRef; skipRef > best {
				best = skipRef
				move = moveSkipRef
			}
			dp[i][j] = best
			bt[i][j] = move
		}
	}

	var path []alignStep
	i, j := n, mCols
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && bt[i][j] == moveDiagonal:
			path = append(path, alignStep{genIdx: i - 1, refIdx: j - 1, score: sim[i-1][j-1]})
			i--
			j--
		case i > 0 && (j == 0 || bt[i][j] == moveSkipGen):
			path = append(path, alignStep{genIdx: i - 1, refIdx: -1, score: m.opts.GapPenaltyGen})
			i--
		default:
			path = append(path, alignStep{genIdx: -1, refIdx: j - 1, score: m.opts.GapPenaltyRef})
			j--
		}
	}

	// Restore chronological order.
	for left, right := 0, len(path)-1; left < right; left, right = left+1, right-1 {
		path[left], path[right] = path[right], path[left]
	}
	return path
}

// Match implements Matcher. Either sequence being empty yields an empty
// result; no degenerate all-gap alignment is computed.
func (m *DPMatcher) Match(gen, ref []adevent.Event) []Record {
	if len(gen) == 0 || len(ref) == 0 {
		return nil
	}

	sim := m.similarityMatrix(gen, ref)
	path := m.align(sim, len(gen), len(ref))

	records := make([]Record, 0, len(path))
	for _, step := range path {
		score := step.score
		switch {
		case step.genIdx >= 0 && step.refIdx >= 0:
			rec := matchedRecord(
				[]adevent.Event{gen[step.genIdx]},
				[]adevent.Event{ref[step.refIdx]},
				TypeDPMatch,
			)
			rec.Score = &score
			records = append(records, rec)
		case step.genIdx >= 0:
			rec := genOnlyRecord(gen[step.genIdx], TypeDPGenGap)
			rec.Score = &score
			records = append(records, rec)
		default:
			rec := refOnlyRecord(ref[step.refIdx], TypeDPRefGap)
			rec.Score = &score
			records = append(records, rec)
		}
	}

	return records
}

package match

import (
	"regexp"

	"github.com/hbollon/go-edlib"
)

// numberRegex extracts sequence numbers from cleaned titles ("2", "1917").
var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// Confidence is how sure a match is.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Candidate is one search result to score.
type Candidate struct {
	ID    int
	Title string
	Year  int // 0 when TMDB has no date
}

// Result is the best candidate and its score. Candidate is zero when
// Confidence is ConfidenceNone.
type Result struct {
	Candidate  Candidate
	Score      float64
	Confidence Confidence
}

// Matched reports whether any candidate reached low confidence.
func (r Result) Matched() bool {
	return r.Confidence != ConfidenceNone
}

// Best scores every candidate against query using Jaro-Winkler similarity on
// cleaned titles, adjusted for sequence numbers and, when year > 0, for the
// release year. Ties keep the earlier candidate, so callers should pass
// results in TMDB's relevance order.
func Best(query string, year int, candidates []Candidate) Result {
	best := Result{Confidence: ConfidenceNone}
	if len(candidates) == 0 {
		return best
	}

	cleanQuery := CleanTitle(query)
	queryNumbers := extractNumbers(cleanQuery)

	found := false
	for _, c := range candidates {
		cleanCandidate := CleanTitle(c.Title)

		score := float64(edlib.JaroWinklerSimilarity(cleanQuery, cleanCandidate))
		score = adjustScoreForNumbers(score, queryNumbers, extractNumbers(cleanCandidate))
		score = adjustScoreForYear(score, year, c.Year)

		if !found || score > best.Score {
			best.Candidate = c
			best.Score = score
			found = true
		}
	}

	best.Confidence = confidenceFor(best.Score)
	if best.Confidence == ConfidenceNone {
		best.Candidate = Candidate{}
	}
	return best
}

func confidenceFor(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

func extractNumbers(title string) []string {
	return numberRegex.FindAllString(title, -1)
}

// adjustScoreForNumbers rewards a shared sequence number and penalizes a
// missing or different one. Titles without numbers are unaffected.
func adjustScoreForNumbers(score float64, queryNums, candidateNums []string) float64 {
	if len(queryNums) == 0 {
		return score
	}
	if len(candidateNums) == 0 {
		return score * 0.85
	}

	candidateSet := make(map[string]bool, len(candidateNums))
	for _, n := range candidateNums {
		candidateSet[n] = true
	}
	for _, n := range queryNums {
		if candidateSet[n] {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}

// adjustScoreForYear rewards an exact year, tolerates one year either way
// (festival vs. theatrical release) and penalizes anything further off.
func adjustScoreForYear(score float64, want, got int) float64 {
	if want <= 0 || got <= 0 {
		return score
	}
	switch diff := want - got; {
	case diff == 0:
		return min(score*1.05, 1.0)
	case diff == 1 || diff == -1:
		return score
	default:
		return score * 0.80
	}
}

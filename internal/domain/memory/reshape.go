// Package memory holds the pure reshaping rules applied to remote memory
// responses before rendering: score tiering, limit clamping, activity
// deduplication, usage percentages and date reduction. No I/O happens here.
package memory

import (
	"math"
	"time"

	"github.com/matiasleandrokruk/membridge/internal/infra/memoryapi"
)

// Match-quality tiers derived from the similarity score.
// Boundaries are inclusive on the lower bound.
const (
	TierStrong  = "strong"
	TierGood    = "good"
	TierPartial = "partial"
	TierWeak    = "weak"
)

const (
	tierStrongMin  = 0.70
	tierGoodMin    = 0.50
	tierPartialMin = 0.35
)

// MatchTier maps a similarity score to its discrete quality tier.
// Total over all float inputs; scores outside [0,1] still land in a tier.
func MatchTier(score float64) string {
	switch {
	case score >= tierStrongMin:
		return TierStrong
	case score >= tierGoodMin:
		return TierGood
	case score >= tierPartialMin:
		return TierPartial
	default:
		return TierWeak
	}
}

// Round3 rounds a score to three decimals for display.
func Round3(score float64) float64 {
	return math.Round(score*1000) / 1000
}

// ClampLimit normalizes a caller-supplied result bound: non-positive values
// fall back to def, values above max are cut to max. Idempotent.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// DedupeActivity removes duplicate activity records by source, keeping the
// first occurrence of each source in order, then truncates to max entries.
func DedupeActivity(records []memoryapi.ActivityRecord, max int) []memoryapi.ActivityRecord {
	seen := make(map[string]bool, len(records))
	out := make([]memoryapi.ActivityRecord, 0, len(records))
	for _, rec := range records {
		if seen[rec.Source] {
			continue
		}
		seen[rec.Source] = true
		out = append(out, rec)
		if len(out) == max {
			break
		}
	}
	return out
}

// UsagePercent computes round(used/limit × 100). A zero limit means the
// account is unmetered; the percentage is defined as 0 in that case.
func UsagePercent(used, limit int64) int {
	if limit == 0 {
		return 0
	}
	return int(math.Round(float64(used) / float64(limit) * 100))
}

// DayPrecision reduces an RFC 3339 timestamp to its calendar day.
// Values that do not parse are passed through untouched; the adapter does
// not validate remote dates.
func DayPrecision(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("2006-01-02")
}

package stats

import (
	"sort"
	"time"

	"backend-sprintlog/internal/run"
	"backend-sprintlog/internal/shared/units"
	"backend-sprintlog/internal/track"

	"gonum.org/v1/gonum/stat"
)

const (
	weeklyBuckets = 4

	// minStabilityCount gates the stability score: fewer runs in a day
	// carry no reliable variance signal, so the score is forced to 0.
	minStabilityCount = 3

	// cvPenalty maps coefficient of variation onto the 0-100 score.
	// CV of 2% scores just above 90, 10% scores 50, 20% floors at 0.
	cvPenalty = 500
)

// DayStats is one calendar day's rollup of runs on a single track.
// Recomputed on every query, never persisted.
type DayStats struct {
	Date           string  `json:"date"`
	AvgSeconds     float64 `json:"avg_seconds"`
	BestSeconds    float64 `json:"best_seconds"`
	AvgSpeedKmh    float64 `json:"avg_speed_kmh"`
	StdDev         float64 `json:"std_dev"`
	Count          int     `json:"count"`
	StabilityScore float64 `json:"stability_score"`
}

// WeekBucket is one Monday-aligned week in the 4-week trend window.
// RecordCount 0 marks an empty bucket; its zero times mean "no data",
// not a zero-second sprint.
type WeekBucket struct {
	Label       string  `json:"label"`
	StartDate   string  `json:"start_date"`
	AvgSeconds  float64 `json:"avg_seconds"`
	BestSeconds float64 `json:"best_seconds"`
	RecordCount int     `json:"record_count"`
}

type Result struct {
	Daily  []DayStats   `json:"daily"`
	Weekly []WeekBucket `json:"weekly"`
}

// ComputeTrackStatistics rolls a flat run log up into per-day statistics
// (most recent day first) and a 4-bucket weekly trend (oldest week first).
// Runs belonging to other tracks are ignored. The input is never mutated
// and the function never fails; an empty log yields an empty daily list
// and four zero-filled weekly placeholders.
func ComputeTrackStatistics(runs []run.Run, t track.Track) Result {
	return compute(runs, t, time.Now().UTC())
}

func compute(all []run.Run, t track.Track, now time.Time) Result {
	matched := make([]run.Run, 0, len(all))
	for _, r := range all {
		if r.TrackID == t.ID {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].RecordedAt.Before(matched[j].RecordedAt)
	})

	return Result{
		Daily:  dailyStats(matched, t),
		Weekly: weeklyTrend(matched, now),
	}
}

// dailyStats partitions runs by their literal date string. A single pass
// builds the groups; key order is first-seen so the map stays explicit
// and testable.
func dailyStats(matched []run.Run, t track.Track) []DayStats {
	groups := make(map[string][]float64)
	var order []string
	for _, r := range matched {
		if _, ok := groups[r.Date]; !ok {
			order = append(order, r.Date)
		}
		groups[r.Date] = append(groups[r.Date], r.Seconds)
	}

	daily := make([]DayStats, 0, len(order))
	for _, date := range order {
		times := groups[date]
		avg := stat.Mean(times, nil)
		best := times[0]
		for _, v := range times {
			if v < best {
				best = v
			}
		}
		sd := 0.0
		if len(times) >= 2 {
			sd = stat.PopStdDev(times, nil)
		}
		daily = append(daily, DayStats{
			Date:           date,
			AvgSeconds:     avg,
			BestSeconds:    best,
			AvgSpeedKmh:    units.SpeedKmh(t.DistanceMeters, avg),
			StdDev:         sd,
			Count:          len(times),
			StabilityScore: stabilityScore(avg, sd, len(times)),
		})
	}

	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date > daily[j].Date
	})
	return daily
}

// stabilityScore penalizes relative spread: 100 minus 500x the
// coefficient of variation, floored at 0. Days with fewer than three
// runs score 0 outright; two identical times are not evidence of
// consistency, just a small sample.
func stabilityScore(avg, sd float64, count int) float64 {
	if count < minStabilityCount {
		return 0
	}
	cv := 0.0
	if avg != 0 {
		cv = sd / avg
	}
	score := 100 - cv*cvPenalty
	if score < 0 {
		return 0
	}
	return score
}

// weeklyTrend buckets runs into the current Monday-aligned week and the
// three before it, oldest first. Always exactly four entries; empty
// buckets come back zero-filled with RecordCount 0.
func weeklyTrend(matched []run.Run, now time.Time) []WeekBucket {
	current := weekStart(now)

	weekly := make([]WeekBucket, 0, weeklyBuckets)
	for i := weeklyBuckets - 1; i >= 0; i-- {
		start := current.AddDate(0, 0, -7*i)
		end := start.AddDate(0, 0, 7)

		bucket := WeekBucket{
			Label:     start.Format("Jan 2"),
			StartDate: start.Format(run.DateLayout),
		}
		if i == 0 {
			bucket.Label = "this week"
		}

		var times []float64
		for _, r := range matched {
			day, err := time.ParseInLocation(run.DateLayout, r.Date, time.UTC)
			if err != nil {
				continue
			}
			if !day.Before(start) && day.Before(end) {
				times = append(times, r.Seconds)
			}
		}
		if len(times) > 0 {
			bucket.AvgSeconds = stat.Mean(times, nil)
			best := times[0]
			for _, v := range times {
				if v < best {
					best = v
				}
			}
			bucket.BestSeconds = best
			bucket.RecordCount = len(times)
		}
		weekly = append(weekly, bucket)
	}
	return weekly
}

// weekStart truncates t to midnight UTC of its Monday.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	sinceMonday := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -sinceMonday)
}

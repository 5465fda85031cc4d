package progress

import (
	"sort"
	"time"
)

const DefaultStreakWindowDays = 30

type day struct {
	y int
	m time.Month
	d int
}

func dayOf(t time.Time, loc *time.Location) day {
	y, m, d := t.In(loc).Date()
	return day{y, m, d}
}

func (d day) time(loc *time.Location) time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, loc)
}

func activeDays(timestamps []time.Time, loc *time.Location) map[day]bool {
	out := make(map[day]bool, len(timestamps))
	for _, ts := range timestamps {
		if ts.IsZero() {
			continue
		}
		out[dayOf(ts, loc)] = true
	}
	return out
}

// CalculateStreak counts consecutive active calendar days ending today in
// now's location. If today has no activity yet the streak may still end
// yesterday. windowDays bounds how far back the walk goes.
func CalculateStreak(timestamps []time.Time, now time.Time, windowDays int) int {
	if windowDays <= 0 {
		windowDays = DefaultStreakWindowDays
	}
	loc := now.Location()
	active := activeDays(timestamps, loc)
	if len(active) == 0 {
		return 0
	}

	cursor := dayOf(now, loc).time(loc)
	if !active[dayOf(cursor, loc)] {
		cursor = cursor.AddDate(0, 0, -1)
		if !active[dayOf(cursor, loc)] {
			return 0
		}
	}

	streak := 0
	for i := 0; i < windowDays; i++ {
		if !active[dayOf(cursor, loc)] {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// CalculateLongestStreak scans unique activity dates in ascending order.
func CalculateLongestStreak(timestamps []time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	active := activeDays(timestamps, loc)
	if len(active) == 0 {
		return 0
	}
	days := make([]time.Time, 0, len(active))
	for d := range active {
		days = append(days, d.time(loc))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"sort"
	"time"
)

const (
	// MaxForecastDays caps the number of day summaries produced from one
	// sample list.
	MaxForecastDays = 7
	// middaySampleHour is the preferred local hour for a day's
	// representative sample.
	middaySampleHour = 12
)

// Day is one local calendar day of the forecast, reduced to a single
// representative sample plus the temperature range across the whole day.
type Day struct {
	// Date is midnight of the local calendar day, in the place's fixed
	// UTC offset.
	Date time.Time
	// Representative is the midday sample when one exists for the day,
	// otherwise the day's earliest sample.
	Representative Sample

	TempMin float64
	TempMax float64
}

// DailySummaries groups forecast samples into local calendar days. Days
// come out in chronological order, at most MaxForecastDays of them, and
// the grouping is deterministic for a given input regardless of sample
// order.
func (f *Forecast) DailySummaries() []Day {
	if len(f.Samples) == 0 {
		return nil
	}

	loc := time.FixedZone("local", int(f.UTCOffset/time.Second))
	byDay := make(map[time.Time]*Day)
	for _, sample := range f.Samples {
		local := sample.At.In(loc)
		date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

		day, ok := byDay[date]
		if !ok {
			day = &Day{
				Date:           date,
				Representative: sample,
				TempMin:        sample.TempMin,
				TempMax:        sample.TempMax,
			}
			byDay[date] = day
		} else {
			if preferSample(sample, day.Representative, loc) {
				day.Representative = sample
			}
			if sample.TempMin < day.TempMin {
				day.TempMin = sample.TempMin
			}
			if sample.TempMax > day.TempMax {
				day.TempMax = sample.TempMax
			}
		}
	}

	days := make([]Day, 0, len(byDay))
	for _, day := range byDay {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	if len(days) > MaxForecastDays {
		days = days[:MaxForecastDays]
	}
	return days
}

// preferSample reports whether candidate should replace current as a
// day's representative. Midday beats everything else; among equals the
// earlier sample wins.
func preferSample(candidate, current Sample, loc *time.Location) bool {
	candidateMidday := candidate.At.In(loc).Hour() == middaySampleHour
	currentMidday := current.At.In(loc).Hour() == middaySampleHour
	if candidateMidday != currentMidday {
		return candidateMidday
	}
	return candidate.At.Before(current.At)
}

// Next24Hours returns the first samples covering roughly the next day on
// a three hour grid, for the short-term outlook strip.
func (f *Forecast) Next24Hours() []Sample {
	const samplesPerDay = 8
	if len(f.Samples) <= samplesPerDay {
		return f.Samples
	}
	return f.Samples[:samplesPerDay]
}

// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package web

import (
	"fmt"
	"time"

	"github.com/vorlif/humanize"
	koLocale "github.com/vorlif/humanize/locale/ko"
	"github.com/vorlif/spreak"
	"golang.org/x/text/language"

	"github.com/seohyun-park/nalssi/internal/service"
)

// iconURLFormat renders an OpenWeatherMap condition icon code.
const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

var weekdayKeys = map[time.Weekday]string{
	time.Monday:    "Monday",
	time.Tuesday:   "Tuesday",
	time.Wednesday: "Wednesday",
	time.Thursday:  "Thursday",
	time.Friday:    "Friday",
	time.Saturday:  "Saturday",
	time.Sunday:    "Sunday",
}

// Presenter turns service snapshots into the JSON view the page scripts
// render. All user-visible strings leave here already localized.
type Presenter struct {
	localizer *spreak.Localizer
	humanizer *humanize.Humanizer
}

func NewPresenter(localizer *spreak.Localizer) (*Presenter, error) {
	collection, err := humanize.New(humanize.WithLocale(koLocale.New()))
	if err != nil {
		return nil, fmt.Errorf("failed to create humanizer: %w", err)
	}
	return &Presenter{
		localizer: localizer,
		humanizer: collection.CreateHumanizer(language.Korean),
	}, nil
}

type LocationView struct {
	Name     string  `json:"name"`
	Country  string  `json:"country,omitempty"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Source   string  `json:"source"`
	Accuracy float64 `json:"accuracy_meters,omitempty"`
	IP       string  `json:"ip,omitempty"`

	// StationDistance is the span in meters between the acquired position
	// and the station the backend actually reported for, when they differ.
	StationDistance float64 `json:"station_distance_meters,omitempty"`
}

type CurrentView struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
	IconURL     string  `json:"icon_url"`
	Comfort     string  `json:"comfort"`
}

type OutlookView struct {
	Hour        string  `json:"hour"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	POP         int     `json:"pop"`
	IconURL     string  `json:"icon_url"`
}

type DayView struct {
	Date        string  `json:"date"`
	Weekday     string  `json:"weekday"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Description string  `json:"description"`
	IconURL     string  `json:"icon_url"`
	POP         int     `json:"pop"`
}

type SnapshotView struct {
	Location LocationView `json:"location"`
	Current  CurrentView  `json:"current"`

	LocalClock string `json:"local_clock"`
	Sunrise    string `json:"sunrise"`
	Sunset     string `json:"sunset"`

	Outlook []OutlookView `json:"outlook"`
	Days    []DayView     `json:"days"`

	Updated string `json:"updated"`

	// Hint carries an optional localized suggestion, e.g. the qualified
	// district forms for an ambiguous search term.
	Hint string `json:"hint,omitempty"`
}

// Snapshot builds the localized view of one lookup result.
func (p *Presenter) Snapshot(snapshot *service.Snapshot) SnapshotView {
	current := snapshot.Current
	loc := time.FixedZone("local", int(current.UTCOffset/time.Second))

	view := SnapshotView{
		Location: LocationView{
			Name:     snapshot.Location.Name,
			Country:  snapshot.Location.Country,
			Lat:      snapshot.Location.Lat,
			Lon:      snapshot.Location.Lon,
			Source:   snapshot.Location.Source,
			Accuracy: snapshot.Location.AccuracyMeters,
			IP:       snapshot.Location.IP,
		},
		Current: CurrentView{
			Temperature: current.Temperature,
			FeelsLike:   current.FeelsLike,
			TempMin:     current.TempMin,
			TempMax:     current.TempMax,
			Humidity:    current.Humidity,
			Pressure:    current.Pressure,
			WindSpeed:   current.WindSpeed,
			Description: current.Description,
			IconURL:     fmt.Sprintf(iconURLFormat, current.Icon),
			Comfort:     p.localizer.Get(snapshot.Comfort),
		},
		LocalClock: p.LocalClock(snapshot.GeneratedAt, current.UTCOffset),
		Updated:    p.humanizer.NaturalTime(snapshot.GeneratedAt),
	}
	if snapshot.Location.Coordinate != current.Coord && current.Coord.Valid() {
		view.Location.StationDistance = snapshot.Location.DistanceTo(current.Coord)
	}
	if !snapshot.Sunrise.IsZero() {
		view.Sunrise = snapshot.Sunrise.In(loc).Format("15:04")
	}
	if !snapshot.Sunset.IsZero() {
		view.Sunset = snapshot.Sunset.In(loc).Format("15:04")
	}

	for _, sample := range snapshot.Outlook {
		view.Outlook = append(view.Outlook, OutlookView{
			Hour:        sample.At.In(loc).Format("15시"),
			Temperature: sample.Temperature,
			FeelsLike:   sample.FeelsLike,
			Humidity:    sample.Humidity,
			POP:         int(sample.POP * 100),
			IconURL:     fmt.Sprintf(iconURLFormat, sample.Icon),
		})
	}
	for _, day := range snapshot.Days {
		view.Days = append(view.Days, DayView{
			Date:        day.Date.Format("1.2"),
			Weekday:     p.localizer.Get(weekdayKeys[day.Date.Weekday()]),
			TempMin:     day.TempMin,
			TempMax:     day.TempMax,
			Description: day.Representative.Description,
			IconURL:     fmt.Sprintf(iconURLFormat, day.Representative.Icon),
			POP:         int(day.Representative.POP * 100),
		})
	}
	return view
}

// LocalClock renders the resolved place's weekday and UTC offset, e.g.
// "월요일, UTC+9" or "화요일, UTC+9:30".
func (p *Presenter) LocalClock(at time.Time, offset time.Duration) string {
	local := at.In(time.FixedZone("local", int(offset/time.Second)))
	weekday := p.localizer.Get(weekdayKeys[local.Weekday()])

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := int(offset / time.Hour)
	minutes := int(offset % time.Hour / time.Minute)
	if minutes > 0 {
		return fmt.Sprintf("%s, UTC%s%d:%02d", weekday, sign, hours, minutes)
	}
	return fmt.Sprintf("%s, UTC%s%d", weekday, sign, hours)
}

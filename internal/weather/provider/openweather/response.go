// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package openweather

import (
	"bytes"
	"fmt"
	"strconv"
)

// statusCode is the API's cod field, which arrives as a JSON number on
// success and as a quoted string on errors.
type statusCode int

func (s *statusCode) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}
	code, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid cod value %q: %w", data, err)
	}
	*s = statusCode(code)
	return nil
}

type conditionData struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type mainData struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type coordData struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type currentResponse struct {
	Cod     statusCode      `json:"cod"`
	Name    string          `json:"name"`
	Dt      int64           `json:"dt"`
	Coord   coordData       `json:"coord"`
	Weather []conditionData `json:"weather"`
	Main    mainData        `json:"main"`
	Wind    struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int64 `json:"timezone"`
}

type forecastResponse struct {
	Cod  statusCode `json:"cod"`
	List []struct {
		Dt      int64           `json:"dt"`
		Main    mainData        `json:"main"`
		Weather []conditionData `json:"weather"`
		Pop     float64         `json:"pop"`
	} `json:"list"`
	City struct {
		Name     string    `json:"name"`
		Coord    coordData `json:"coord"`
		Country  string    `json:"country"`
		Timezone int64     `json:"timezone"`
	} `json:"city"`
}

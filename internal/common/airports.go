package common

import "strings"

// cityToAirport maps common city names, English and Chinese, to their
// primary airport code. Extend as needed.
var cityToAirport = map[string]string{
	// China
	"北京":  "PEK",
	"beijing": "PEK",
	"上海":  "SHA",
	"shanghai": "SHA",
	"广州":  "CAN",
	"guangzhou": "CAN",
	"深圳":  "SZX",
	"shenzhen": "SZX",
	"成都":  "CTU",
	"chengdu": "CTU",
	"杭州":  "HGH",
	"hangzhou": "HGH",
	"武汉":  "WUH",
	"wuhan": "WUH",
	"香港":  "HKG",
	"hong kong": "HKG",
	// International
	"tokyo": "NRT",
	"东京":  "NRT",
	"london": "LHR",
	"伦敦":  "LHR",
	"paris": "CDG",
	"巴黎":  "CDG",
	"new york": "JFK",
	"纽约":  "JFK",
	"los angeles": "LAX",
	"洛杉矶": "LAX",
	"singapore": "SIN",
	"新加坡": "SIN",
	"seoul": "ICN",
	"首尔":  "ICN",
	"sydney": "SYD",
	"悉尼":  "SYD",
}

// airportToCity is the reverse lookup with display-cased city names,
// used to fill the city fields on normalized flights when a provider
// only supplies IATA codes.
var airportToCity = map[string]string{
	"PEK": "Beijing",
	"SHA": "Shanghai",
	"PVG": "Shanghai",
	"CAN": "Guangzhou",
	"SZX": "Shenzhen",
	"CTU": "Chengdu",
	"HGH": "Hangzhou",
	"WUH": "Wuhan",
	"HKG": "Hong Kong",
	"NRT": "Tokyo",
	"HND": "Tokyo",
	"LHR": "London",
	"CDG": "Paris",
	"JFK": "New York",
	"LAX": "Los Angeles",
	"SIN": "Singapore",
	"ICN": "Seoul",
	"SYD": "Sydney",
}

// AirportCodeForCity resolves a user-supplied location to an IATA code.
// Already-valid codes pass through; known city names map to their
// primary airport; anything else falls back to the first three letters
// upper-cased, matching what most booking sites try.
func AirportCodeForCity(location string) string {
	if code := NormalizeAirportCode(location); code != "" {
		return code
	}

	key := strings.ToLower(strings.TrimSpace(location))
	if code, ok := cityToAirport[key]; ok {
		return code
	}

	// Truncate by runes, not bytes, so multibyte names stay valid.
	runes := []rune(strings.ToUpper(strings.TrimSpace(location)))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes)
}

// CityForAirport returns the display city name for an IATA code, or ""
// when the airport is not in the table.
func CityForAirport(code string) string {
	return airportToCity[strings.ToUpper(strings.TrimSpace(code))]
}

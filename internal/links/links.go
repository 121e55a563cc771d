// Package links builds outbound search URLs for places and guide items.
package links

import (
	"fmt"
	"net/url"
)

// FlightSearch returns a Google search URL pre-filled with a flight query for
// the given city.
func FlightSearch(city string) string {
	q := url.QueryEscape(fmt.Sprintf("flights to %s", city))
	return "https://www.google.com/search?q=" + q
}

// MapsSearch returns a Google Maps search URL for an item within a city. All
// reserved characters in the query are percent-encoded so the URL stays valid
// regardless of what the model put in the item name.
func MapsSearch(item, city string) string {
	q := url.QueryEscape(fmt.Sprintf("%s, %s", item, city))
	return "https://www.google.com/maps/search/?api=1&query=" + q
}

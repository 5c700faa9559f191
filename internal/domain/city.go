package domain

// CityModel identifies a city as known to the weather provider. ID is the
// deduplication key everywhere: favorites storage and search result
// identity.
type CityModel struct {
	ID        int
	Name      string
	Region    string
	Country   string
	Latitude  float64
	Longitude float64
	URL       string
}

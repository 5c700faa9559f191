package presentation

// City is the display-ready city shape: search results, favorites, and the
// payload accepted when pinning a favorite.
type City struct {
	ID        int     `json:"id" example:"2618724"`
	Name      string  `json:"name" example:"New York"`
	Region    string  `json:"region" example:"New York"`
	Country   string  `json:"country" example:"United States of America"`
	Latitude  float64 `json:"latitude" example:"40.71"`
	Longitude float64 `json:"longitude" example:"-74.01"`
	URL       string  `json:"url" example:"new-york-new-york-united-states-of-america"`
}

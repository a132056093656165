package domain

type Airport struct {
	ID          int64
	Code        string
	Name        string
	City        string
	Country     string
	Latitude    float64
	Longitude   float64
	Timezone    string
	Description string
}

type Airline struct {
	ID      int64
	Code    string
	Name    string
	Country string
	Logo    string
}

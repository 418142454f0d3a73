package models

// Point is a registered collection point.
type Point struct {
	ID        int64 // zero until persisted
	Name      string
	Email     string
	Whatsapp  string
	Latitude  float64
	Longitude float64
	City      string
	UF        UF
	Image     string // storage reference, resolved to a URL at read time
}

// PointDetail is a point together with the titles of the items it accepts.
type PointDetail struct {
	Point
	ItemTitles []string
}

// NewPoint builds an unsaved Point from validated input.
func NewPoint(in PointInput) *Point {
	return &Point{
		Name:      in.Name,
		Email:     in.Email,
		Whatsapp:  in.Whatsapp,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		City:      in.City,
		UF:        in.UF,
		Image:     in.Image,
	}
}

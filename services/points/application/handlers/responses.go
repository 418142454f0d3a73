package handlers

import (
	"github.com/ghuser/ecopoints/pkg/uploads"
	"github.com/ghuser/ecopoints/services/points/domain/models"
)

// PointResponse is one collection point as returned by the points endpoints.
type PointResponse struct {
	ID        int64   `json:"id"        example:"1"`
	Name      string  `json:"name"      example:"Mercado Verde"`
	Email     string  `json:"email"     example:"contato@mercadoverde.com"`
	Whatsapp  string  `json:"whatsapp"  example:"81999990000"`
	Latitude  float64 `json:"latitude"  example:"-8.0476"`
	Longitude float64 `json:"longitude" example:"-34.877"`
	City      string  `json:"city"      example:"Recife"`
	UF        string  `json:"uf"        example:"PE"`
	Image     string  `json:"image"     example:"a1b2c3d4e5f6-mercado.png"`
	ImageURL  string  `json:"image_url" example:"http://localhost:3333/uploads/a1b2c3d4e5f6-mercado.png"`
} // @name PointResponse

// ItemTitle is one accepted category in a point detail.
type ItemTitle struct {
	Title string `json:"title" example:"Lâmpadas"`
} // @name ItemTitle

// PointDetailResponse is returned by GET /points/{id}.
type PointDetailResponse struct {
	PointResponse
	Items []ItemTitle `json:"items"`
} // @name PointDetailResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"point not found"`
} // @name ErrorResponse

func toPointResponse(p models.Point, images uploads.Resolver) PointResponse {
	return PointResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Whatsapp:  p.Whatsapp,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		City:      p.City,
		UF:        p.UF.String(),
		Image:     p.Image,
		ImageURL:  images.URL(p.Image),
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/ghuser/ecopoints/pkg/errhttp"
	"github.com/ghuser/ecopoints/pkg/httpx"
	"github.com/ghuser/ecopoints/pkg/logger"
	"github.com/ghuser/ecopoints/pkg/uploads"
	pkgvalidator "github.com/ghuser/ecopoints/pkg/validator"
	"github.com/ghuser/ecopoints/services/points/domain/models"
)

// CreatePointRequest is the body of POST /points, either as
// multipart/form-data (with an "image" file part) or as JSON (with "image"
// naming an already stored file). Coordinates accept numbers or strings.
type CreatePointRequest struct {
	Name      string      `json:"name"      validate:"required,max=255"  example:"Mercado Verde"`
	Email     string      `json:"email"     validate:"required,email"    example:"contato@mercadoverde.com"`
	Whatsapp  string      `json:"whatsapp"  validate:"required,number"   example:"81999990000"`
	Latitude  json.Number `json:"latitude"  validate:"required,latitude" example:"-8.0476" swaggertype:"number"`
	Longitude json.Number `json:"longitude" validate:"required,longitude" example:"-34.877" swaggertype:"number"`
	City      string      `json:"city"      validate:"required,max=255"  example:"Recife"`
	UF        string      `json:"uf"        validate:"required,len=2"    example:"PE"`
	Items     string      `json:"items"     validate:"required"          example:"1,2,6"`
	Image     string      `json:"image"                                   example:"a1b2c3d4e5f6-mercado.png"`
} // @name CreatePointRequest

func (req *CreatePointRequest) raw() models.RawPointInput {
	return models.RawPointInput{
		Name:      req.Name,
		Email:     req.Email,
		Whatsapp:  req.Whatsapp,
		Latitude:  req.Latitude.String(),
		Longitude: req.Longitude.String(),
		City:      req.City,
		UF:        req.UF,
		Items:     req.Items,
		Image:     req.Image,
	}
}

// CreatePointResponse is returned on successful registration.
type CreatePointResponse struct {
	PointID int64 `json:"point_id" example:"1"`
	PointResponse
	Items []int64 `json:"items" example:"1,2,6"`
} // @name CreatePointResponse

// PointRegistrar is the registration operation the handler needs.
type PointRegistrar interface {
	Register(ctx context.Context, in models.PointInput) (*models.Point, error)
}

// ImageStore persists uploaded images.
type ImageStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Remove(ref string) error
}

// PostPointHandler handles POST /points.
type PostPointHandler struct {
	registrar PointRegistrar
	store     ImageStore
	images    uploads.Resolver
	maxUpload int64
	log       logger.Logger
}

// NewPostPointHandler returns a PostPointHandler. maxUpload caps multipart bodies.
func NewPostPointHandler(registrar PointRegistrar, store ImageStore, images uploads.Resolver, maxUpload int64, log logger.Logger) *PostPointHandler {
	return &PostPointHandler{registrar: registrar, store: store, images: images, maxUpload: maxUpload, log: log}
}

// Execute registers a new collection point.
//
//	@Summary		Register point
//	@Description	Registers a collection point with its image and accepted item ids (comma-separated)
//	@Tags			points
//	@Accept			multipart/form-data
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreatePointRequest	true	"Point registration request"
//	@Success		200		{object}	CreatePointResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/points [post]
func (h *PostPointHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var (
		req    CreatePointRequest
		stored string
	)

	if isMultipart(r) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
		if err := r.ParseMultipartForm(h.maxUpload); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}
		defer r.MultipartForm.RemoveAll() //nolint:errcheck
		req = formRequest(r.MultipartForm)
		if !pkgvalidator.ValidateStruct(w, &req) {
			return
		}

		file, header, err := r.FormFile("image")
		switch {
		case errors.Is(err, http.ErrMissingFile):
			// ParsePointInput reports the missing image.
		case err != nil:
			httpx.JSONError(w, http.StatusBadRequest, "Invalid image upload")
			return
		default:
			defer file.Close() //nolint:errcheck
			stored, err = h.store.Save(r.Context(), header.Filename, file)
			if err != nil {
				errhttp.WriteError(w, err)
				return
			}
			req.Image = stored
		}
	} else {
		body, ok := pkgvalidator.ValidateRequest[CreatePointRequest](w, r)
		if !ok {
			return
		}
		req = *body
	}

	in, err := models.ParsePointInput(req.raw())
	if err != nil {
		h.discard(r.Context(), stored)
		errhttp.WriteError(w, err)
		return
	}

	p, err := h.registrar.Register(r.Context(), in)
	if err != nil {
		h.discard(r.Context(), stored)
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, CreatePointResponse{
		PointID:       p.ID,
		PointResponse: toPointResponse(*p, h.images),
		Items:         in.ItemIDs.Int64s(),
	})
}

// discard removes an image saved for a registration that did not commit.
func (h *PostPointHandler) discard(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := h.store.Remove(ref); err != nil {
		h.log.WarnContext(ctx, "orphaned upload not removed", "image", ref, "error", err)
	}
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func formRequest(form *multipart.Form) CreatePointRequest {
	get := func(key string) string {
		if vs := form.Value[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}
	return CreatePointRequest{
		Name:      get("name"),
		Email:     get("email"),
		Whatsapp:  get("whatsapp"),
		Latitude:  json.Number(get("latitude")),
		Longitude: json.Number(get("longitude")),
		City:      get("city"),
		UF:        get("uf"),
		Items:     get("items"),
	}
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/ecopoints/pkg/database"
	"github.com/ghuser/ecopoints/pkg/logger"
	"github.com/ghuser/ecopoints/pkg/uploads"
	pointsdomain "github.com/ghuser/ecopoints/services/points/domain"
	"github.com/ghuser/ecopoints/services/points/domain/models"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

var resolver = uploads.NewResolver("http://host:3333/uploads")

type stubRegistrar struct {
	got models.PointInput
	err error
}

func (s *stubRegistrar) Register(_ context.Context, in models.PointInput) (*models.Point, error) {
	s.got = in
	if s.err != nil {
		return nil, s.err
	}
	p := models.NewPoint(in)
	p.ID = 7
	return p, nil
}

type stubFinder struct {
	points []models.Point
	detail *models.PointDetail
	filter models.Filter
	err    error
}

func (s *stubFinder) List(_ context.Context, f models.Filter) ([]models.Point, error) {
	s.filter = f
	return s.points, s.err
}

func (s *stubFinder) Detail(_ context.Context, _ int64) (*models.PointDetail, error) {
	return s.detail, s.err
}

type stubAdmin struct {
	deleted, reset int64
	err            error
}

func (s *stubAdmin) DeletePoint(_ context.Context, id int64) error {
	s.deleted = id
	return s.err
}

func (s *stubAdmin) ResetPointItems(_ context.Context, id int64) error {
	s.reset = id
	return s.err
}

func router(reg PointRegistrar, store ImageStore, finder PointFinder, admin PointAdmin) http.Handler {
	r := chi.NewRouter()
	r.Post("/points", NewPostPointHandler(reg, store, resolver, 1<<20, logger.Nop()).Execute)
	r.Get("/points", NewListPointsHandler(finder, resolver).Execute)
	r.Get("/points/{id}", NewGetPointHandler(finder, resolver).Execute)
	r.Delete("/points/{id}", NewDeletePointHandler(admin).Execute)
	r.Delete("/points/reset/{id}", NewResetPointItemsHandler(admin).Execute)
	return r
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func formFields() map[string]string {
	return map[string]string{
		"name":      "Mercado Verde",
		"email":     "contato@mercadoverde.com",
		"whatsapp":  "81999990000",
		"latitude":  "-8.0476",
		"longitude": "-34.877",
		"city":      "Recife",
		"uf":        "PE",
		"items":     "1,2",
	}
}

func multipartRequest(t *testing.T, fields map[string]string, filename string, image []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", filename)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		_, _ = fw.Write(image)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/points", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func storedFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	return len(entries)
}

func TestPostPoint_Multipart(t *testing.T) {
	store, err := uploads.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("disk store: %v", err)
	}
	reg := &stubRegistrar{}
	rr := httptest.NewRecorder()
	router(reg, store, nil, nil).ServeHTTP(rr, multipartRequest(t, formFields(), "loja.png", pngHeader))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decode[CreatePointResponse](t, rr)
	if resp.PointID != 7 || resp.Name != "Mercado Verde" || resp.UF != "PE" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if !strings.HasSuffix(resp.Image, "-loja.png") {
		t.Errorf("expected stored image reference, got %q", resp.Image)
	}
	if resp.ImageURL != "http://host:3333/uploads/"+resp.Image {
		t.Errorf("unexpected image_url %q", resp.ImageURL)
	}
	if len(resp.Items) != 2 {
		t.Errorf("expected echoed item ids, got %v", resp.Items)
	}
	if reg.got.Latitude != -8.0476 {
		t.Errorf("latitude not parsed: %v", reg.got.Latitude)
	}
	if storedFiles(t, store.Dir()) != 1 {
		t.Error("expected the upload on disk")
	}
}

func TestPostPoint_JSON(t *testing.T) {
	reg := &stubRegistrar{}
	body := `{"name":"Eco","email":"eco@example.com","whatsapp":"81999990000",
		"latitude":-8.05,"longitude":"-34.9","city":"Recife","uf":"pe","items":"3","image":"abc-eco.png"}`
	req := httptest.NewRequest(http.MethodPost, "/points", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router(reg, nil, nil, nil).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if reg.got.UF != "PE" || reg.got.Image != "abc-eco.png" || reg.got.Longitude != -34.9 {
		t.Fatalf("unexpected input %+v", reg.got)
	}
}

func TestPostPoint_Failures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(map[string]string)
		image    []byte
		regErr   error
		want     int
		wantFile int
	}{
		{"missing image", nil, nil, nil, http.StatusBadRequest, 0},
		{"not an image", nil, []byte("plain text"), nil, http.StatusBadRequest, 0},
		{"tag validation", func(f map[string]string) { f["email"] = "nope" }, pngHeader, nil, http.StatusBadRequest, 0},
		{"bad items", func(f map[string]string) { f["items"] = "a,b" }, pngHeader, nil, http.StatusBadRequest, 0},
		{"persistence failure removes upload", nil, pngHeader,
			fmt.Errorf("register point: %w", database.Classify(fmt.Errorf("%w: 99", pointsdomain.ErrUnknownItem))),
			http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := uploads.NewDiskStore(t.TempDir())
			if err != nil {
				t.Fatalf("disk store: %v", err)
			}
			fields := formFields()
			if tt.mutate != nil {
				tt.mutate(fields)
			}
			rr := httptest.NewRecorder()
			router(&stubRegistrar{err: tt.regErr}, store, nil, nil).
				ServeHTTP(rr, multipartRequest(t, fields, "loja.png", tt.image))

			if rr.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rr.Code, rr.Body.String())
			}
			if got := storedFiles(t, store.Dir()); got != tt.wantFile {
				t.Fatalf("expected %d stored files, got %d", tt.wantFile, got)
			}
			body := decode[map[string]any](t, rr)
			if body["error"] == "" || body["error"] == nil {
				t.Error("expected error message")
			}
		})
	}
}

func TestListPoints(t *testing.T) {
	finder := &stubFinder{points: []models.Point{
		{ID: 1, Name: "A", City: "Recife", UF: "PE", Image: "a.png"},
	}}
	rr := httptest.NewRecorder()
	router(nil, nil, finder, nil).ServeHTTP(rr,
		httptest.NewRequest(http.MethodGet, "/points?city=Recife&uf=pe&items=1,%202", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if finder.filter.UF != "PE" || len(finder.filter.ItemIDs) != 2 {
		t.Fatalf("unexpected filter %+v", finder.filter)
	}
	resp := decode[[]PointResponse](t, rr)
	if len(resp) != 1 || resp[0].ImageURL != "http://host:3333/uploads/a.png" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestListPoints_EmptyAndInvalid(t *testing.T) {
	rr := httptest.NewRecorder()
	router(nil, nil, &stubFinder{points: []models.Point{}}, nil).ServeHTTP(rr,
		httptest.NewRequest(http.MethodGet, "/points?city=Natal&uf=RN", http.NoBody))
	if rr.Code != http.StatusOK || strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected 200 [], got %d %q", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	router(nil, nil, &stubFinder{}, nil).ServeHTTP(rr,
		httptest.NewRequest(http.MethodGet, "/points?uf=RN", http.NoBody))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing city, got %d", rr.Code)
	}
}

func TestGetPoint(t *testing.T) {
	finder := &stubFinder{detail: &models.PointDetail{
		Point:      models.Point{ID: 3, Name: "A", UF: "PE", Image: "a.png"},
		ItemTitles: []string{"Lâmpadas", "Óleo de Cozinha"},
	}}
	rr := httptest.NewRecorder()
	router(nil, nil, finder, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/points/3", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	resp := decode[PointDetailResponse](t, rr)
	if resp.ID != 3 || len(resp.Items) != 2 || resp.Items[1].Title != "Óleo de Cozinha" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestGetPoint_EmptyItemsIsArray(t *testing.T) {
	finder := &stubFinder{detail: &models.PointDetail{Point: models.Point{ID: 3}, ItemTitles: []string{}}}
	rr := httptest.NewRecorder()
	router(nil, nil, finder, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/points/3", http.NoBody))
	if !strings.Contains(rr.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", rr.Body.String())
	}
}

func TestGetPoint_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		err  error
		want int
	}{
		{"not found", "/points/9", fmt.Errorf("get point: %w", pointsdomain.ErrPointNotFound), http.StatusNotFound},
		{"bad id", "/points/abc", nil, http.StatusBadRequest},
		{"lookup failed", "/points/9", fmt.Errorf("%w: boom", pointsdomain.ErrAssociationLookupFailed), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router(nil, nil, &stubFinder{err: tt.err}, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))
			if rr.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rr.Code)
			}
		})
	}
}

func TestDeletePoint(t *testing.T) {
	admin := &stubAdmin{}
	rr := httptest.NewRecorder()
	router(nil, nil, nil, admin).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/points/5", http.NoBody))

	if rr.Code != http.StatusOK || admin.deleted != 5 {
		t.Fatalf("expected 200 deleting 5, got %d (%d)", rr.Code, admin.deleted)
	}
	body := decode[map[string]any](t, rr)
	if body["deletedPointWithId"] != float64(5) {
		t.Fatalf("unexpected body %v", body)
	}

	rr = httptest.NewRecorder()
	router(nil, nil, nil, &stubAdmin{err: pointsdomain.ErrPointNotFound}).
		ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/points/5", http.NoBody))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestResetPointItems(t *testing.T) {
	admin := &stubAdmin{}
	rr := httptest.NewRecorder()
	router(nil, nil, nil, admin).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/points/reset/4", http.NoBody))

	if rr.Code != http.StatusOK || admin.reset != 4 || admin.deleted != 0 {
		t.Fatalf("expected reset of 4 only, got %d reset=%d deleted=%d", rr.Code, admin.reset, admin.deleted)
	}
	body := decode[map[string]string](t, rr)
	if body["message"] != "success" {
		t.Fatalf("unexpected body %v", body)
	}
}

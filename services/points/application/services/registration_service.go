package services

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/ecopoints/pkg/logger"
	"github.com/ghuser/ecopoints/services/points/domain/models"
	"github.com/ghuser/ecopoints/services/points/domain/repositories"
	domainsvcs "github.com/ghuser/ecopoints/services/points/domain/services"
)

const instrumentationName = "github.com/ghuser/ecopoints/services/points"

// RegistrationService creates collection points. Event publishing is handled
// by the repository inside the write transaction.
type RegistrationService struct {
	repo       repositories.PointRepository
	log        logger.Logger
	timeout    time.Duration
	tracer     trace.Tracer
	registered metric.Int64Counter
}

// NewRegistrationService returns a RegistrationService using the global
// OpenTelemetry providers.
func NewRegistrationService(repo repositories.PointRepository, log logger.Logger, storeTimeout time.Duration) *RegistrationService {
	counter, err := otel.Meter(instrumentationName).Int64Counter("points.registered",
		metric.WithDescription("Collection points registered"),
		metric.WithUnit("{point}"),
	)
	if err != nil {
		log.Warn("points.registered counter unavailable", "error", err)
		counter = noop.Int64Counter{}
	}
	return &RegistrationService{
		repo:       repo,
		log:        log,
		timeout:    storeTimeout,
		tracer:     otel.Tracer(instrumentationName),
		registered: counter,
	}
}

// Register persists a point and its item associations as one unit and
// returns the stored point with its generated id.
func (s *RegistrationService) Register(ctx context.Context, in models.PointInput) (*models.Point, error) {
	ctx, span := s.tracer.Start(ctx, "points.Register",
		trace.WithAttributes(attribute.Int("points.item_count", len(in.ItemIDs))),
	)
	defer span.End()

	p := models.NewPoint(in)
	if err := domainsvcs.ValidateNewPoint(p, in.ItemIDs); err != nil {
		span.SetStatus(codes.Error, "invalid point")
		return nil, err
	}

	storeCtx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	id, err := s.repo.Create(storeCtx, p, in.ItemIDs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create point failed")
		return nil, fmt.Errorf("register point: %w", err)
	}
	p.ID = id

	span.SetAttributes(attribute.Int64("points.id", id))
	s.registered.Add(ctx, 1, metric.WithAttributes(attribute.String("uf", p.UF.String())))
	s.log.InfoContext(ctx, "point registered", "point_id", id, "city", p.City, "uf", p.UF.String())
	return p, nil
}

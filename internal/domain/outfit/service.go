package outfit

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/outfit-advisor/pkg/errors"
	"github.com/yanqian/outfit-advisor/pkg/metrics"
	"github.com/yanqian/outfit-advisor/pkg/util"
)

const defaultHistoryLimit = 10

// Service exposes the outfit recommendation capabilities.
type Service interface {
	Recommend(ctx context.Context, req Request) (Result, error)
	Recent(ctx context.Context) ([]HistoryRecord, error)
}

// WeatherClient looks up current conditions for a location.
type WeatherClient interface {
	Current(ctx context.Context, loc Location) (WeatherReading, error)
}

// HistoryRepository persists successful recommendations.
type HistoryRepository interface {
	Save(ctx context.Context, record HistoryRecord) error
	Recent(ctx context.Context, limit int) ([]HistoryRecord, error)
}

type service struct {
	cfg       Config
	weather   WeatherClient
	artifacts *Artifacts
	history   HistoryRepository
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// NewService wires up the outfit domain.
func NewService(cfg Config, weather WeatherClient, artifacts *Artifacts, history HistoryRepository, logger *slog.Logger) Service {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	return &service{
		cfg:       cfg,
		weather:   weather,
		artifacts: artifacts,
		history:   history,
		logger:    logger.With("component", "outfit.service"),
		now:       util.NowUTC,
		newID:     uuid.NewString,
	}
}

func (s *service) Recommend(ctx context.Context, req Request) (Result, error) {
	res, err := s.recommend(ctx, req)
	metrics.ObserveRecommendation(outcomeFor(err))
	return res, err
}

func (s *service) recommend(ctx context.Context, req Request) (Result, error) {
	mood := strings.TrimSpace(req.Mood)
	style := strings.TrimSpace(req.Style)
	gender := strings.TrimSpace(req.Gender)
	if mood == "" || style == "" || gender == "" {
		return Result{}, apperrors.Wrap(CodeMissingInput, "Please select mood, style, and gender.", nil)
	}

	loc, err := resolveLocation(req)
	if err != nil {
		return Result{}, err
	}

	reading, err := s.weather.Current(ctx, loc)
	if err != nil {
		s.logger.Warn("weather lookup failed", "location", loc.String(), "error", err)
		return Result{}, apperrors.Wrap(CodeWeatherUnavailable, "Could not fetch weather. Try again.", err)
	}

	category := CategorizeTemperature(reading.Temperature)
	features, err := s.artifacts.EncodeFeatures(mood, gender, style, category)
	if err != nil {
		return Result{}, apperrors.Wrap(CodeUnknownCategory, "Invalid input values", err)
	}

	predicted, err := s.artifacts.PredictOutfit(features)
	if err != nil {
		return Result{}, apperrors.Wrap(CodeModelError, "Could not compute an outfit.", err)
	}

	final := RefineForWeather(predicted, reading.Temperature)
	refined := final != predicted
	if refined {
		metrics.ObserveRefinement(refinementBand(reading.Temperature))
	}
	amazon, flipkart := ShoppingLinks(final)

	s.logger.Info("outfit recommended",
		"location", reading.Location,
		"temperature", reading.Temperature,
		"category", string(category),
		"features", features[:],
		"predicted", predicted,
		"refined", refined,
	)

	res := Result{
		Mood:            mood,
		Style:           style,
		Gender:          gender,
		Location:        reading.Location,
		Temperature:     reading.Temperature,
		Description:     reading.Description,
		Category:        category,
		WeatherTip:      DescribeTemperature(reading.Temperature),
		Outfit:          final,
		PredictedOutfit: predicted,
		Refined:         refined,
		AmazonLink:      amazon,
		FlipkartLink:    flipkart,
	}
	s.record(ctx, res)
	return res, nil
}

func (s *service) Recent(ctx context.Context) ([]HistoryRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Recent(ctx, s.cfg.HistoryLimit)
}

func (s *service) record(ctx context.Context, res Result) {
	if s.history == nil {
		return
	}
	record := HistoryRecord{
		ID:          s.newID(),
		Mood:        res.Mood,
		Gender:      res.Gender,
		Style:       res.Style,
		Location:    res.Location,
		Temperature: res.Temperature,
		Category:    res.Category,
		Outfit:      res.Outfit,
		CreatedAt:   s.now(),
	}
	if err := s.history.Save(ctx, record); err != nil {
		s.logger.Warn("failed to save recommendation history", "id", record.ID, "error", err)
	}
}

// resolveLocation prefers coordinates when both are supplied, then the city.
func resolveLocation(req Request) (Location, error) {
	lat := strings.TrimSpace(req.Lat)
	lon := strings.TrimSpace(req.Lon)
	if lat != "" && lon != "" {
		latVal, latErr := strconv.ParseFloat(lat, 64)
		lonVal, lonErr := strconv.ParseFloat(lon, 64)
		if err := errors.Join(latErr, lonErr); err != nil {
			return Location{}, apperrors.Wrap(CodeMissingInput, "Location coordinates are invalid.", err)
		}
		if latVal < -90 || latVal > 90 || lonVal < -180 || lonVal > 180 {
			return Location{}, apperrors.Wrap(CodeMissingInput, "Location coordinates are invalid.", nil)
		}
		return Location{Coordinates: &Coordinates{Lat: latVal, Lon: lonVal}}, nil
	}
	if city := strings.TrimSpace(req.City); city != "" {
		return Location{City: city}, nil
	}
	return Location{}, apperrors.Wrap(CodeMissingInput, "Please enter a city or enable location.", nil)
}

func outcomeFor(err error) string {
	if err == nil {
		return "success"
	}
	if code := apperrors.CodeOf(err); code != "" {
		return code
	}
	return "internal_error"
}

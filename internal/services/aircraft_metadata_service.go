package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"airease/backend/internal/constants"
	"airease/backend/internal/db/repositories"
	"airease/backend/internal/logging"
	"airease/backend/internal/metrics"
	gormmodels "airease/backend/internal/models/gorm"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const aeroDataBoxHost = "aerodatabox.p.rapidapi.com"

// AircraftMetadata is the normalized shape served for one tail number.
type AircraftMetadata struct {
	Registration     string   `json:"registration"`
	TypeName         string   `json:"typeName"`
	ModelCode        string   `json:"modelCode"`
	ICAOCode         string   `json:"icaoCode,omitempty"`
	AirlineName      string   `json:"airlineName,omitempty"`
	NumEngines       int      `json:"numEngines,omitempty"`
	EngineType       string   `json:"engineType,omitempty"`
	EngineStr        string   `json:"engineStr,omitempty"`
	NumSeats         int      `json:"numSeats,omitempty"`
	AgeYears         *float64 `json:"ageYears,omitempty"`
	AgeLabel         string   `json:"ageLabel,omitempty"`
	BuiltYear        int      `json:"builtYear,omitempty"`
	IsFreighter      bool     `json:"isFreighter"`
	ImageURL         string   `json:"imageUrl,omitempty"`
	ImageAttribution string   `json:"imageAttribution,omitempty"`
	Source           string   `json:"source"`
}

// adbAircraft is the upstream AeroDataBox response shape.
type adbAircraft struct {
	Reg              string   `json:"reg"`
	TypeName         string   `json:"typeName"`
	ModelCode        string   `json:"modelCode"`
	ICAOCode         string   `json:"icaoCode"`
	AirlineName      string   `json:"airlineName"`
	NumEngines       int      `json:"numEngines"`
	EngineType       string   `json:"engineType"`
	NumSeats         int      `json:"numSeats"`
	AgeYears         *float64 `json:"ageYears"`
	RolloutDate      string   `json:"rolloutDate"`
	RegistrationDate string   `json:"registrationDate"`
	IsFreighter      bool     `json:"isFreighter"`
}

type adbImage struct {
	URL              string   `json:"url"`
	Author           string   `json:"author"`
	HTMLAttributions []string `json:"htmlAttributions"`
}

// AircraftMetadataService resolves aircraft details by registration.
// The upstream API's free plan allows one request per second, so every
// response is cached in Postgres for 90 days and misses are cached as
// empty rows so the same unknown tail is not re-queried.
type AircraftMetadataService struct {
	client  *http.Client
	repo    *repositories.MetadataCacheRepository
	limiter *rate.Limiter
	metrics *metrics.MetricsRegistry
	apiKey  string
	baseURL string
}

func NewAircraftMetadataService(repo *repositories.MetadataCacheRepository, reg *metrics.MetricsRegistry) *AircraftMetadataService {
	return &AircraftMetadataService{
		client:  &http.Client{Timeout: 8 * time.Second},
		repo:    repo,
		limiter: rate.NewLimiter(rate.Limit(1), 1),
		metrics: reg,
		apiKey:  os.Getenv("AERODATABOX_RAPIDAPI_KEY"),
		baseURL: "https://" + aeroDataBoxHost,
	}
}

func (s *AircraftMetadataService) lookupOutcome(outcome string) {
	if s.metrics != nil {
		s.metrics.MetadataLookupsTotal.WithLabelValues(outcome).Inc()
	}
}

// Lookup returns metadata for a registration, serving from the DB
// cache when fresh. A nil result with nil error means the aircraft is
// unknown upstream (negative cache).
func (s *AircraftMetadataService) Lookup(ctx context.Context, registration string) (*AircraftMetadata, error) {
	reg := strings.ToUpper(strings.TrimSpace(registration))
	if reg == "" {
		return nil, nil
	}

	maxAge := time.Duration(constants.MetadataCacheTTLDays) * 24 * time.Hour
	if s.repo != nil {
		row, err := s.repo.FindFresh(ctx, reg, maxAge)
		if err != nil {
			logging.Warn("metadata cache read failed", zap.String("registration", reg), zap.Error(err))
		} else if row != nil {
			if row.Data == "" {
				s.lookupOutcome("negative_hit")
				return nil, nil
			}
			var raw adbAircraft
			if err := json.Unmarshal([]byte(row.Data), &raw); err == nil {
				s.lookupOutcome("hit")
				return s.normalize(&raw, row.ImageURL, row.ImageAttribution), nil
			}
		}
	}

	if s.apiKey == "" {
		s.lookupOutcome("error")
		return nil, nil
	}

	if !s.limiter.Allow() {
		s.lookupOutcome("rate_limited")
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	raw, err := s.fetchAircraft(ctx, reg)
	if err != nil {
		s.lookupOutcome("error")
		return nil, err
	}

	var imageURL, imageAttr string
	if raw != nil {
		if img := s.fetchImage(ctx, reg); img != nil {
			imageURL = img.URL
			imageAttr = img.Author
			if len(img.HTMLAttributions) > 0 {
				imageAttr = img.HTMLAttributions[0]
			}
		}
	}

	s.saveCache(ctx, reg, raw, imageURL, imageAttr)

	if raw == nil {
		s.lookupOutcome("fetched")
		return nil, nil
	}

	s.lookupOutcome("fetched")
	return s.normalize(raw, imageURL, imageAttr), nil
}

func (s *AircraftMetadataService) fetchAircraft(ctx context.Context, reg string) (*adbAircraft, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/aircrafts/reg/"+reg, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", s.apiKey)
	req.Header.Set("x-rapidapi-host", aeroDataBoxHost)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Warn("aircraft metadata API returned non-200",
			zap.String("registration", reg), zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	var raw adbAircraft
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

func (s *AircraftMetadataService) fetchImage(ctx context.Context, reg string) *adbImage {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/aircrafts/reg/"+reg+"/image/beta", nil)
	if err != nil {
		return nil
	}
	req.Header.Set("x-rapidapi-key", s.apiKey)
	req.Header.Set("x-rapidapi-host", aeroDataBoxHost)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var img adbImage
	if err := json.NewDecoder(resp.Body).Decode(&img); err != nil {
		return nil
	}
	return &img
}

func (s *AircraftMetadataService) saveCache(ctx context.Context, reg string, raw *adbAircraft, imageURL, imageAttr string) {
	if s.repo == nil {
		return
	}

	data := ""
	if raw != nil {
		if b, err := json.Marshal(raw); err == nil {
			data = string(b)
		}
	}

	err := s.repo.Upsert(ctx, &gormmodels.AircraftMetadataCache{
		Registration:     reg,
		Data:             data,
		ImageURL:         imageURL,
		ImageAttribution: imageAttr,
	})
	if err != nil {
		logging.Warn("metadata cache write failed", zap.String("registration", reg), zap.Error(err))
	}
}

// jetFamilies are aircraft families the upstream sometimes mislabels
// as turboprop or piston.
var jetFamilies = []string{
	"A330", "A340", "A350", "A380",
	"A318", "A319", "A320", "A321",
	"747", "767", "777", "787",
	"737", "757",
	"E170", "E175", "E190", "E195", "ERJ",
	"CRJ", "CS100", "CS300", "A220",
	"MD-80", "MD-90", "MD-11", "DC-10", "DC-9",
	"717", "COMAC", "C919", "ARJ21", "SSJ", "SUKHOI",
}

func validateEngineType(engineType, typeName, modelCode string) string {
	if engineType == "" {
		return engineType
	}
	lower := strings.ToLower(engineType)
	if lower != "turboprop" && lower != "piston" {
		return engineType
	}
	combined := strings.ToUpper(typeName + " " + modelCode)
	for _, family := range jetFamilies {
		if strings.Contains(combined, family) {
			return "Jet"
		}
	}
	return engineType
}

func (s *AircraftMetadataService) normalize(raw *adbAircraft, imageURL, imageAttr string) *AircraftMetadata {
	engineType := validateEngineType(raw.EngineType, raw.TypeName, raw.ModelCode)

	engineStr := engineType
	if engineType != "" && raw.NumEngines > 0 {
		engineStr = fmt.Sprintf("%d× %s", raw.NumEngines, engineType)
	}

	ageLabel := ""
	if raw.AgeYears != nil {
		rounded := float64(int(*raw.AgeYears*10+0.5)) / 10
		switch {
		case rounded < 1:
			ageLabel = "less than 1 year"
		case rounded == 1:
			ageLabel = "1 year old"
		default:
			ageLabel = strconv.FormatFloat(rounded, 'f', -1, 64) + " years old"
		}
	}

	builtYear := 0
	for _, dateField := range []string{raw.RolloutDate, raw.RegistrationDate} {
		if len(dateField) >= 4 {
			if y, err := strconv.Atoi(dateField[:4]); err == nil {
				builtYear = y
				break
			}
		}
	}

	return &AircraftMetadata{
		Registration:     raw.Reg,
		TypeName:         raw.TypeName,
		ModelCode:        raw.ModelCode,
		ICAOCode:         raw.ICAOCode,
		AirlineName:      raw.AirlineName,
		NumEngines:       raw.NumEngines,
		EngineType:       engineType,
		EngineStr:        engineStr,
		NumSeats:         raw.NumSeats,
		AgeYears:         raw.AgeYears,
		AgeLabel:         ageLabel,
		BuiltYear:        builtYear,
		IsFreighter:      raw.IsFreighter,
		ImageURL:         imageURL,
		ImageAttribution: imageAttr,
		Source:           "aerodatabox",
	}
}

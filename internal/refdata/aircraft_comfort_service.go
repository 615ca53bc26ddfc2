package refdata

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"airease/backend/internal/db/repositories"
	"airease/backend/internal/logging"
	gormmodels "airease/backend/internal/models/gorm"

	"go.uber.org/zap"
)

// ComfortSpecs is the resolved cabin hardware for one aircraft model.
type ComfortSpecs struct {
	AircraftModel     string
	SeatWidthEconomy  float64
	SeatPitchEconomy  int
	ReclineEconomy    int
	IFEScreenEconomy  int
	SeatWidthBusiness float64
	SeatPitchBusiness int
	IFEScreenBusiness int
}

// benchmark holds the min/avg/max reference points for one metric.
type benchmark struct {
	min, avg, max float64
}

var economyBenchmarks = map[string]benchmark{
	"seat_width": {16.5, 17.3, 18.5},
	"seat_pitch": {28, 31, 34},
	"recline":    {3, 5, 7},
	"ife_screen": {6, 10, 13},
}

var businessBenchmarks = map[string]benchmark{
	"seat_width": {19, 21, 24},
	"seat_pitch": {36, 60, 80},
	"ife_screen": {12, 16, 24},
}

// modelPatterns extract the distinguishing token from a free-form
// aircraft name, tried in order from most to least specific.
var modelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(787-\d+)`),
	regexp.MustCompile(`(777-\d+\w*)`),
	regexp.MustCompile(`(767-\d+)`),
	regexp.MustCompile(`(747-\d+)`),
	regexp.MustCompile(`(737-\d+)`),
	regexp.MustCompile(`(737\s*max\s*\d+)`),
	regexp.MustCompile(`(a350-\d+)`),
	regexp.MustCompile(`(a330-\d+)`),
	regexp.MustCompile(`(a321\w*)`),
	regexp.MustCompile(`(a320\w*)`),
	regexp.MustCompile(`(a380-\d+)`),
	regexp.MustCompile(`(e\d{3})`),
	regexp.MustCompile(`(crj\d+)`),
}

var abbreviations = [][2]string{
	{"b737", "boeing 737"},
	{"b747", "boeing 747"},
	{"b757", "boeing 757"},
	{"b767", "boeing 767"},
	{"b777", "boeing 777"},
	{"b787", "boeing 787"},
	{"a320", "airbus a320"},
	{"a321", "airbus a321"},
	{"a330", "airbus a330"},
	{"a350", "airbus a350"},
	{"a380", "airbus a380"},
}

// AircraftComfortService resolves free-form aircraft names to cabin
// specs. The table is loaded once; a load failure leaves the service
// in a loaded-but-empty state so requests degrade to defaults instead
// of hammering the database.
type AircraftComfortService struct {
	repo *repositories.AircraftComfortRepository

	loadOnce sync.Once
	mu       sync.RWMutex
	cache    map[string]*ComfortSpecs
}

func NewAircraftComfortService(repo *repositories.AircraftComfortRepository) *AircraftComfortService {
	return &AircraftComfortService{
		repo:  repo,
		cache: make(map[string]*ComfortSpecs),
	}
}

// Load populates the in-memory model index. Safe to call from multiple
// goroutines; only the first call hits the database.
func (s *AircraftComfortService) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		if s.repo == nil {
			return
		}
		rows, err := s.repo.ListAll(ctx)
		if err != nil {
			logging.Warn("aircraft comfort load failed, using defaults", zap.Error(err))
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		for _, row := range rows {
			specs := specsFromRow(row)
			key := strings.ToLower(row.AircraftModel)
			s.cache[key] = specs

			// Index "boeing 787-9" under "787-9" as well.
			if strings.Contains(key, "boeing") || strings.Contains(key, "airbus") {
				short := strings.TrimSpace(strings.NewReplacer("boeing", "", "airbus", "").Replace(key))
				if short != "" {
					s.cache[short] = specs
				}
			}
		}
		logging.Info("aircraft comfort cache loaded", zap.Int("entries", len(s.cache)))
	})
}

// specsFromRow applies the column defaults for NULL-ish values.
func specsFromRow(row gormmodels.AircraftComfort) *ComfortSpecs {
	specs := &ComfortSpecs{
		AircraftModel:     row.AircraftModel,
		SeatWidthEconomy:  row.SeatWidthEconomy,
		SeatPitchEconomy:  row.SeatPitchEconomy,
		ReclineEconomy:    row.ReclineEconomy,
		IFEScreenEconomy:  row.IFEScreenEconomy,
		SeatWidthBusiness: row.SeatWidthBusiness,
		SeatPitchBusiness: row.SeatPitchBusiness,
		IFEScreenBusiness: row.IFEScreenBusiness,
	}
	if specs.SeatWidthEconomy == 0 {
		specs.SeatWidthEconomy = 17.0
	}
	if specs.SeatPitchEconomy == 0 {
		specs.SeatPitchEconomy = 31
	}
	if specs.ReclineEconomy == 0 {
		specs.ReclineEconomy = 5
	}
	if specs.IFEScreenEconomy == 0 {
		specs.IFEScreenEconomy = 9
	}
	if specs.SeatWidthBusiness == 0 {
		specs.SeatWidthBusiness = 21.0
	}
	if specs.SeatPitchBusiness == 0 {
		specs.SeatPitchBusiness = 60
	}
	if specs.IFEScreenBusiness == 0 {
		specs.IFEScreenBusiness = 15
	}
	return specs
}

// NormalizeModel lower-cases and expands manufacturer abbreviations:
// "B787-9" becomes "boeing 787-9".
func NormalizeModel(model string) string {
	normalized := strings.ToLower(strings.TrimSpace(model))
	for _, pair := range abbreviations {
		normalized = strings.ReplaceAll(normalized, pair[0], pair[1])
	}
	return normalized
}

// Lookup resolves an aircraft name through three stages: exact key,
// bidirectional substring, then regex token extraction. Returns nil
// when nothing matches.
func (s *AircraftComfortService) Lookup(model string) *ComfortSpecs {
	if model == "" {
		return nil
	}

	normalized := NormalizeModel(model)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if specs, ok := s.cache[normalized]; ok {
		return specs
	}

	for key, specs := range s.cache {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			return specs
		}
	}

	for _, pattern := range modelPatterns {
		match := pattern.FindStringSubmatch(normalized)
		if match == nil {
			continue
		}
		token := match[1]
		for key, specs := range s.cache {
			if strings.Contains(key, token) || strings.Contains(token, key) {
				return specs
			}
		}
	}

	return nil
}

// IsBusinessCabin reports whether the cabin string maps to the
// business benchmark set. First and premium cabins score against the
// business references.
func IsBusinessCabin(cabin string) bool {
	c := strings.ToLower(cabin)
	return strings.Contains(c, "business") || strings.Contains(c, "first") || strings.Contains(c, "premium")
}

// normalizeScore maps a metric onto the 3-10 band: at or below min
// scores 3.0, at or above max scores 10.0, linear in between.
func normalizeScore(value, min, max float64) float64 {
	if value <= min {
		return 3.0
	}
	if value >= max {
		return 10.0
	}
	return 3.0 + (value-min)/(max-min)*7.0
}

// ComfortInputs are the flight-level facts feeding the comfort score.
type ComfortInputs struct {
	AircraftModel   string
	Cabin           string
	HasWifi         bool
	HasPower        bool
	HasIFE          bool
	LegroomOverride int
}

// ComfortBreakdown explains how a comfort score was built.
type ComfortBreakdown struct {
	DataSource     string
	SeatWidth      float64
	SeatPitch      int
	Recline        int
	IFEScreen      int
	SeatWidthScore float64
	SeatPitchScore float64
	ReclineScore   float64
	IFEScore       float64
	AmenityBonus   float64
}

// Score computes the 0-10 comfort score for a flight. When no specs
// are found all components sit at 5.0, except seat pitch when the
// provider supplied a legroom figure.
func (s *AircraftComfortService) Score(in ComfortInputs) (float64, ComfortBreakdown) {
	specs := s.Lookup(in.AircraftModel)
	isBusiness := IsBusinessCabin(in.Cabin)

	seatWidthScore := 5.0
	seatPitchScore := 5.0
	reclineScore := 5.0
	ifeScore := 5.0

	breakdown := ComfortBreakdown{DataSource: "default"}

	if specs != nil {
		var seatWidth float64
		var seatPitch, recline, ifeScreen int
		benchmarks := economyBenchmarks

		if isBusiness {
			seatWidth = specs.SeatWidthBusiness
			seatPitch = specs.SeatPitchBusiness
			ifeScreen = specs.IFEScreenBusiness
			recline = 15 // lie-flat or cradle, always generous
			benchmarks = businessBenchmarks
		} else {
			seatWidth = specs.SeatWidthEconomy
			seatPitch = specs.SeatPitchEconomy
			recline = specs.ReclineEconomy
			ifeScreen = specs.IFEScreenEconomy
		}

		if in.LegroomOverride > 0 {
			seatPitch = in.LegroomOverride
		}

		breakdown.DataSource = "database"
		breakdown.SeatWidth = seatWidth
		breakdown.SeatPitch = seatPitch
		breakdown.Recline = recline
		breakdown.IFEScreen = ifeScreen

		bw := benchmarks["seat_width"]
		seatWidthScore = normalizeScore(seatWidth, bw.min, bw.max)

		bp := benchmarks["seat_pitch"]
		seatPitchScore = normalizeScore(float64(seatPitch), bp.min, bp.max)

		if isBusiness {
			reclineScore = 9.0
		} else {
			br := economyBenchmarks["recline"]
			reclineScore = normalizeScore(float64(recline), br.min, br.max)
		}

		var bi benchmark
		if isBusiness {
			bi = businessBenchmarks["ife_screen"]
		} else {
			bi = economyBenchmarks["ife_screen"]
		}
		ifeScore = normalizeScore(float64(ifeScreen), bi.min, bi.max)
	} else if in.LegroomOverride > 0 {
		bp := economyBenchmarks["seat_pitch"]
		if isBusiness {
			bp = businessBenchmarks["seat_pitch"]
		}
		seatPitchScore = normalizeScore(float64(in.LegroomOverride), bp.min, bp.max)
		breakdown.SeatPitch = in.LegroomOverride
		breakdown.DataSource = "api_legroom"
	}

	base := seatWidthScore*0.20 + seatPitchScore*0.40 + reclineScore*0.15 + ifeScore*0.25

	bonus := 0.0
	if in.HasWifi {
		bonus += 0.3
	}
	if in.HasPower {
		bonus += 0.2
	}
	if in.HasIFE {
		bonus += 0.2
	}

	final := base + bonus
	if final > 10.0 {
		final = 10.0
	}

	breakdown.SeatWidthScore = seatWidthScore
	breakdown.SeatPitchScore = seatPitchScore
	breakdown.ReclineScore = reclineScore
	breakdown.IFEScore = ifeScore
	breakdown.AmenityBonus = bonus

	return final, breakdown
}

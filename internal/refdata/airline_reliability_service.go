package refdata

import (
	"context"
	"strings"
	"sync"

	"airease/backend/internal/db/repositories"
	"airease/backend/internal/logging"

	"go.uber.org/zap"
)

// ReliabilityBreakdown explains a reliability score.
type ReliabilityBreakdown struct {
	DataSource   string
	OTP          float64
	OftenDelayed bool
	Penalized    bool
}

const unknownOTPScore = 7.0

// AirlineReliabilityService maps airline codes to on-time performance
// and converts OTP into the reliability dimension score. Loaded once
// at startup; unknown carriers get a neutral default.
type AirlineReliabilityService struct {
	repo *repositories.AirlineReliabilityRepository

	loadOnce sync.Once
	mu       sync.RWMutex
	byCode   map[string]float64
}

func NewAirlineReliabilityService(repo *repositories.AirlineReliabilityRepository) *AirlineReliabilityService {
	return &AirlineReliabilityService{
		repo:   repo,
		byCode: make(map[string]float64),
	}
}

// Load populates the OTP table. A failure leaves the table empty so
// every carrier falls back to the neutral score.
func (s *AirlineReliabilityService) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		if s.repo == nil {
			return
		}
		rows, err := s.repo.ListAll(ctx)
		if err != nil {
			logging.Warn("airline reliability load failed, using defaults", zap.Error(err))
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		for _, row := range rows {
			s.byCode[strings.ToUpper(row.Code)] = row.OTP
		}
		logging.Info("airline reliability cache loaded", zap.Int("entries", len(s.byCode)))
	})
}

// OTP returns the on-time percentage for an airline code.
func (s *AirlineReliabilityService) OTP(code string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	otp, ok := s.byCode[strings.ToUpper(code)]
	return otp, ok
}

// Score converts OTP into the 0-10 reliability dimension. oftenDelayed
// marks routes the provider flags as frequently delayed over 30
// minutes; those take a one-point penalty and can never score above 5.
func (s *AirlineReliabilityService) Score(airlineCode string, oftenDelayed bool) (float64, ReliabilityBreakdown) {
	breakdown := ReliabilityBreakdown{DataSource: "default", OftenDelayed: oftenDelayed}

	score := unknownOTPScore
	if otp, ok := s.OTP(airlineCode); ok {
		breakdown.DataSource = "database"
		breakdown.OTP = otp
		score = otpToScore(otp)
	}

	if oftenDelayed {
		breakdown.Penalized = true
		score = score - 1.0
		if score < 2.0 {
			score = 2.0
		}
		if score > 5.0 {
			score = 5.0
		}
	}

	return score, breakdown
}

// otpToScore maps on-time percentage onto 0-10 bands. The curve is
// steeper below 80% so chronically late carriers separate clearly.
func otpToScore(otp float64) float64 {
	switch {
	case otp >= 90:
		return 9.0 + (otp-90)/10
	case otp >= 80:
		return 7.5 + (otp-80)*0.15
	case otp >= 70:
		return 6.0 + (otp-70)*0.15
	case otp >= 60:
		return 4.0 + (otp-60)*0.2
	default:
		s := otp / 15
		if s < 2.0 {
			return 2.0
		}
		return s
	}
}

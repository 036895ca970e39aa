package service

import (
	"math"

	"github.com/rahmadf/hcm-reg3-api/internal/models"
)

// weightClass scales a raw 1-5 aspect score into weighted points.
// A perfect score earns the class cap; anything lower is linear.
type weightClass struct {
	cap        int
	multiplier int
}

func (w weightClass) points(raw int) int {
	if raw == 5 {
		return w.cap
	}
	return raw * w.multiplier
}

var (
	highWeight = weightClass{cap: 20, multiplier: 4}
	lowWeight  = weightClass{cap: 10, multiplier: 2}
)

// aspectScores carries the seven raw scores in canonical order.
type aspectScores struct {
	ServiceOrientation       int
	AchievementOrientation   int
	Teamwork                 int
	ProductKnowledge         int
	OrganizationalCommitment int
	Performance              int
	Initiative               int
}

func (s aspectScores) raws() [7]int {
	return [7]int{
		s.ServiceOrientation,
		s.AchievementOrientation,
		s.Teamwork,
		s.ProductKnowledge,
		s.OrganizationalCommitment,
		s.Performance,
		s.Initiative,
	}
}

// aspectClasses assigns each aspect its weight class, index-aligned
// with aspectScores.raws.
var aspectClasses = [7]weightClass{
	highWeight, // service orientation
	lowWeight,  // achievement orientation
	lowWeight,  // teamwork
	highWeight, // product knowledge
	lowWeight,  // organizational commitment
	highWeight, // performance
	lowWeight,  // initiative
}

// computeScore derives the weighted total, the mean of the raw scores
// rounded to two decimals, and the category label. Valid inputs yield
// totals in [20,100] and averages in [1.00,5.00].
func computeScore(scores aspectScores) (total int, average float64, category string) {
	raws := scores.raws()
	sum := 0
	for i, raw := range raws {
		total += aspectClasses[i].points(raw)
		sum += raw
	}
	average = math.Round(float64(sum)/float64(len(raws))*100) / 100
	return total, average, categoryFor(total)
}

func categoryFor(total int) string {
	switch {
	case total >= 81:
		return models.RatingCategoryGood
	case total >= 61:
		return models.RatingCategoryAdequate
	default:
		return models.RatingCategoryPoor
	}
}

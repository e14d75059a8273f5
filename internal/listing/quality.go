package listing

import "github.com/wheelmarket/wheelmarket/internal/models"

// QualityTier buckets a quality score for the UI.
type QualityTier string

const (
	TierHigh   QualityTier = "high"
	TierMedium QualityTier = "medium"
	TierLow    QualityTier = "low"
)

// Weight caps of the quality score components.
const (
	maxImagePoints       = 30
	maxDescriptionPoints = 20
	maxFeaturePoints     = 15
	maxDocumentPoints    = 15
	maxServicePoints     = 10
	videoPoints          = 5
	certificationPoints  = 5
)

// QualityScore rates how complete a listing is, 0–100. The score is a pure
// weighted sum: the same record always scores the same.
func QualityScore(v models.VehicleRecord) int {
	score := 0

	score += capped(len(v.Images)*6, maxImagePoints)
	score += capped(len(v.Description)/10, maxDescriptionPoints)
	score += capped(len(v.Features)*3, maxFeaturePoints)
	score += capped(len(v.Documents)*5, maxDocumentPoints)
	score += capped(len(v.ServiceRecords)*2, maxServicePoints)

	if v.VideoURL != "" {
		score += videoPoints
	}
	if v.CertificationStatus == "approved" {
		score += certificationPoints
	}

	if score > 100 {
		score = 100
	}
	return score
}

// QualityTierOf maps a score to its display tier: 75 and up is high,
// 50 and up is medium, the rest is low.
func QualityTierOf(score int) QualityTier {
	switch {
	case score >= 75:
		return TierHigh
	case score >= 50:
		return TierMedium
	default:
		return TierLow
	}
}

func capped(points, max int) int {
	if points > max {
		return max
	}
	return points
}

package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/tejavira2023/fitverse/internal/catalog"
	"github.com/tejavira2023/fitverse/internal/models"
)

// ConsultantWithScore is a roster entry plus how well it matches the
// requesting user.
type ConsultantWithScore struct {
	catalog.Consultant
	MatchScore int `json:"match_score"`
}

// RecommendationService ranks the consultant roster against a user's
// goal and fitness level.
type RecommendationService struct{}

func NewRecommendationService() *RecommendationService {
	return &RecommendationService{}
}

func (s *RecommendationService) RecommendedConsultants(
	ctx context.Context,
	profile *models.UserProfile,
	limit int,
) []ConsultantWithScore {
	consultants := catalog.Consultants()

	scored := make([]ConsultantWithScore, 0, len(consultants))
	for _, consultant := range consultants {
		scored = append(scored, ConsultantWithScore{
			Consultant: consultant,
			MatchScore: consultantMatchScore(profile, consultant),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].MatchScore == scored[j].MatchScore {
			return scored[i].Rating > scored[j].Rating
		}
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	return scored
}

func consultantMatchScore(profile *models.UserProfile, consultant catalog.Consultant) int {
	score := 0
	specialty := strings.ToLower(consultant.Specialty)

	for _, keyword := range specialtyKeywords(profile.GoalValue()) {
		if strings.Contains(specialty, keyword) {
			score += 40
			break
		}
	}

	if consultant.Rating > 4.8 {
		score += 20
	}
	if experienceYears(consultant.Experience) >= 10 {
		score += 15
	}
	if profile != nil && profile.FitnessLevel != nil && *profile.FitnessLevel == "beginner" &&
		strings.Contains(specialty, "rehabilitation") {
		score += 10
	}

	return score
}

// specialtyKeywords maps a user goal to lowercased fragments expected in
// a matching consultant's specialty line.
func specialtyKeywords(goal string) []string {
	switch normalizeGoal(goal) {
	case "weight_loss", "figure_management":
		return []string{"nutrition", "weight management"}
	case "weight_gain", "build_muscle":
		return []string{"strength", "conditioning"}
	case "yoga", "improve_flexibility":
		return []string{"yoga"}
	case "meditation", "reduce_stress":
		return []string{"meditation"}
	case "general_fitness":
		return []string{"conditioning", "nutrition"}
	default:
		return nil
	}
}

func normalizeGoal(goal string) string {
	goal = strings.TrimSpace(strings.ToLower(goal))
	goal = strings.ReplaceAll(goal, " ", "_")
	goal = strings.ReplaceAll(goal, "-", "_")
	return goal
}

// experienceYears parses the leading number out of strings like
// "12 years".
func experienceYears(experience string) int {
	fields := strings.Fields(experience)
	if len(fields) == 0 {
		return 0
	}
	years, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return years
}

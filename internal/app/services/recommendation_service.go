package services

import (
	"context"
	"fmt"

	"github.com/jdrincon/acadplan/internal/app/curriculum"
	"github.com/jdrincon/acadplan/internal/app/models"
	"github.com/jdrincon/acadplan/internal/pkg/apperrors"
)

// RecommendationResult packages the engine output with the placement and
// cost context the host renders alongside it.
type RecommendationResult struct {
	Program         *models.Program
	CurrentSemester int
	ApprovedCredits int
	Recommendation  *curriculum.Recommendation
	Cost            curriculum.CostEstimate
}

// RecommendationService orchestrates catalog loading, graph construction and
// the recommendation engine. It is stateless: every call builds a fresh
// graph and approved-set snapshot, and nothing is cached across requests.
type RecommendationService struct {
	catalog CatalogSource
	policy  curriculum.SelectionPolicy
}

// NewRecommendationService creates a new recommendation service instance
func NewRecommendationService(catalog CatalogSource, policy curriculum.SelectionPolicy) *RecommendationService {
	return &RecommendationService{
		catalog: catalog,
		policy:  policy,
	}
}

// Recommend computes the recommended course plan for the next semester.
func (s *RecommendationService) Recommend(ctx context.Context, slug string, approvedCodes []string, cfg models.SemesterConfig) (*RecommendationResult, error) {
	program, graph, err := s.loadGraph(ctx, slug)
	if err != nil {
		return nil, err
	}

	approved, err := approvedSet(graph, approvedCodes)
	if err != nil {
		return nil, err
	}

	approvedCredits := graph.CreditsOf(approved)
	currentSemester := program.SemesterFor(approvedCredits)
	standardCredits := program.StandardCreditsFor(currentSemester)

	recommendation, err := curriculum.Recommend(graph, approved, cfg, standardCredits, s.policy)
	if err != nil {
		return nil, err
	}

	return &RecommendationResult{
		Program:         program,
		CurrentSemester: currentSemester,
		ApprovedCredits: approvedCredits,
		Recommendation:  recommendation,
		Cost:            curriculum.EstimateCost(cfg, recommendation.TotalCredits, standardCredits),
	}, nil
}

// IntersemesterOptions lists the intersemester courses currently open to the
// student, English first.
func (s *RecommendationService) IntersemesterOptions(ctx context.Context, slug string, approvedCodes []string) ([]*models.Course, error) {
	_, graph, err := s.loadGraph(ctx, slug)
	if err != nil {
		return nil, err
	}

	approved, err := approvedSet(graph, approvedCodes)
	if err != nil {
		return nil, err
	}

	return curriculum.IntersemesterOptions(graph, approved), nil
}

// loadGraph loads a program and builds its curriculum graph. A graph is
// built per request; it is read-only afterwards, so concurrent requests
// never contend.
func (s *RecommendationService) loadGraph(ctx context.Context, slug string) (*models.Program, *curriculum.Graph, error) {
	program, err := s.catalog.GetProgram(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	courses, err := s.catalog.GetProgramCourses(ctx, slug)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving courses for %s: %w", slug, err)
	}

	graph, err := curriculum.NewGraph(courses)
	if err != nil {
		return nil, nil, err
	}

	return program, graph, nil
}

// approvedSet validates the approved codes against the catalog and converts
// them to a set. Unknown codes are a caller error, never silently dropped.
func approvedSet(graph *curriculum.Graph, codes []string) (map[string]bool, error) {
	approved := make(map[string]bool, len(codes))
	for _, code := range codes {
		if !graph.Contains(code) {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
				fmt.Sprintf("approved course %q is not in the program catalog", code))
		}
		approved[code] = true
	}
	return approved, nil
}

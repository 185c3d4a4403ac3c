package stats

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Overview assembles the dashboard snapshot. The counts come from separate
// queries over live collections, so they are individually accurate but not
// a single point-in-time cut.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	total, err := s.repo.CountAdmitted(ctx)
	if err != nil {
		return nil, err
	}
	highRisk, err := s.repo.CountAdmittedHighRisk(ctx)
	if err != nil {
		return nil, err
	}
	discharged, err := s.repo.CountDischarged(ctx)
	if err != nil {
		return nil, err
	}
	wards, err := s.repo.WardCounts(ctx)
	if err != nil {
		return nil, err
	}
	if wards == nil {
		wards = []WardCount{}
	}
	vitalSigns, err := s.repo.CountVitalSigns(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalPatients:      total,
		HighRiskPatients:   highRisk,
		DischargedPatients: discharged,
		WardStatistics:     wards,
		RecentVitalSigns:   vitalSigns,
	}, nil
}

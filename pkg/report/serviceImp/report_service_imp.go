package serviceImp

import (
	"time"

	"ecoclub/pkg/dataset"
	"ecoclub/pkg/report"
	"ecoclub/pkg/report/service"
)

type reportSvc struct{ cache *dataset.Cache }

func New(cache *dataset.Cache) service.Service { return &reportSvc{cache: cache} }

func (s *reportSvc) NotificationReport(f report.FilterSpec) (*report.NotificationView, error) {
	snap, err := s.cache.Get()
	if err != nil {
		return nil, err
	}
	rows, sum := report.BuildNotificationReport(snap.Schools, snap.Uploaded, f)
	return &report.NotificationView{Summary: sum, Rows: rows, GeneratedAt: time.Now()}, nil
}

func (s *reportSvc) PlantationReport(f report.FilterSpec) (*report.PlantationView, error) {
	snap, err := s.cache.Get()
	if err != nil {
		return nil, err
	}
	rows, sum := report.BuildPlantationReport(snap.Schools, snap.Saplings, f)
	return &report.PlantationView{Summary: sum, Rows: rows, GeneratedAt: time.Now()}, nil
}

func (s *reportSvc) Summary() (*report.SummaryView, error) {
	snap, err := s.cache.Get()
	if err != nil {
		return nil, err
	}
	districts := report.BuildDistrictSummary(snap.Schools, snap.Uploaded)
	return &report.SummaryView{
		Overall:     report.BuildOverallSummary(snap.Schools, snap.Uploaded, snap.Saplings),
		Districts:   districts,
		Managements: report.BuildManagementSummary(snap.Schools, snap.Uploaded),
		Plantation:  report.BuildPlantationManagementSummary(snap.Schools, snap.Saplings),
		Top:         report.TopDistricts(districts, 10),
		Bottom:      report.BottomDistricts(districts, 10),
		LoadedAt:    snap.LoadedAt,
		Source:      snap.Source,
	}, nil
}

func (s *reportSvc) Districts() ([]string, error) {
	snap, err := s.cache.Get()
	if err != nil {
		return nil, err
	}
	return snap.Districts(), nil
}

func (s *reportSvc) Schools(district string) ([]string, error) {
	snap, err := s.cache.Get()
	if err != nil {
		return nil, err
	}
	return snap.SchoolNames(district), nil
}

func (s *reportSvc) Snapshot() (*dataset.Snapshot, error) { return s.cache.Get() }

func (s *reportSvc) Reload() (*dataset.Snapshot, error) {
	s.cache.Invalidate()
	return s.cache.Get()
}

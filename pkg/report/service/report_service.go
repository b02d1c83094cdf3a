package service

import (
	"ecoclub/pkg/dataset"
	"ecoclub/pkg/report"
)

type Service interface {
	NotificationReport(f report.FilterSpec) (*report.NotificationView, error)
	PlantationReport(f report.FilterSpec) (*report.PlantationView, error)
	Summary() (*report.SummaryView, error)
	Districts() ([]string, error)
	Schools(district string) ([]string, error)
	Snapshot() (*dataset.Snapshot, error)
	Reload() (*dataset.Snapshot, error)
}

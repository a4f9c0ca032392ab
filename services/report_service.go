package services

import (
	"context"

	"github.com/blogworks/blogs-backend/database"
	"github.com/blogworks/blogs-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ReportStore interface {
	InnerJoin(ctx context.Context, req *models.BlogReportRequest) (*database.ReportQuery, error)
	LeftJoin(ctx context.Context, req *models.BlogReportRequest) (*database.ReportQuery, error)
}

// ReportService fronts the join reports. Both operations hand back the
// shaped but unmaterialized query; running it and deciding what an empty
// page means stays with the caller.
type ReportService struct {
	reports ReportStore
	logger  zerolog.Logger
}

func NewReportService(reports ReportStore) ReportService {
	logger := log.With().Str("serviceName", "reportService").Logger()
	return ReportService{reports: reports, logger: logger}
}

func (s ReportService) InnerJoin(ctx context.Context, req *models.BlogReportRequest) (*database.ReportQuery, error) {
	req.SetDefaults()
	query, err := s.reports.InnerJoin(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("inner join report failed")
		return nil, err
	}
	return query, nil
}

func (s ReportService) LeftJoin(ctx context.Context, req *models.BlogReportRequest) (*database.ReportQuery, error) {
	req.SetDefaults()
	query, err := s.reports.LeftJoin(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("left join report failed")
		return nil, err
	}
	return query, nil
}

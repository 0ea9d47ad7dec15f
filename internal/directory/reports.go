package directory

import (
	"errors"
	"time"

	"medreport-assistant/internal/domain/entity"
	"medreport-assistant/internal/storage"

	"github.com/google/uuid"
)

var ErrReportNotFound = errors.New("report not found")

// SaveReport wraps an analysis document with an id, the owner email, and
// the current timestamp, and appends it. Always succeeds.
func (s *Service) SaveReport(email string, analysis entity.AnalysisResult) *entity.SavedReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := entity.SavedReport{
		ID:           uuid.NewString(),
		PatientEmail: email,
		CreatedAt:    s.now(),
		Analysis:     analysis,
	}

	s.reports = append(s.reports, report)
	s.store.Save(storage.KeyReports, s.reports)

	s.log.Infof("Report saved: id=%s", report.ID)
	return &report
}

// ReportsFor lists the saved reports owned by email, newest first.
func (s *Service) ReportsFor(email string) []entity.SavedReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	mine := []entity.SavedReport{}
	for _, report := range s.reports {
		if report.PatientEmail == email {
			mine = append(mine, report)
		}
	}

	return newestFirst(mine, func(r entity.SavedReport) time.Time { return r.CreatedAt })
}

// DeleteReport removes the report with id. Unlike CancelAppointment this
// performs no ownership match, only an existence check; any authenticated
// caller holding a report id can delete it. Kept asymmetric on purpose —
// tightening it is a product decision, not a bug fix.
func (s *Service) DeleteReport(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, report := range s.reports {
		if report.ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			s.store.Save(storage.KeyReports, s.reports)
			s.log.Infof("Report deleted: id=%s", id)
			return nil
		}
	}

	return ErrReportNotFound
}

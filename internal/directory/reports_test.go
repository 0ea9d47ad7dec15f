package directory

import (
	"errors"
	"reflect"
	"testing"

	"medreport-assistant/internal/domain/entity"
)

func sampleAnalysis(summary string) entity.AnalysisResult {
	return entity.AnalysisResult{
		IsMedicalContent: true,
		Summary:          summary,
		Sections: []entity.Section{
			{Title: "What this report covers", Content: "A routine blood panel."},
		},
		Measurements: []entity.Measurement{
			{Item: "Hemoglobin", Value: "13.2", Unit: "g/dL", ReferenceRange: "13.0-17.0", Status: "Normal"},
			{Item: "LDL Cholesterol", Value: "164", Unit: "mg/dL", ReferenceRange: "<130", Status: "High", Notes: "Above the recommended range."},
		},
		Definitions: []entity.Definition{
			{Term: "LDL", Meaning: "Low-density lipoprotein, often called bad cholesterol."},
		},
		Consultation: entity.Consultation{
			SpecialistType: "Cardiologist",
			Reasoning:      "Elevated LDL warrants a cardiovascular risk review.",
			TalkingPoints:  []string{"Ask about diet changes", "Ask whether a statin is appropriate"},
		},
	}
}

func TestSaveReportRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	tick(svc)

	analysis := sampleAnalysis("Mostly normal panel with elevated LDL.")
	saved := svc.SaveReport("a@x.com", analysis)
	if saved.ID == "" || saved.PatientEmail != "a@x.com" || saved.CreatedAt.IsZero() {
		t.Fatalf("SaveReport() = %+v", saved)
	}

	reports := svc.ReportsFor("a@x.com")
	if len(reports) != 1 {
		t.Fatalf("len = %d, want 1", len(reports))
	}
	if !reflect.DeepEqual(reports[0].Analysis, analysis) {
		t.Errorf("round-tripped analysis differs:\ngot  %+v\nwant %+v", reports[0].Analysis, analysis)
	}
}

func TestReportsForFiltersAndOrdersNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	tick(svc)

	first := svc.SaveReport("a@x.com", sampleAnalysis("first"))
	svc.SaveReport("b@x.com", sampleAnalysis("other owner"))
	second := svc.SaveReport("a@x.com", sampleAnalysis("second"))

	reports := svc.ReportsFor("a@x.com")
	if len(reports) != 2 {
		t.Fatalf("len = %d, want 2", len(reports))
	}
	if reports[0].ID != second.ID || reports[1].ID != first.ID {
		t.Errorf("ordering = [%s %s], want newest first", reports[0].ID, reports[1].ID)
	}
	for _, report := range reports {
		if report.PatientEmail != "a@x.com" {
			t.Fatalf("listing leaked report owned by %q", report.PatientEmail)
		}
	}
}

func TestDeleteReport(t *testing.T) {
	svc, _ := newTestService(t)
	tick(svc)

	saved := svc.SaveReport("a@x.com", sampleAnalysis("to delete"))

	if err := svc.DeleteReport("no-such-id"); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("missing id error = %v, want ErrReportNotFound", err)
	}

	// Deletion checks existence only; there is no owner match here.
	if err := svc.DeleteReport(saved.ID); err != nil {
		t.Fatalf("DeleteReport() error = %v", err)
	}

	if got := svc.ReportsFor("a@x.com"); len(got) != 0 {
		t.Fatalf("len = %d after delete, want 0", len(got))
	}

	if err := svc.DeleteReport(saved.ID); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("double delete error = %v, want ErrReportNotFound", err)
	}
}

func TestReportsSurviveRehydration(t *testing.T) {
	svc, store := newTestService(t)
	tick(svc)

	analysis := sampleAnalysis("persisted")
	svc.SaveReport("a@x.com", analysis)

	second := NewService(store, testLogger())
	reports := second.ReportsFor("a@x.com")
	if len(reports) != 1 {
		t.Fatalf("len = %d after rehydration, want 1", len(reports))
	}
	if !reflect.DeepEqual(reports[0].Analysis, analysis) {
		t.Error("rehydrated analysis differs from the saved one")
	}
}

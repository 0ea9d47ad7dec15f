package entity

// AnalysisResult is the structured document produced by the interpretation
// model for one uploaded report image. Immutable once produced; its only
// lifecycle is the save/delete of a containing SavedReport.
type AnalysisResult struct {
	// IsMedicalContent gates whether the document renders as a full
	// report or a rejection notice downstream.
	IsMedicalContent bool          `json:"isMedicalContent"`
	Summary          string        `json:"summary"`
	Sections         []Section     `json:"sections"`
	Measurements     []Measurement `json:"measurements"`
	Definitions      []Definition  `json:"definitions"`
	Consultation     Consultation  `json:"consultation"`
}

// Section is a free-text block of the interpretation.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Measurement is one extracted result row from the report.
type Measurement struct {
	Item           string `json:"item"`
	Value          string `json:"value"`
	Unit           string `json:"unit"`
	ReferenceRange string `json:"referenceRange"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
}

// Definition explains a medical term appearing in the report.
type Definition struct {
	Term    string `json:"term"`
	Meaning string `json:"meaning"`
}

// Consultation is the model's specialist recommendation.
type Consultation struct {
	SpecialistType string   `json:"specialistType"`
	Reasoning      string   `json:"reasoning"`
	TalkingPoints  []string `json:"talkingPoints"`
}

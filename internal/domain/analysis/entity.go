package analysis

import (
	"time"
)

// AnalysisID identifies one Analysis
type AnalysisID string

// AssetType enum
type AssetType string

const (
	AssetVehicle    AssetType = "vehicle"
	AssetFurniture  AssetType = "furniture"
	AssetRealEstate AssetType = "real_estate"
	AssetOther      AssetType = "other"
)

// Quality enum, only steers the price estimate
type Quality string

const (
	QualityPremium Quality = "premium"
	QualityMedium  Quality = "medium"
	QualityEconomy Quality = "economy"
)

// AssetInfo is user-supplied metadata that steers the price-estimation
// prompt. It is consumed by one analyze request and never persisted.
type AssetInfo struct {
	AssetType AssetType `json:"assetType,omitempty"`
	Brand     string    `json:"brand,omitempty"`
	Model     string    `json:"model,omitempty"`
	Year      string    `json:"year,omitempty"`
	Quality   Quality   `json:"quality,omitempty"`
}

// Severity enum
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

// Valid reports whether s is one of the three accepted severity values.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityModerate, SeverityHigh:
		return true
	}
	return false
}

// UploadedImage lives only for the duration of one analyze request.
// The raw bytes are sent to the vision model and then discarded.
type UploadedImage struct {
	Data     []byte
	MimeType string
	Filename string
}

// DamageItem is produced by the reasoning stage. Price fields are opaque
// display strings (possibly ranges like "45.000-60.000 KZ"); no arithmetic
// happens on them until the export summary.
type DamageItem struct {
	ItemName        string   `json:"itemName"`
	ItemType        string   `json:"itemType,omitempty"`
	Severity        Severity `json:"severity"`
	Description     string   `json:"description"`
	EstimatedImpact string   `json:"estimatedImpact,omitempty"`
	PriceNew        string   `json:"priceNew,omitempty"`
	PriceUsed       string   `json:"priceUsed,omitempty"`
	RepairCost      string   `json:"repairCost,omitempty"`
}

// SeverityCounts value object. Low+Moderate+High == len(DamageItems).
type SeverityCounts struct {
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	High     int `json:"high"`
}

// Aggregate Root: Analysis. Created once after the pipeline fully succeeds,
// read-only afterwards, deleted explicitly by id.
type Analysis struct {
	ID              AnalysisID     `json:"id"`
	Timestamp       time.Time      `json:"timestamp"`
	Summary         string         `json:"summary"`
	TotalItems      int            `json:"totalItems"`
	SeverityCounts  SeverityCounts `json:"severityCounts"`
	DamageItems     []DamageItem   `json:"damageItems"`
	OverallSeverity Severity       `json:"overallSeverity"`
	Description     string         `json:"description,omitempty"`
	ArtifactURL     string         `json:"artifactUrl,omitempty"`
}

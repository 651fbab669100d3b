package models

// StatusStats counts records per lifecycle status
type StatusStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// ChartPoint is a single point of a stat card sparkline
type ChartPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// StatCharts holds the sparkline data of the list view stat cards
type StatCharts struct {
	Total    []ChartPoint `json:"total"`
	Active   []ChartPoint `json:"active"`
	Inactive []ChartPoint `json:"inactive"`
}

// MonthCount is the number of records created in a month
type MonthCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// BrandListResponse is the brand list view payload
type BrandListResponse struct {
	Brands []*Brand    `json:"brands"`
	Stats  StatusStats `json:"stats"`
	Charts StatCharts  `json:"charts"`
}

// CampaignListResponse is the campaign list view payload
type CampaignListResponse struct {
	Campaigns []*Campaign `json:"campaigns"`
	Stats     StatusStats `json:"stats"`
	Charts    StatCharts  `json:"charts"`
}

// DashboardStats aggregates brand and campaign activity
type DashboardStats struct {
	Brands            StatusStats  `json:"brands"`
	Campaigns         StatusStats  `json:"campaigns"`
	BrandsByMonth     []MonthCount `json:"brandsByMonth"`
	CampaignsByMonth  []MonthCount `json:"campaignsByMonth"`
	PendingBrandLinks int64        `json:"pendingBrandLinks"`
}

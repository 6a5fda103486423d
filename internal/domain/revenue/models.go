package revenue

import "time"

// FeeSource identifies where a fee event was collected.
type FeeSource string

const (
	SourceCardInterchange FeeSource = "card_interchange"
	SourceBridge          FeeSource = "bridge"
	SourceFastWithdraw    FeeSource = "fast_withdraw"
	SourceExchange        FeeSource = "exchange"
	SourceOnRamp          FeeSource = "on_ramp"
)

// FeeEvent is a single collected fee, stored at collection time.
type FeeEvent struct {
	ID        string
	UserID    string
	Source    FeeSource
	AmountUSD float64
	CreatedAt time.Time
}

// Summary aggregates revenue over a period.
type Summary struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	TotalUSD      float64         `json:"totalUsd"`
	EventCount    int             `json:"eventCount"`
	UniqueUsers   int             `json:"uniqueUsers"`
	AvgPerUserUSD float64         `json:"avgPerUserUsd"`
	BySource      []SourceRevenue `json:"bySource"`
}

// SourceRevenue is the contribution of a single fee source to a summary.
type SourceRevenue struct {
	Source   FeeSource `json:"source"`
	TotalUSD float64   `json:"totalUsd"`
	Count    int       `json:"count"`
	Share    float64   `json:"share"`
}

// DailyFlow is one day of revenue, used for the dashboard chart.
type DailyFlow struct {
	Day      time.Time `json:"day"`
	TotalUSD float64   `json:"totalUsd"`
	Count    int       `json:"count"`
}

// ExecutiveSummary condenses the period into headline figures.
type ExecutiveSummary struct {
	Period           string  `json:"period"`
	TotalUSD         float64 `json:"totalUsd"`
	PreviousTotalUSD float64 `json:"previousTotalUsd"`
	GrowthPercent    float64 `json:"growthPercent"`
	TopSource        string  `json:"topSource"`
	TopSourceUSD     float64 `json:"topSourceUsd"`
	UniqueUsers      int     `json:"uniqueUsers"`
}

// Range bounds a revenue query. Zero values mean unbounded.
type Range struct {
	From time.Time
	To   time.Time
}

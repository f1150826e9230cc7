package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TimerModel mirrors the 'timers' table. Styling, urgency settings and targeting
// lists are stored as JSONB documents.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type TimerModel struct {
	ID                  uuid.UUID                               `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShopID              string                                  `gorm:"type:varchar(255);not null;index:idx_timers_shop_created,priority:1"`
	Title               string                                  `gorm:"type:varchar(255);not null"`
	StartTime           *time.Time
	EndTime             *time.Time                              `gorm:"index"`
	Duration            *int
	Loop                bool                                    `gorm:"not null"`
	HideAfterCompletion bool                                    `gorm:"not null"`
	BeforeMessage       *string                                 `gorm:"type:text"`
	AfterMessage        *string                                 `gorm:"type:text"`
	Style               datatypes.JSONType[TimerStyleData]      `gorm:"type:jsonb;not null"`
	UrgencySettings     datatypes.JSONType[UrgencySettingsData] `gorm:"type:jsonb;not null"`
	ProductIDs          datatypes.JSONSlice[string]             `gorm:"type:jsonb;not null"`
	CollectionIDs       datatypes.JSONSlice[string]             `gorm:"type:jsonb;not null"`
	// No column default: GORM skips zero values on insert, so a default of true
	// would turn every inactive timer active.
	Active    bool           `gorm:"not null;index"`
	CreatedAt time.Time      `gorm:"index:idx_timers_shop_created,priority:2,sort:desc"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TimerModel) TableName() string {
	return "timers"
}

// TimerStyleData is the JSONB document stored in timers.style.
type TimerStyleData struct {
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	FontFamily      string `json:"fontFamily"`
	FontSize        int    `json:"fontSize"`
	BorderRadius    int    `json:"borderRadius"`
	Padding         int    `json:"padding"`
}

// UrgencySettingsData is the JSONB document stored in timers.urgency_settings.
type UrgencySettingsData struct {
	Enabled        bool   `json:"enabled"`
	TriggerMinutes int    `json:"triggerMinutes"`
	PulseColor     string `json:"pulseColor"`
	ShowBanner     bool   `json:"showBanner"`
	BannerMessage  string `json:"bannerMessage"`
}

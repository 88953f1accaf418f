// Package settings holds user preferences and their JSON export/import.
// The exported file is the only artifact the application writes.
package settings

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"bridgeswap/pkg/errors"
)

// DefaultExportFile is the filename offered for settings export.
const DefaultExportFile = "bridgeless-swap-settings.json"

// Notifications groups the per-event notification toggles.
type Notifications struct {
	SwapComplete  bool `json:"swapComplete"`
	PriceAlerts   bool `json:"priceAlerts"`
	SystemUpdates bool `json:"systemUpdates"`
	Marketing     bool `json:"marketing"`
}

// Settings is the full user preference set. Field names in JSON match
// the export file format.
type Settings struct {
	Language          string        `json:"language" validate:"required"`
	Currency          string        `json:"currency" validate:"required"`
	Notifications     Notifications `json:"notifications"`
	SoundEnabled      bool          `json:"soundEnabled"`
	SlippageTolerance float64       `json:"slippageTolerance" validate:"gte=0,lte=50"`
	GasPrice          string        `json:"gasPrice" validate:"oneof=slow standard fast"`
	AutoApprove       bool          `json:"autoApprove"`
	ExpertMode        bool          `json:"expertMode"`
	ShowWarnings      bool          `json:"showWarnings"`
	Theme             string        `json:"theme" validate:"oneof=dark light"`
}

// Default returns the settings a fresh session starts with.
func Default() Settings {
	return Settings{
		Language: "en",
		Currency: "USD",
		Notifications: Notifications{
			SwapComplete:  true,
			PriceAlerts:   true,
			SystemUpdates: true,
			Marketing:     false,
		},
		SoundEnabled:      true,
		SlippageTolerance: 0.5,
		GasPrice:          "standard",
		AutoApprove:       false,
		ExpertMode:        false,
		ShowWarnings:      true,
		Theme:             "dark",
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(errors.KindImportFormat, "invalid settings values", err)
	}
	return nil
}

// merge is the pointer shadow of Settings used to tell absent fields
// from zero values during import.
type merge struct {
	Language          *string  `json:"language"`
	Currency          *string  `json:"currency"`
	Notifications     *mergeNotifications `json:"notifications"`
	SoundEnabled      *bool    `json:"soundEnabled"`
	SlippageTolerance *float64 `json:"slippageTolerance"`
	GasPrice          *string  `json:"gasPrice"`
	AutoApprove       *bool    `json:"autoApprove"`
	ExpertMode        *bool    `json:"expertMode"`
	ShowWarnings      *bool    `json:"showWarnings"`
	Theme             *string  `json:"theme"`
}

type mergeNotifications struct {
	SwapComplete  *bool `json:"swapComplete"`
	PriceAlerts   *bool `json:"priceAlerts"`
	SystemUpdates *bool `json:"systemUpdates"`
	Marketing     *bool `json:"marketing"`
}

// Merge applies the known keys present in data onto base and returns
// the result. Unknown keys are ignored, absent keys keep their base
// value, and malformed JSON returns an ImportFormat error with base
// unchanged.
func Merge(base Settings, data []byte) (Settings, error) {
	var m merge
	if err := json.Unmarshal(data, &m); err != nil {
		return base, errors.Wrap(errors.KindImportFormat, "settings file is not valid JSON", err)
	}

	out := base
	if m.Language != nil {
		out.Language = *m.Language
	}
	if m.Currency != nil {
		out.Currency = *m.Currency
	}
	if m.Notifications != nil {
		if m.Notifications.SwapComplete != nil {
			out.Notifications.SwapComplete = *m.Notifications.SwapComplete
		}
		if m.Notifications.PriceAlerts != nil {
			out.Notifications.PriceAlerts = *m.Notifications.PriceAlerts
		}
		if m.Notifications.SystemUpdates != nil {
			out.Notifications.SystemUpdates = *m.Notifications.SystemUpdates
		}
		if m.Notifications.Marketing != nil {
			out.Notifications.Marketing = *m.Notifications.Marketing
		}
	}
	if m.SoundEnabled != nil {
		out.SoundEnabled = *m.SoundEnabled
	}
	if m.SlippageTolerance != nil {
		out.SlippageTolerance = *m.SlippageTolerance
	}
	if m.GasPrice != nil {
		out.GasPrice = *m.GasPrice
	}
	if m.AutoApprove != nil {
		out.AutoApprove = *m.AutoApprove
	}
	if m.ExpertMode != nil {
		out.ExpertMode = *m.ExpertMode
	}
	if m.ShowWarnings != nil {
		out.ShowWarnings = *m.ShowWarnings
	}
	if m.Theme != nil {
		out.Theme = *m.Theme
	}

	if err := out.Validate(); err != nil {
		return base, err
	}
	return out, nil
}

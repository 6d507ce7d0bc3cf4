package models

// DecodeRequest carries raw swipe data. Either Swipe holds the full reader
// payload with all tracks concatenated, or the per-track fields hold the
// individual track strings. Per-track fields win when both are set.
type DecodeRequest struct {
	Swipe  string `json:"swipe,omitempty"`
	Track1 string `json:"track1,omitempty"`
	Track2 string `json:"track2,omitempty"`
	Track3 string `json:"track3,omitempty"`
}

// TrackResult reports the parse outcome for one track.
type TrackResult struct {
	Matched              bool   `json:"matched"`
	TrackData            string `json:"track_data,omitempty"`
	DiscretionaryData    string `json:"discretionary_data,omitempty"`
	ExceedsMaximumLength bool   `json:"exceeds_maximum_length,omitempty"`
}

// CardFields holds the composite field values resolved across tracks.
type CardFields struct {
	PrimaryAccountNumber string `json:"primary_account_number,omitempty"`
	PassesLuhnCheck      bool   `json:"passes_luhn_check,omitempty"`
	Name                 string `json:"name,omitempty"`
	ExpirationDate       string `json:"expiration_date,omitempty"`
	Expired              bool   `json:"expired,omitempty"`
	ServiceCode          string `json:"service_code,omitempty"`
	AllowedServices      string `json:"allowed_services,omitempty"`
}

// DecodeResponse is the full decode outcome for one swipe.
type DecodeResponse struct {
	SwipeID string      `json:"swipe_id"`
	Track1  TrackResult `json:"track1"`
	Track2  TrackResult `json:"track2"`
	Track3  TrackResult `json:"track3"`
	Card    CardFields  `json:"card"`
}

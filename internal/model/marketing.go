package model

// MarketingChannel is one paid acquisition channel: what it costs per month
// and how many unit sales it drives. Inactive channels are retained in
// state (the user may toggle them back on) but excluded from every blend.
type MarketingChannel struct {
	ID            string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name          string  `json:"name,omitempty" yaml:"name,omitempty"`
	MonthlySpend  float64 `json:"monthlySpend" yaml:"monthlySpend"`
	UnitsPerMonth float64 `json:"unitsPerMonth" yaml:"unitsPerMonth"`
	IsActive      bool    `json:"isActive" yaml:"isActive"`
}

// MarketingBucket groups channels of one kind in the bucketed marketing
// shape.
type MarketingBucket struct {
	Channels []MarketingChannel `json:"channels,omitempty" yaml:"channels,omitempty"`
}

// MarketingState carries the user's marketing description in either of two
// historical shapes:
//
//   - legacy: a single flat Channels list
//   - bucketed: DigitalAdvertising and EventsAndShows buckets plus an
//     organic (unpaid) unit count
//
// Both shapes deserialize into this one struct; the bucketed shape wins
// whenever either bucket is present. ActiveChannels is the only reader the
// rest of the system uses, so blending logic never branches on shape.
type MarketingState struct {
	// Channels is the legacy flat shape.
	Channels []MarketingChannel `json:"channels,omitempty" yaml:"channels,omitempty"`

	DigitalAdvertising *MarketingBucket `json:"digitalAdvertising,omitempty" yaml:"digitalAdvertising,omitempty"`
	EventsAndShows     *MarketingBucket `json:"eventsAndShows,omitempty" yaml:"eventsAndShows,omitempty"`

	// OrganicUnitsPerMonth is unit volume attributed to no paid channel.
	// It dilutes the blended acquisition cost but not the average one.
	OrganicUnitsPerMonth float64 `json:"organicUnitsPerMonth,omitempty" yaml:"organicUnitsPerMonth,omitempty"`
}

// IsBucketed reports whether the state uses the two-bucket shape.
func (m MarketingState) IsBucketed() bool {
	return m.DigitalAdvertising != nil || m.EventsAndShows != nil
}

// ActiveChannels flattens whichever shape the state carries into one list
// of active channels, in declaration order (digital advertising before
// events in the bucketed shape). The returned slice is freshly allocated.
func (m MarketingState) ActiveChannels() []MarketingChannel {
	var source []MarketingChannel
	if m.IsBucketed() {
		if m.DigitalAdvertising != nil {
			source = append(source, m.DigitalAdvertising.Channels...)
		}
		if m.EventsAndShows != nil {
			source = append(source, m.EventsAndShows.Channels...)
		}
	} else {
		source = m.Channels
	}

	active := make([]MarketingChannel, 0, len(source))
	for _, ch := range source {
		if ch.IsActive {
			active = append(active, ch)
		}
	}
	return active
}

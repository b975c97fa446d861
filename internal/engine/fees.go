package engine

import "github.com/makerbooks/makerbooks/internal/model"

// ChannelFee is the per-channel display breakdown of a fee blend: how many
// of the product's monthly units route through the channel and what the
// marketplace charges for each.
type ChannelFee struct {
	Name            string  `json:"name"`
	FeePercentage   float64 `json:"feePercentage"`
	NormalizedShare float64 `json:"normalizedShare"`
	UnitsPerMonth   float64 `json:"unitsPerMonth"`
	FeePerUnit      float64 `json:"feePerUnit"`
}

// FeeBlend is the result of blending a product's platform fees into one
// effective marketplace rate.
type FeeBlend struct {
	// BlendedFeeRate is the volume-weighted marketplace cut, in percent.
	BlendedFeeRate float64 `json:"blendedFeeRate"`

	// FeePerUnit is the average fee paid on one unit at the product's
	// selling price.
	FeePerUnit float64 `json:"feePerUnit"`

	// Channels is display-only; downstream calculations use only the
	// blended figures.
	Channels []ChannelFee `json:"channels,omitempty"`
}

// BlendPlatformFees normalizes a product's per-channel sales shares and
// computes the blended marketplace fee rate.
//
// The shares a user enters need not sum to 100: a single channel at 50%
// means "all my volume goes here" just as well as one at 100%. Whenever
// the raw shares sum to anything positive they are rescaled so the set
// sums to exactly 100. A share sum of zero blends to zero: a channel
// nothing routes through costs nothing, whatever its fee percentage.
func BlendPlatformFees(fees []model.PlatformFee, sellingPrice float64, monthlyUnits int) FeeBlend {
	if len(fees) == 0 {
		return FeeBlend{}
	}

	var totalShare float64
	for _, fee := range fees {
		totalShare += fee.SalesPercentage
	}

	blend := FeeBlend{Channels: make([]ChannelFee, 0, len(fees))}
	for _, fee := range fees {
		var normalized float64
		if totalShare > 0 {
			normalized = fee.SalesPercentage / totalShare * 100
		}
		blend.BlendedFeeRate += normalized * fee.FeePercentage / 100

		blend.Channels = append(blend.Channels, ChannelFee{
			Name:            fee.Name,
			FeePercentage:   fee.FeePercentage,
			NormalizedShare: normalized,
			UnitsPerMonth:   float64(monthlyUnits) * normalized / 100,
			FeePerUnit:      sellingPrice * fee.FeePercentage / 100,
		})
	}

	blend.FeePerUnit = sellingPrice * blend.BlendedFeeRate / 100
	return blend
}

// Package vendorrepo provides data transfer objects and mapping functions for
// vendor persistence. A vendor row owns an ordered set of shipping rate rows;
// both are loaded together to rebuild the rate catalog snapshot.
package vendorrepo

import (
	"sort"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for persisting vendor aggregates.
type VendorDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	ServiceType string
	Tiers       []RateTierDTO `gorm:"foreignKey:VendorID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for vendor entities.
func (VendorDTO) TableName() string {
	return "vendors"
}

// RateTierDTO represents one weight tier of a vendor's rate card.
// A NULL WeightToKg marks the open-ended top tier; Position keeps the
// partition order stable without re-sorting on every load.
type RateTierDTO struct {
	ID           uint      `gorm:"primaryKey"`
	VendorID     uuid.UUID `gorm:"type:uuid;index"`
	Position     int
	WeightFromKg float64
	WeightToKg   *float64
	BasePrice    float64
	PricePer5Km  float64
}

// TableName specifies the database table name for rate tiers.
func (RateTierDTO) TableName() string {
	return "shipping_rates"
}

// fromDomain converts a vendor domain aggregate to its database representation.
func fromDomain(aggregate *vendor.Vendor) VendorDTO {
	tiers := aggregate.Tiers()
	tierDTOs := make([]RateTierDTO, 0, len(tiers))
	for i, tier := range tiers {
		dto := RateTierDTO{
			VendorID:     aggregate.ID().Bytes(),
			Position:     i,
			WeightFromKg: tier.WeightFrom(),
			BasePrice:    tier.BasePrice(),
			PricePer5Km:  tier.PricePer5Km(),
		}
		if !tier.IsOpenEnded() {
			to := tier.WeightTo()
			dto.WeightToKg = &to
		}
		tierDTOs = append(tierDTOs, dto)
	}

	return VendorDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		ServiceType: aggregate.ServiceType().String(),
		Tiers:       tierDTOs,
	}
}

// toDomain converts a database DTO to a vendor domain aggregate.
// NewVendor revalidates the tier partition, so a corrupted rate card is
// rejected at load time instead of producing wrong prices.
func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	serviceType, err := vendor.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Tiers, func(i, j int) bool {
		return dto.Tiers[i].Position < dto.Tiers[j].Position
	})

	tiers := make([]vendor.RateTier, 0, len(dto.Tiers))
	for _, tierDTO := range dto.Tiers {
		var tier vendor.RateTier
		var tierErr error
		if tierDTO.WeightToKg == nil {
			tier, tierErr = vendor.NewOpenEndedRateTier(
				tierDTO.WeightFromKg, tierDTO.BasePrice, tierDTO.PricePer5Km)
		} else {
			tier, tierErr = vendor.NewRateTier(
				tierDTO.WeightFromKg, *tierDTO.WeightToKg,
				tierDTO.BasePrice, tierDTO.PricePer5Km)
		}
		if tierErr != nil {
			return nil, tierErr
		}
		tiers = append(tiers, tier)
	}

	return vendor.NewVendor(id, dto.Name, serviceType, tiers)
}

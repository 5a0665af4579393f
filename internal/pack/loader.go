package pack

import (
	"fmt"

	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/utils"
	"github.com/osse101/PackOpener_Go/internal/validation"
)

// packsFile is the on-disk shape of a pack definition file
type packsFile struct {
	Packs []packFile `json:"packs" yaml:"packs"`
}

type packFile struct {
	ID                 string           `json:"id" yaml:"id"`
	Name               string           `json:"name" yaml:"name"`
	Series             string           `json:"series" yaml:"series"`
	CardsPerPack       int              `json:"cards_per_pack" yaml:"cards_per_pack"`
	RarityDistribution distributionFile `json:"rarity_distribution" yaml:"rarity_distribution"`
	PossibleCards      []string         `json:"possible_cards" yaml:"possible_cards"`
}

type distributionFile struct {
	Common   int `json:"common" yaml:"common"`
	Uncommon int `json:"uncommon" yaml:"uncommon"`
	RareSlot int `json:"rare_slot" yaml:"rare_slot"`
}

func (f packFile) toDomain() domain.PackSpec {
	return domain.PackSpec{
		ID:           f.ID,
		Name:         f.Name,
		Series:       f.Series,
		CardsPerPack: f.CardsPerPack,
		RarityDistribution: domain.RarityDistribution{
			Common:   f.RarityDistribution.Common,
			Uncommon: f.RarityDistribution.Uncommon,
			RareSlot: f.RarityDistribution.RareSlot,
		},
		PossibleCards: f.PossibleCards,
	}
}

// Load reads every JSON/YAML pack file under path, validating each against schemaPath
func Load(path, schemaPath string, schemas validation.SchemaValidator) ([]domain.PackSpec, error) {
	files, err := utils.ListDataFiles(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListPacks, err)
	}

	var specs []domain.PackSpec
	for _, file := range files {
		if err := schemas.ValidateFile(file, schemaPath); err != nil {
			return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrInvalidPackSpec, ErrContextSchemaValidation, file, err)
		}

		var pf packsFile
		if err := utils.LoadDataFile(file, &pf); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadPacks, err)
		}
		for _, p := range pf.Packs {
			specs = append(specs, p.toDomain())
		}
	}
	return specs, nil
}

// ValidateSpec checks the invariants every pack must hold
func ValidateSpec(spec domain.PackSpec) error {
	switch {
	case spec.ID == "":
		return fmt.Errorf("%w: missing id", domain.ErrInvalidPackSpec)
	case spec.CardsPerPack < 1:
		return fmt.Errorf("%w: %s: cards_per_pack must be positive", domain.ErrInvalidPackSpec, spec.ID)
	case spec.RarityDistribution.Common < 0,
		spec.RarityDistribution.Uncommon < 0,
		spec.RarityDistribution.RareSlot < 0:
		return fmt.Errorf("%w: %s: slot counts must not be negative", domain.ErrInvalidPackSpec, spec.ID)
	case len(spec.PossibleCards) == 0:
		return fmt.Errorf("%w: %s: possible_cards is empty", domain.ErrInvalidPackSpec, spec.ID)
	}
	return nil
}

package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/utils"
)

// seriesFile is the on-disk shape of one series of cards
type seriesFile struct {
	Series string     `json:"series" yaml:"series" validate:"required"`
	Cards  []cardFile `json:"cards" yaml:"cards" validate:"required,min=1,dive"`
}

type cardFile struct {
	ID     string `json:"id" yaml:"id" validate:"required,max=64"`
	Name   string `json:"name" yaml:"name" validate:"required,max=100"`
	Rarity string `json:"rarity" yaml:"rarity" validate:"required"`
	Type   string `json:"type" yaml:"type"`
	Image  string `json:"image" yaml:"image" validate:"omitempty,max=512"`
}

var validate = validator.New()

// Load reads every JSON/YAML series file under path (a directory or a single file)
func Load(path string) (*Catalog, error) {
	files, err := utils.ListDataFiles(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListCatalog, err)
	}

	var cards []domain.Card
	for _, file := range files {
		loaded, err := loadSeries(file)
		if err != nil {
			return nil, err
		}
		cards = append(cards, loaded...)
	}

	return New(cards)
}

func loadSeries(file string) ([]domain.Card, error) {
	var sf seriesFile
	if err := utils.LoadDataFile(file, &sf); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadSeries, err)
	}
	if err := validate.Struct(sf); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrInvalidCatalog, ErrContextInvalidSeriesFile, file, err)
	}

	cards := make([]domain.Card, 0, len(sf.Cards))
	for _, cf := range sf.Cards {
		rarity, err := domain.ParseRarity(cf.Rarity)
		if err != nil {
			return nil, fmt.Errorf("%w: %s card %s: %w", domain.ErrInvalidCatalog, file, cf.ID, err)
		}
		cards = append(cards, domain.Card{
			ID:     cf.ID,
			Name:   cf.Name,
			Rarity: rarity,
			Type:   cf.Type,
			Series: sf.Series,
			Image:  cf.Image,
		})
	}
	return cards, nil
}

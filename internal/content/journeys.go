package content

import (
	_ "embed"
	"encoding/json"
	"sort"

	"sahaayak/internal/model"
)

//go:embed journeys.json
var journeyCatalogRawJSON []byte

type journeyCatalog struct {
	Journeys []model.Journey `json:"journeys"`
}

var journeys = loadJourneys()

func loadJourneys() map[string]model.Journey {
	var catalog journeyCatalog
	if err := json.Unmarshal(journeyCatalogRawJSON, &catalog); err != nil {
		return map[string]model.Journey{}
	}
	result := make(map[string]model.Journey, len(catalog.Journeys))
	for _, journey := range catalog.Journeys {
		if journey.ID == "" || len(journey.Days) == 0 {
			continue
		}
		result[journey.ID] = journey
	}
	return result
}

func JourneyByID(id string) (model.Journey, bool) {
	journey, ok := journeys[id]
	return journey, ok
}

func Journeys() []model.Journey {
	result := make([]model.Journey, 0, len(journeys))
	for _, journey := range journeys {
		result = append(result, journey)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

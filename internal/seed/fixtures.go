package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
)

//go:embed fixtures/projects.json
var projectFixtures []byte

type ProjectFixture struct {
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Sector         domain.Sector       `json:"sector"`
	ContractType   domain.ContractType `json:"contract_type"`
	FundingGoal    float64             `json:"funding_goal"`
	DurationMonths int                 `json:"duration_months"`
}

func LoadProjectFixtures() ([]ProjectFixture, error) {
	var fixtures []ProjectFixture
	if err := json.Unmarshal(projectFixtures, &fixtures); err != nil {
		return nil, fmt.Errorf("decode project fixtures: %w", err)
	}
	return fixtures, nil
}

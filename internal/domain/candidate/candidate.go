package candidate

import (
	"math"
	"time"
)

// Candidate is an application record as served by the API. The admin panel
// only reads these; there is no mutation path for candidates.
type Candidate struct {
	ID           string    `json:"id"`
	CPF          string    `json:"cpf"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	Telefone     string    `json:"telefone"`
	Linkedin     string    `json:"linkedin"`
	Vaga         string    `json:"vaga"`
	DescDaVaga   string    `json:"descDaVaga"`
	AnaliseIA    string    `json:"analiseIA"`
	Score        float64   `json:"score"`
	CurriculoURL string    `json:"curriculoUrl"`
	AtualizadoEm time.Time `json:"atualizadoEm"`
}

// AllJobs is the selector sentinel meaning "no job filter".
const AllJobs = ""

// MatchPercent renders the fractional suitability score as a rounded
// percentage.
func (c Candidate) MatchPercent() int {
	return int(math.Round(c.Score * 100))
}

// FilterByJob returns the candidates whose job reference equals jobID, or the
// input unchanged when jobID is the AllJobs sentinel.
func FilterByJob(items []Candidate, jobID string) []Candidate {
	if jobID == AllJobs {
		return items
	}
	filtered := make([]Candidate, 0, len(items))
	for _, item := range items {
		if item.Vaga == jobID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

package job

import "time"

// Job is a posting as served by the API. The authoritative copy lives
// server-side; clients hold slices of these only as a cache.
type Job struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Descricao string    `json:"descricao"`
	Ativa     bool      `json:"ativa"`
	CriadoEm  time.Time `json:"criadoEm"`
}

// Active returns the subset offered to applicants.
func Active(items []Job) []Job {
	active := make([]Job, 0, len(items))
	for _, item := range items {
		if item.Ativa {
			active = append(active, item)
		}
	}
	return active
}

func Find(items []Job, id string) (Job, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Job{}, false
}

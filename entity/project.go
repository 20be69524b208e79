package entity

type Project struct {
	Id           string         `json:"id,omitempty"`
	Name         string         `json:"name,omitempty"`
	UpdatedAt    string         `json:"updatedAt,omitempty"`
	Environments []*Environment `json:"environments,omitempty"`
	Services     []*Service     `json:"services,omitempty"`
}

type Environment struct {
	Id   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type Service struct {
	Id   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// ProjectTokenIdentity is the server-resolved identity behind a
// project-scoped RAILWAY_TOKEN.
type ProjectTokenIdentity struct {
	Project     Project     `json:"project"`
	Environment Environment `json:"environment"`
}

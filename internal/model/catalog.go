package model

type Category struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// Tag belongs to exactly one category, referenced by ID.
type Tag struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
}

// User identifies who is importing; it replaces any ambient auth state.
type User struct {
	ID   string
	Nome string
}

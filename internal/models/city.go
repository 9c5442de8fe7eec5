package models

type City struct {
	ID    string `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	State string `db:"state" json:"state"`
}

type BrowseOptions struct {
	Categories []Category `json:"categories"`
	Cities     []City     `json:"cities"`
}

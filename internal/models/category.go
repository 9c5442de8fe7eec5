package models

import "golang.org/x/exp/slices"

type Category struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Categories is the fixed set a listing category must belong to.
var Categories = []Category{
	{ID: "electronics", Name: "Electronics"},
	{ID: "gaming", Name: "Gaming"},
	{ID: "furniture", Name: "Furniture"},
	{ID: "books", Name: "Books & Study Materials"},
	{ID: "sports", Name: "Sports Equipment"},
	{ID: "instruments", Name: "Musical Instruments"},
	{ID: "clothing", Name: "Clothing & Accessories"},
	{ID: "tools", Name: "Tools & Equipment"},
}

func IsKnownCategory(id string) bool {
	return slices.ContainsFunc(Categories, func(c Category) bool { return c.ID == id })
}

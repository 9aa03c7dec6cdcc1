package models

// Category is the top level of the device taxonomy. Types and
// subcategories both hang off a category.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type DeviceType struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID int    `json:"device_category_id"`
}

type Subcategory struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID int    `json:"device_category_id"`
}

package models

import "fmt"

// Category is the device family a repair catalog or brand index belongs to.
type Category string

const (
	CategoryMobile  Category = "mobile"
	CategoryLaptop  Category = "laptop"
	CategoryTablet  Category = "tablet"
	CategoryConsole Category = "console"
)

// ParseCategory accepts the category path/body value, tolerating a plural
// spelling ("mobiles" and "mobile" address the same catalog).
func ParseCategory(s string) (Category, error) {
	if n := len(s); n > 1 && s[n-1] == 's' {
		s = s[:n-1]
	}
	switch c := Category(s); c {
	case CategoryMobile, CategoryLaptop, CategoryTablet, CategoryConsole:
		return c, nil
	}
	return "", fmt.Errorf("invalid category %q", s)
}

// RepairCollection is the repair-catalog collection for this category.
func (c Category) RepairCollection() string {
	return string(c) + "repairs"
}

// BrandCollection is the brand-index collection for this category.
func (c Category) BrandCollection() string {
	return string(c) + "brands"
}

// ProductCollection is the product collection, defined for mobile and laptop only.
func (c Category) ProductCollection() (string, error) {
	switch c {
	case CategoryMobile:
		return "mobiles", nil
	case CategoryLaptop:
		return "laptops", nil
	}
	return "", fmt.Errorf("no product collection for category %q", c)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaultsMobileScreenType(t *testing.T) {
	opt := RepairOption{Name: "Battery", EstimatedCost: 50, Description: "x"}
	opt.ApplyDefaults(CategoryMobile)

	assert.False(t, opt.ID.IsZero(), "option gets an identity on insertion")
	assert.Equal(t, ScreenAMOLED, opt.ScreenType)
	assert.Nil(t, opt.IncludesKeyboard, "only the category flag is set")
}

func TestApplyDefaultsKeepsExplicitScreenType(t *testing.T) {
	opt := RepairOption{Name: "Screen", EstimatedCost: 90, Description: "x", ScreenType: ScreenLCD}
	opt.ApplyDefaults(CategoryMobile)
	assert.Equal(t, ScreenLCD, opt.ScreenType)
}

func TestApplyDefaultsBooleanFlags(t *testing.T) {
	cases := []struct {
		category Category
		flag     func(RepairOption) *bool
	}{
		{CategoryLaptop, func(o RepairOption) *bool { return o.IncludesKeyboard }},
		{CategoryTablet, func(o RepairOption) *bool { return o.IncludesStylus }},
		{CategoryConsole, func(o RepairOption) *bool { return o.IncludesControllers }},
	}
	for _, tc := range cases {
		opt := RepairOption{Name: "Fix", EstimatedCost: 10, Description: "x"}
		opt.ApplyDefaults(tc.category)
		flag := tc.flag(opt)
		require.NotNil(t, flag, "%s flag defaulted", tc.category)
		assert.False(t, *flag)
		assert.Empty(t, opt.ScreenType)
	}
}

func TestApplyDefaultsPreservesExistingID(t *testing.T) {
	opt := RepairOption{Name: "Fix", EstimatedCost: 10, Description: "x"}
	opt.ApplyDefaults(CategoryMobile)
	id := opt.ID
	opt.ApplyDefaults(CategoryMobile)
	assert.Equal(t, id, opt.ID)
}

func TestValidateRepairListsEveryViolation(t *testing.T) {
	repair := Repair{
		RepairOptions: []RepairOption{{EstimatedCost: -1, ScreenType: "TFT"}},
	}
	fields := Validate(repair)

	require.NotEmpty(t, fields)
	joined := ""
	for _, f := range fields {
		joined += f + "; "
	}
	assert.Contains(t, joined, "brand is required")
	assert.Contains(t, joined, "model is required")
	assert.Contains(t, joined, "name is required")
	assert.Contains(t, joined, "description is required")
	assert.Contains(t, joined, "estimatedCost must be at least 0")
	assert.Contains(t, joined, "screenType must be one of")
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]Category{
		"mobile":   CategoryMobile,
		"mobiles":  CategoryMobile,
		"laptops":  CategoryLaptop,
		"tablet":   CategoryTablet,
		"consoles": CategoryConsole,
	} {
		got, err := ParseCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseCategory("fridge")
	assert.Error(t, err)
}

func TestCategoryCollections(t *testing.T) {
	assert.Equal(t, "mobilerepairs", CategoryMobile.RepairCollection())
	assert.Equal(t, "consolebrands", CategoryConsole.BrandCollection())

	col, err := CategoryLaptop.ProductCollection()
	require.NoError(t, err)
	assert.Equal(t, "laptops", col)

	_, err = CategoryTablet.ProductCollection()
	assert.Error(t, err, "tablets have repairs but no product catalog")
}

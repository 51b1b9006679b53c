package appointmentController

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Afterlife24/repairshop-server/models"
)

func TestBuildListFilterEmpty(t *testing.T) {
	assert.Equal(t, bson.M{}, buildListFilter(listParams{Page: 1, Limit: 10}))
}

func TestBuildListFilterStatusExactMatch(t *testing.T) {
	f := buildListFilter(listParams{Status: "confirmed"})
	assert.Equal(t, "confirmed", f["status"])

	// Unknown statuses never reach the query.
	f = buildListFilter(listParams{Status: "archived"})
	_, ok := f["status"]
	assert.False(t, ok)
}

func TestBuildListFilterDateRange(t *testing.T) {
	f := buildListFilter(listParams{DateFrom: "2026-01-01", DateTo: "2026-01-31"})
	assert.Equal(t, bson.M{"$gte": "2026-01-01", "$lte": "2026-01-31"}, f["appointment.date"])

	f = buildListFilter(listParams{DateFrom: "2026-01-01"})
	assert.Equal(t, bson.M{"$gte": "2026-01-01"}, f["appointment.date"])
}

func TestBuildListFilterSearchORsAllFields(t *testing.T) {
	f := buildListFilter(listParams{Search: "Dupont"})
	or, ok := f["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, len(searchFields))

	seen := map[string]bool{}
	for _, clause := range or {
		for field, v := range clause {
			re, ok := v.(primitive.Regex)
			require.True(t, ok)
			assert.Equal(t, "Dupont", re.Pattern)
			assert.Equal(t, "i", re.Options, "search is case-insensitive")
			seen[field] = true
		}
	}
	for _, field := range []string{"customer.name", "customer.firstName", "customer.email", "model", "brand"} {
		assert.True(t, seen[field], field)
	}
}

func TestBuildListFilterSearchEscapesRegexMeta(t *testing.T) {
	f := buildListFilter(listParams{Search: "a.b+c"})
	or := f["$or"].([]bson.M)
	re := or[0]["customer.name"].(primitive.Regex)
	assert.Equal(t, `a\.b\+c`, re.Pattern)
}

func TestSortValue(t *testing.T) {
	assert.Equal(t, 1, listParams{SortOrder: "asc"}.sortValue())
	assert.Equal(t, -1, listParams{SortOrder: "desc"}.sortValue())
	assert.Equal(t, -1, listParams{}.sortValue(), "default sort is descending")
}

func validBooking() models.Appointment {
	return models.Appointment{
		DeviceType:  "smartphone",
		DeviceName:  "Smartphone",
		Subtype:     "apple",
		SubtypeName: "Apple",
		Brand:       "Apple",
		Model:       "iPhone 12",
		Services:    []models.AppointmentService{{ID: "s1", Name: "Écran", Price: 89}},
		TotalPrice:  89,
		Customer: models.Customer{
			Name:      "Dupont",
			FirstName: "Marie",
			Email:     "marie.dupont@example.fr",
			Phone:     "0612345678",
		},
		Appointment: models.Schedule{Date: "2026-09-15", Time: "14:30"},
	}
}

func TestValidateBookingAccepts(t *testing.T) {
	assert.Nil(t, validateBooking(validBooking()))
}

func TestValidateBookingReportsEveryMissingField(t *testing.T) {
	msgs := validateBooking(models.Appointment{})

	// 11 required fields plus the empty services list.
	assert.Len(t, msgs, 12)
	assert.Contains(t, msgs, "Le champ deviceType est obligatoire")
	assert.Contains(t, msgs, "Le champ customer.email est obligatoire")
	assert.Contains(t, msgs, Messages.NoServices)
}

func TestValidateBookingRejectsBadEmail(t *testing.T) {
	a := validBooking()
	a.Customer.Email = "not-an-email"
	msgs := validateBooking(a)
	assert.Equal(t, []string{Messages.InvalidEmail}, msgs)
}

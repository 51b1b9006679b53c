package appointmentController

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Afterlife24/repairshop-server/models"
)

// searchFields are the fields the free-text search matches against; a record
// qualifies when ANY of them matches.
var searchFields = []string{"customer.name", "customer.firstName", "customer.email", "model", "brand"}

// sortableFields allow-lists what the client may sort on.
var sortableFields = map[string]struct{}{
	"createdAt":        {},
	"appointment.date": {},
	"totalPrice":       {},
	"status":           {},
	"brand":            {},
	"model":            {},
}

type listParams struct {
	Page      int64
	Limit     int64
	Status    string
	DateFrom  string
	DateTo    string
	Search    string
	SortField string
	SortOrder string
}

func listParamsFromQuery(c *fiber.Ctx) listParams {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}

	p := listParams{
		Page:      page,
		Limit:     limit,
		Status:    c.Query("status"),
		DateFrom:  c.Query("dateFrom"),
		DateTo:    c.Query("dateTo"),
		Search:    strings.TrimSpace(c.Query("search")),
		SortField: c.Query("sortField", "createdAt"),
		SortOrder: c.Query("sortOrder", "desc"),
	}
	if _, ok := sortableFields[p.SortField]; !ok {
		p.SortField = "createdAt"
	}
	return p
}

func (p listParams) sortValue() int {
	if p.SortOrder == "asc" {
		return 1
	}
	return -1
}

// buildListFilter assembles the Mongo filter for the list query. Status is an
// exact match, the date range compares the stored appointment.date strings,
// and search ORs a case-insensitive substring match over searchFields.
func buildListFilter(p listParams) bson.M {
	filter := bson.M{}

	if p.Status != "" && models.ValidStatus(p.Status) {
		filter["status"] = p.Status
	}

	dateRange := bson.M{}
	if p.DateFrom != "" {
		dateRange["$gte"] = p.DateFrom
	}
	if p.DateTo != "" {
		dateRange["$lte"] = p.DateTo
	}
	if len(dateRange) > 0 {
		filter["appointment.date"] = dateRange
	}

	if p.Search != "" {
		pattern := regexp.QuoteMeta(p.Search)
		or := make([]bson.M, 0, len(searchFields))
		for _, field := range searchFields {
			or = append(or, bson.M{field: primitive.Regex{Pattern: pattern, Options: "i"}})
		}
		filter["$or"] = or
	}

	return filter
}

// validateBooking applies the required-field rules with the configured
// message set, reporting every violation.
func validateBooking(a models.Appointment) []string {
	var msgs []string

	required := []struct {
		name  string
		value string
	}{
		{"deviceType", a.DeviceType},
		{"deviceName", a.DeviceName},
		{"subtype", a.Subtype},
		{"subtypeName", a.SubtypeName},
		{"brand", a.Brand},
		{"model", a.Model},
		{"customer.name", a.Customer.Name},
		{"customer.firstName", a.Customer.FirstName},
		{"customer.email", a.Customer.Email},
		{"appointment.date", a.Appointment.Date},
		{"appointment.time", a.Appointment.Time},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			msgs = append(msgs, fmt.Sprintf(Messages.MissingField, f.name))
		}
	}

	if len(a.Services) == 0 {
		msgs = append(msgs, Messages.NoServices)
	}
	if a.Customer.Email != "" && !emailRe.MatchString(a.Customer.Email) {
		msgs = append(msgs, Messages.InvalidEmail)
	}

	return msgs
}

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

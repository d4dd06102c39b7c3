package classify

import "strings"

// Authority is the contact a complaint category routes to.
type Authority struct {
	Name       string `json:"authority"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

var authorityTable = map[string]Authority{
	"food": {
		Name:       "Mess Committee Head",
		Email:      "mess@srec.ac.in",
		Department: "Mess & Catering Services",
	},
	"infrastructure": {
		Name:       "Maintenance Officer",
		Email:      "maintenance@srec.ac.in",
		Department: "Infrastructure & Maintenance",
	},
	"academic": {
		Name:       "Academic Dean",
		Email:      "academics@srec.ac.in",
		Department: "Academic Affairs",
	},
	"hostel": {
		Name:       "Hostel Warden",
		Email:      "hostel@srec.ac.in",
		Department: "Hostel Administration",
	},
	"transport": {
		Name:       "Transport Coordinator",
		Email:      "transport@srec.ac.in",
		Department: "Transport Services",
	},
	"other": {
		Name:       "Student Affairs Officer",
		Email:      "studentaffairs@srec.ac.in",
		Department: "Student Affairs",
	},
}

// AuthorityFor maps a complaint category to its authority. Unrecognized
// categories route to the "other" entry; this lookup never fails.
func AuthorityFor(category string) Authority {
	if a, ok := authorityTable[strings.ToLower(category)]; ok {
		return a
	}
	return authorityTable["other"]
}

// KnownCategory reports whether category has a dedicated authority entry.
func KnownCategory(category string) bool {
	_, ok := authorityTable[strings.ToLower(category)]
	return ok
}

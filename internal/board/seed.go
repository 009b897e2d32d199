package board

import (
	"fmt"
	"time"
)

// seedRow is one entry in the static seed table: origin state and city,
// destination, equipment type, and commodity.
type seedRow struct {
	state     string
	city      string
	dest      string
	equipment string
	commodity string
}

// seedTable lists one representative load per U.S. state plus D.C.,
// ordered by state name.
var seedTable = []seedRow{
	{"AL", "Birmingham", "Charlotte, NC", "Flatbed", "Steel Beams"},
	{"AK", "Anchorage", "Seattle, WA", "Reefer", "Seafood"},
	{"AZ", "Phoenix", "Denver, CO", "Dry Van", "Consumer Goods"},
	{"AR", "Little Rock", "Memphis, TN", "Dry Van", "Paper Products"},
	{"CA", "Los Angeles", "Portland, OR", "Dry Van", "Apparel"},
	{"CO", "Denver", "Salt Lake City, UT", "Reefer", "Fresh Produce"},
	{"CT", "Hartford", "Albany, NY", "Dry Van", "Medical Supplies"},
	{"DE", "Wilmington", "Baltimore, MD", "Dry Van", "Packaged Foods"},
	{"DC", "Washington", "Richmond, VA", "Dry Van", "Office Equipment"},
	{"FL", "Miami", "Atlanta, GA", "Reefer", "Frozen Foods"},
	{"GA", "Savannah", "Birmingham, AL", "Flatbed", "Lumber"},
	{"HI", "Honolulu", "Los Angeles, CA", "Reefer", "Processed Foods"},
	{"ID", "Boise", "Spokane, WA", "Dry Van", "Paper Products"},
	{"IL", "Chicago", "Detroit, MI", "Flatbed", "Machinery"},
	{"IN", "Indianapolis", "Columbus, OH", "Dry Van", "Automotive Parts"},
	{"IA", "Des Moines", "Minneapolis, MN", "Dry Van", "Agricultural Supplies"},
	{"KS", "Wichita", "Oklahoma City, OK", "Flatbed", "Construction Materials"},
	{"KY", "Louisville", "St. Louis, MO", "Reefer", "Beverages"},
	{"LA", "New Orleans", "Houston, TX", "Flatbed", "Petrochemical Equipment"},
	{"ME", "Portland", "Boston, MA", "Dry Van", "Seafood"},
	{"MD", "Baltimore", "Newark, NJ", "Dry Van", "Consumer Packaged Goods"},
	{"MA", "Boston", "Manchester, NH", "Dry Van", "Pharmaceuticals"},
	{"MI", "Detroit", "Cleveland, OH", "Flatbed", "Steel Coils"},
	{"MN", "Minneapolis", "Milwaukee, WI", "Reefer", "Processed Foods"},
	{"MS", "Jackson", "Baton Rouge, LA", "Dry Van", "Paper Products"},
	{"MO", "St. Louis", "Kansas City, KS", "Flatbed", "Industrial Equipment"},
	{"MT", "Billings", "Fargo, ND", "Flatbed", "Oilfield Supplies"},
	{"NE", "Omaha", "Sioux Falls, SD", "Dry Van", "Food Ingredients"},
	{"NV", "Las Vegas", "Phoenix, AZ", "Dry Van", "Electronics"},
	{"NH", "Manchester", "Hartford, CT", "Dry Van", "Medical Devices"},
	{"NJ", "Newark", "Buffalo, NY", "Dry Van", "Packaged Foods"},
	{"NM", "Albuquerque", "Tulsa, OK", "Flatbed", "Construction Materials"},
	{"NY", "Albany", "Pittsburgh, PA", "Dry Van", "Paper Goods"},
	{"NC", "Charlotte", "Columbia, SC", "Dry Van", "Textiles"},
	{"ND", "Fargo", "Billings, MT", "Flatbed", "Agricultural Machinery"},
	{"OH", "Columbus", "Nashville, TN", "Power Only", "Empty Trailers"},
	{"OK", "Oklahoma City", "Dallas, TX", "Flatbed", "Oilfield Equipment"},
	{"OR", "Portland", "Boise, ID", "Dry Van", "Wood Products"},
	{"PA", "Philadelphia", "Richmond, VA", "Dry Van", "Retail Goods"},
	{"RI", "Providence", "Hartford, CT", "Dry Van", "Office Supplies"},
	{"SC", "Columbia", "Savannah, GA", "Dry Van", "Automotive Components"},
	{"SD", "Sioux Falls", "Omaha, NE", "Reefer", "Dairy Products"},
	{"TN", "Nashville", "Indianapolis, IN", "Dry Van", "Music Equipment"},
	{"TX", "Dallas", "Little Rock, AR", "Dry Van", "Consumer Goods"},
	{"UT", "Salt Lake City", "Reno, NV", "Flatbed", "Mining Equipment"},
	{"VT", "Burlington", "Albany, NY", "Dry Van", "Maple Products"},
	{"VA", "Richmond", "Raleigh, NC", "Dry Van", "Furniture"},
	{"WA", "Seattle", "Boise, ID", "Dry Van", "Paper Products"},
	{"WV", "Charleston", "Lexington, KY", "Dry Van", "Chemicals"},
	{"WI", "Milwaukee", "Chicago, IL", "Reefer", "Cheese"},
	{"WY", "Cheyenne", "Denver, CO", "Flatbed", "Mining Supplies"},
}

var dimensionsByEquipment = map[string]string{
	"Dry Van":    "53ft dry van",
	"Reefer":     "53ft refrigerated trailer",
	"Flatbed":    "48ft flatbed",
	"Power Only": "Sleeper tractor",
}

var notesByEquipment = map[string]string{
	"Dry Van":    "Standard dock pickup with palletized freight.",
	"Reefer":     "Maintain temperature setpoint throughout transit.",
	"Flatbed":    "Straps and edge protectors provided with load.",
	"Power Only": "Hook and go - trailer ready at shipper.",
}

// seedBasePickup anchors the generated pickup dates. The absolute date only
// fixes each load's weekday; snapshots roll the dates forward per request.
var seedBasePickup = time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)

// SeedLoads generates the fixed demo load list, one load per seed row, with
// rates, weights, and distances derived deterministically from the row index.
func SeedLoads() []Load {
	loads := make([]Load, 0, len(seedTable))
	for i, row := range seedTable {
		index := i + 1
		pickup := seedBasePickup.AddDate(0, 0, index)
		delivery := pickup.Add(48*time.Hour + time.Duration(index%5)*3*time.Hour)

		weight := 26000 + 450*index
		if row.equipment == "Power Only" {
			weight = 18000
		}

		notes := notesByEquipment[row.equipment]
		if notes == "" {
			notes = "No special handling required."
		}
		notes = fmt.Sprintf("%s Departing %s.", notes, row.city)
		if index%7 == 0 {
			notes += " Team transit recommended for on-time delivery."
		}

		dimensions := dimensionsByEquipment[row.equipment]
		if dimensions == "" {
			dimensions = "53ft trailer"
		}

		loads = append(loads, Load{
			LoadID:           fmt.Sprintf("L-%04d", 2000+index),
			Origin:           fmt.Sprintf("%s, %s", row.city, row.state),
			Destination:      row.dest,
			PickupDatetime:   pickup,
			DeliveryDatetime: delivery,
			EquipmentType:    row.equipment,
			LoadboardRate:    float64(1700 + 65*index),
			Weight:           weight,
			CommodityType:    row.commodity,
			NumOfPieces:      10 + index%12,
			Miles:            300 + 22*index,
			Dimensions:       dimensions,
			Notes:            notes,
		})
	}
	return loads
}

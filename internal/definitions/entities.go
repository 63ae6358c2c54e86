package definitions

import "github.com/ai-ml-platform/featstore/internal/entities"

// User/customer entity
var userEntity = &entities.Entity{
	Name:        "user_id",
	ValueType:   entities.ValueTypeInt64,
	Description: "Unique identifier for users/customers",
	Tags:        map[string]string{"team": "customer_analytics", "domain": "user"},
}

// Driver entity (for ride-sharing)
var driverEntity = &entities.Entity{
	Name:        "driver_id",
	ValueType:   entities.ValueTypeInt64,
	Description: "Unique identifier for drivers",
	Tags:        map[string]string{"team": "driver_analytics", "domain": "driver"},
}

// Product entity
var productEntity = &entities.Entity{
	Name:        "product_id",
	ValueType:   entities.ValueTypeString,
	Description: "Unique identifier for products",
	Tags:        map[string]string{"team": "product_analytics", "domain": "product"},
}

// Location entity. No feature view joins on it yet; it is registered ahead
// of the geo features that will.
var locationEntity = &entities.Entity{
	Name:        "location_id",
	ValueType:   entities.ValueTypeInt64,
	Description: "Unique identifier for geographical locations",
	Tags:        map[string]string{"team": "geo_analytics", "domain": "location"},
}

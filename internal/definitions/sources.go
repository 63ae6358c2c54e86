package definitions

import "github.com/ai-ml-platform/featstore/internal/entities"

// User activity data source
var userActivitySource = &entities.FileSource{
	Name:                   "user_activity_source",
	Path:                   "s3://ai-ml-platform-ml-dev-datasets/feast/user_activity/",
	TimestampField:         "event_timestamp",
	CreatedTimestampColumn: "created_timestamp",
	Description:            "User activity and engagement metrics",
	Tags:                   map[string]string{"source": "user_events", "format": "parquet"},
}

// Driver performance data source
var driverPerformanceSource = &entities.FileSource{
	Name:                   "driver_performance_source",
	Path:                   "s3://ai-ml-platform-ml-dev-datasets/feast/driver_performance/",
	TimestampField:         "event_timestamp",
	CreatedTimestampColumn: "created_timestamp",
	Description:            "Driver performance and behavior metrics",
	Tags:                   map[string]string{"source": "driver_events", "format": "parquet"},
}

// Product catalog data source
var productCatalogSource = &entities.FileSource{
	Name:                   "product_catalog_source",
	Path:                   "s3://ai-ml-platform-ml-dev-datasets/feast/product_catalog/",
	TimestampField:         "event_timestamp",
	CreatedTimestampColumn: "created_timestamp",
	Description:            "Product information and metadata",
	Tags:                   map[string]string{"source": "product_catalog", "format": "parquet"},
}

// Transaction data source
var transactionSource = &entities.FileSource{
	Name:                   "transaction_source",
	Path:                   "s3://ai-ml-platform-ml-dev-datasets/feast/transactions/",
	TimestampField:         "event_timestamp",
	CreatedTimestampColumn: "created_timestamp",
	Description:            "Financial transaction data",
	Tags:                   map[string]string{"source": "transactions", "format": "parquet"},
}

// Real-time user activity source, supplied by the caller per request
var userActivityStreamSource = &entities.RequestSource{
	Name: "user_activity_stream_source",
	Schema: []*entities.Feature{
		{Name: "current_session_duration", DType: entities.ValueTypeInt64},
		{Name: "pages_viewed_session", DType: entities.ValueTypeInt64},
		{Name: "current_device_type", DType: entities.ValueTypeString},
	},
	Description: "Real-time user activity for current session",
}

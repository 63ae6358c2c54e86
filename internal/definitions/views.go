package definitions

import (
	"github.com/ai-ml-platform/featstore/internal/entities"
	"github.com/ai-ml-platform/featstore/pkg/duration"
)

// User engagement features
var userEngagementFeatures = &entities.FeatureView{
	Name:     "user_engagement_features",
	Entities: []string{"user_id"},
	TTL:      duration.Days(7),
	Features: []*entities.Feature{
		{Name: "total_sessions_7d", DType: entities.ValueTypeInt64,
			Description: "Total sessions in last 7 days"},
		{Name: "avg_session_duration_7d", DType: entities.ValueTypeFloat,
			Description: "Average session duration in last 7 days (minutes)"},
		{Name: "total_page_views_7d", DType: entities.ValueTypeInt64,
			Description: "Total page views in last 7 days"},
		{Name: "unique_pages_viewed_7d", DType: entities.ValueTypeInt64,
			Description: "Unique pages viewed in last 7 days"},
		{Name: "bounce_rate_7d", DType: entities.ValueTypeFloat,
			Description: "Bounce rate in last 7 days"},
		{Name: "conversion_rate_7d", DType: entities.ValueTypeFloat,
			Description: "Conversion rate in last 7 days"},
		{Name: "last_activity_hours_ago", DType: entities.ValueTypeFloat,
			Description: "Hours since last activity"},
	},
	Online:      true,
	BatchSource: userActivitySource,
	Tags:        map[string]string{"team": "growth", "category": "engagement"},
}

// User demographics features
var userDemographicsFeatures = &entities.FeatureView{
	Name:     "user_demographics_features",
	Entities: []string{"user_id"},
	TTL:      duration.Days(30),
	Features: []*entities.Feature{
		{Name: "age_group", DType: entities.ValueTypeString,
			Description: "User age group (18-25, 26-35, etc.)"},
		{Name: "country", DType: entities.ValueTypeString,
			Description: "User country"},
		{Name: "city", DType: entities.ValueTypeString,
			Description: "User city"},
		{Name: "signup_days_ago", DType: entities.ValueTypeInt64,
			Description: "Days since user signup"},
		{Name: "is_premium_user", DType: entities.ValueTypeBool,
			Description: "Whether user has premium subscription"},
		{Name: "preferred_language", DType: entities.ValueTypeString,
			Description: "User's preferred language"},
	},
	Online:      true,
	BatchSource: userActivitySource,
	Tags:        map[string]string{"team": "customer_success", "category": "demographics"},
}

// Driver performance features
var driverPerformanceFeatures = &entities.FeatureView{
	Name:     "driver_performance_features",
	Entities: []string{"driver_id"},
	TTL:      duration.Days(1),
	Features: []*entities.Feature{
		{Name: "avg_rating_30d", DType: entities.ValueTypeFloat,
			Description: "Average driver rating in last 30 days"},
		{Name: "total_trips_30d", DType: entities.ValueTypeInt64,
			Description: "Total trips completed in last 30 days"},
		{Name: "total_earnings_30d", DType: entities.ValueTypeFloat,
			Description: "Total earnings in last 30 days"},
		{Name: "acceptance_rate_30d", DType: entities.ValueTypeFloat,
			Description: "Trip acceptance rate in last 30 days"},
		{Name: "cancellation_rate_30d", DType: entities.ValueTypeFloat,
			Description: "Trip cancellation rate in last 30 days"},
		{Name: "avg_trip_duration_30d", DType: entities.ValueTypeFloat,
			Description: "Average trip duration in last 30 days (minutes)"},
		{Name: "peak_hours_activity_30d", DType: entities.ValueTypeFloat,
			Description: "Percentage of activity during peak hours"},
	},
	Online:      true,
	BatchSource: driverPerformanceSource,
	Tags:        map[string]string{"team": "driver_ops", "category": "performance"},
}

// Product features
var productFeatures = &entities.FeatureView{
	Name:     "product_features",
	Entities: []string{"product_id"},
	TTL:      duration.Days(1),
	Features: []*entities.Feature{
		{Name: "category", DType: entities.ValueTypeString,
			Description: "Product category"},
		{Name: "price", DType: entities.ValueTypeFloat,
			Description: "Current product price"},
		{Name: "discount_percentage", DType: entities.ValueTypeFloat,
			Description: "Current discount percentage"},
		{Name: "avg_rating", DType: entities.ValueTypeFloat,
			Description: "Average product rating"},
		{Name: "total_reviews", DType: entities.ValueTypeInt64,
			Description: "Total number of reviews"},
		{Name: "inventory_count", DType: entities.ValueTypeInt64,
			Description: "Current inventory count"},
		{Name: "is_trending", DType: entities.ValueTypeBool,
			Description: "Whether product is currently trending"},
		{Name: "days_since_launch", DType: entities.ValueTypeInt64,
			Description: "Days since product launch"},
	},
	Online:      true,
	BatchSource: productCatalogSource,
	Tags:        map[string]string{"team": "product", "category": "catalog"},
}

// Transaction features
var transactionFeatures = &entities.FeatureView{
	Name:     "transaction_features",
	Entities: []string{"user_id"},
	TTL:      duration.Days(7),
	Features: []*entities.Feature{
		{Name: "total_spent_7d", DType: entities.ValueTypeFloat,
			Description: "Total amount spent in last 7 days"},
		{Name: "total_spent_30d", DType: entities.ValueTypeFloat,
			Description: "Total amount spent in last 30 days"},
		{Name: "transaction_count_7d", DType: entities.ValueTypeInt64,
			Description: "Number of transactions in last 7 days"},
		{Name: "transaction_count_30d", DType: entities.ValueTypeInt64,
			Description: "Number of transactions in last 30 days"},
		{Name: "avg_transaction_amount_30d", DType: entities.ValueTypeFloat,
			Description: "Average transaction amount in last 30 days"},
		{Name: "max_transaction_amount_30d", DType: entities.ValueTypeFloat,
			Description: "Maximum transaction amount in last 30 days"},
		{Name: "unique_merchants_30d", DType: entities.ValueTypeInt64,
			Description: "Number of unique merchants in last 30 days"},
		{Name: "failed_transactions_7d", DType: entities.ValueTypeInt64,
			Description: "Number of failed transactions in last 7 days"},
	},
	Online:      true,
	BatchSource: transactionSource,
	Tags:        map[string]string{"team": "payments", "category": "transactions"},
}

// Real-time user session features, backed by the request-time stream source
var userSessionFeatures = &entities.FeatureView{
	Name:     "user_session_features",
	Entities: []string{"user_id"},
	TTL:      duration.Hours(1),
	Features: []*entities.Feature{
		{Name: "current_session_duration", DType: entities.ValueTypeInt64,
			Description: "Current session duration in minutes"},
		{Name: "pages_viewed_session", DType: entities.ValueTypeInt64,
			Description: "Pages viewed in current session"},
		{Name: "current_device_type", DType: entities.ValueTypeString,
			Description: "Device type for current session"},
	},
	Online:      true,
	BatchSource: userActivityStreamSource,
	Tags:        map[string]string{"team": "real_time", "category": "session"},
}

package definitions

import "github.com/ai-ml-platform/featstore/internal/entities"

// Recommendation model feature service
var recommendationFeatureService = &entities.FeatureService{
	Name: "recommendation_v1",
	Features: []*entities.FeatureSelection{
		userEngagementFeatures.Select("total_sessions_7d", "avg_session_duration_7d", "conversion_rate_7d"),
		userDemographicsFeatures.Select("age_group", "country", "is_premium_user"),
		transactionFeatures.Select("total_spent_30d", "avg_transaction_amount_30d"),
		productFeatures.Select("category", "price", "avg_rating", "is_trending"),
	},
	Tags: map[string]string{"model": "recommendation", "version": "v1"},
}

// Fraud detection feature service
var fraudDetectionFeatureService = &entities.FeatureService{
	Name: "fraud_detection_v1",
	Features: []*entities.FeatureSelection{
		transactionFeatures.Select("transaction_count_7d", "avg_transaction_amount_30d", "failed_transactions_7d"),
		userDemographicsFeatures.Select("country", "signup_days_ago"),
		userSessionFeatures.Select("current_device_type"),
	},
	Tags: map[string]string{"model": "fraud_detection", "version": "v1"},
}

// Driver matching feature service
var driverMatchingFeatureService = &entities.FeatureService{
	Name: "driver_matching_v1",
	Features: []*entities.FeatureSelection{
		driverPerformanceFeatures.Select("avg_rating_30d", "acceptance_rate_30d", "total_trips_30d"),
	},
	Tags: map[string]string{"model": "driver_matching", "version": "v1"},
}

// Customer churn prediction feature service
var churnPredictionFeatureService = &entities.FeatureService{
	Name: "churn_prediction_v1",
	Features: []*entities.FeatureSelection{
		userEngagementFeatures.Select("total_sessions_7d", "last_activity_hours_ago", "bounce_rate_7d"),
		userDemographicsFeatures.Select("signup_days_ago", "is_premium_user"),
		transactionFeatures.Select("transaction_count_30d", "total_spent_30d"),
	},
	Tags: map[string]string{"model": "churn_prediction", "version": "v1"},
}

package common

const (
	RedisKeyLastPrice = "last_price:%s"

	JobTypeImpactRefresh = "impact_refresh"
	JobTypePriceRefresh  = "price_refresh"

	DefaultTopImpactLimit  = 5
	DefaultRecentNewsLimit = 15
	DefaultDetailNewsLimit = 20

	DefaultCurrency = "USD"
)

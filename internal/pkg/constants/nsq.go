package constants

// NSQ topics
const (
	TopicIncomingOrder = "incoming_order"
	TopicOrderDispatch = "order_dispatch"
)

// NSQ channels
const (
	ChannelRestaurantFeed = "restaurant-feed"
)

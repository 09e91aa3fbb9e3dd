package constant

// Outbound text frames. Clients match on these verbatim.
const (
	WsErrUserNotFound = "user does not exist"
	WsErrRoomNotFound = "room does not exist or does not belong to this user"
	WsErrStorage      = "⚠️ Error: failed to store conversation"
)

// Reply texts produced by the response generator.
const (
	ReplyErrorPrefix       = "⚠️ Error: "
	ReplyNoModelConfigured = "⚠️ No model configured"
)

const (
	EventExchangeCompleted = "EXCHANGE_COMPLETED"
)

// Log modules
const (
	ModuleChatSession = "ChatSession"
	ModuleResponse    = "ResponseGenerator"
	ModuleSettings    = "Settings"
	ModuleHub         = "Hub"
	ModuleConsumer    = "ExchangeConsumer"
)

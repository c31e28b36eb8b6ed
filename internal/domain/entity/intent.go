package entity

// IntentKind represents the classified purpose of a customer message
type IntentKind string

const (
	IntentListRequest   IntentKind = "list_request"
	IntentPlaceOrder    IntentKind = "place_order"
	IntentFaqQuestion   IntentKind = "faq_question"
	IntentProductSearch IntentKind = "product_search"
	IntentGreeting      IntentKind = "greeting"
	IntentFallback      IntentKind = "fallback"
)

// AllIntents lists every intent the engine can produce, in resolver order.
var AllIntents = []IntentKind{
	IntentGreeting,
	IntentListRequest,
	IntentPlaceOrder,
	IntentFaqQuestion,
	IntentProductSearch,
	IntentFallback,
}

// IsValid returns true if the intent is a member of the closed set
func (k IntentKind) IsValid() bool {
	switch k {
	case IntentListRequest, IntentPlaceOrder, IntentFaqQuestion,
		IntentProductSearch, IntentGreeting, IntentFallback:
		return true
	}
	return false
}

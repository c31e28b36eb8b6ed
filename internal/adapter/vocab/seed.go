package vocab

import "github.com/gcaponi/S4all-BOT/internal/domain/entity"

// Seed returns the built-in starter vocabulary. It backs the engine when
// the configured source is empty, so the service never starts with an
// engine that silently under-scores every message.
func Seed() *entity.ReferenceSets {
	return entity.NewReferenceSets(
		[]string{
			"olive oil", "oil", "wine", "red wine", "white wine",
			"honey", "truffle cream", "pasta", "coffee", "cheese",
		},
		[]string{
			"rome", "milan", "naples", "turin", "florence", "bologna",
			"london", "paris", "berlin", "madrid",
		},
		map[string][]string{
			"shipping": {"shipping", "delivery", "courier", "parcel", "tracking", "arrive"},
			"payment":  {"pay", "payment", "bank transfer", "crypto", "bitcoin", "paypal"},
			"returns":  {"return", "refund", "exchange"},
			"ordering": {"order", "ordering", "checkout", "procedure"},
			"pricing":  {"cost", "price", "expensive", "cheap"},
		},
		[]string{
			"bank transfer", "card", "credit card", "cash", "paypal",
			"crypto", "bitcoin", "usdt",
		},
	)
}

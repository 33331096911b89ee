package domain

import "context"

// MenuSource supplies the raw category -> item-name lists the catalog is
// built from. Implementations can scrape a live menu page or serve a
// built-in snapshot. A fetch failure is reported as an error; callers
// degrade to an empty catalog rather than treating it as fatal.
type MenuSource interface {
	Fetch(ctx context.Context) ([]RawCategory, error)
}

// IntentParser converts raw customer input into structured intents.
// Implementations can be keyword-based, regex, or LLM-powered.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers assistant replies to the customer. Implementations
// can write to stdout or anything else that talks back.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// OrderArchive keeps completed orders. The engine appends on checkout;
// nothing is ever removed or mutated after the append.
type OrderArchive interface {
	Append(ctx context.Context, order *Order) error
	List(ctx context.Context) ([]*Order, error)
	Len(ctx context.Context) (int, error)
}

package domain

// IntentType classifies what the customer wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentShowMenu
	IntentShowOrder
	IntentShowHistory
	IntentStartOrder
	IntentAddItem
	IntentRemoveItem
	IntentCheckout
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentShowMenu:
		return "show_menu"
	case IntentShowOrder:
		return "show_order"
	case IntentShowHistory:
		return "show_history"
	case IntentStartOrder:
		return "start_order"
	case IntentAddItem:
		return "add_item"
	case IntentRemoveItem:
		return "remove_item"
	case IntentCheckout:
		return "checkout"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed customer action for one conversational turn.
type Intent struct {
	Type IntentType
	// Item is the free-text mention of the desired item, for add/remove.
	Item string
	// Quantity defaults to 1 when the turn names no count.
	Quantity int
	// Size is SizeNone unless the turn named one.
	Size Size
	// Instructions carries special requests like "no pickles".
	Instructions string
}

// intentNames maps snake_case names to IntentType values.
var intentNames = map[string]IntentType{
	"show_menu":    IntentShowMenu,
	"show_order":   IntentShowOrder,
	"show_history": IntentShowHistory,
	"start_order":  IntentStartOrder,
	"add_item":     IntentAddItem,
	"remove_item":  IntentRemoveItem,
	"checkout":     IntentCheckout,
	"help":         IntentHelp,
	"quit":         IntentQuit,
	"unknown":      IntentUnknown,
}

// IntentFromString converts a snake_case intent name to an IntentType.
// Returns IntentUnknown for unrecognized names.
func IntentFromString(name string) IntentType {
	if t, ok := intentNames[name]; ok {
		return t
	}
	return IntentUnknown
}

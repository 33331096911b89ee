package conversation

import (
	"context"

	"github.com/hammamikhairi/drivethru/internal/display"
	"github.com/hammamikhairi/drivethru/internal/domain"
	"github.com/hammamikhairi/drivethru/internal/engine"
	"github.com/hammamikhairi/drivethru/internal/logger"
)

// Handler dispatches parsed intents onto the engine and turns the
// outcome into a renderable Result. It holds no state of its own; all
// session mutation happens inside the engine.
type Handler struct {
	eng *engine.Engine
	log *logger.Logger
}

// NewHandler creates an intent handler over the given engine.
func NewHandler(eng *engine.Engine, log *logger.Logger) *Handler {
	return &Handler{eng: eng, log: log}
}

// Handle executes one conversational turn.
func (h *Handler) Handle(ctx context.Context, intent *domain.Intent) domain.Result {
	h.log.Debug("handling intent %s (item=%q qty=%d size=%s)", intent.Type, intent.Item, intent.Quantity, intent.Size)

	switch intent.Type {
	case domain.IntentShowMenu:
		return domain.Success(display.Menu(h.eng.Catalog()))

	case domain.IntentShowOrder:
		return domain.Success(display.Order(h.eng.CurrentOrder(), h.eng.Catalog()))

	case domain.IntentShowHistory:
		history, err := h.eng.History(ctx)
		if err != nil {
			return domain.Failure(err, "Sorry, I couldn't look up your past orders.")
		}
		return domain.Success(display.History(history))

	case domain.IntentStartOrder:
		order := h.eng.StartOrder()
		return domain.Success("Started " + order.ID + ". What can I get you?")

	case domain.IntentAddItem:
		return h.eng.AddItem(intent.Item, intent.Quantity, intent.Size, intent.Instructions)

	case domain.IntentRemoveItem:
		return h.eng.RemoveItem(intent.Item, intent.Quantity)

	case domain.IntentCheckout:
		return h.eng.Checkout(ctx)

	case domain.IntentHelp:
		return domain.Success(display.Help())

	case domain.IntentQuit:
		return domain.Success("Thanks for stopping by!")

	default:
		return domain.Clarify("Sorry, I didn't catch that. You can ask for the menu, add or remove items, or checkout. Say 'help' for examples.")
	}
}

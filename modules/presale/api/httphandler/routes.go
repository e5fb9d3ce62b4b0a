package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *handler) Mount(router fiber.Router) error {
	r := router.Group("/presale/v1")

	r.Get("/info", h.infoHandler)
	r.Get("/stages", h.stagesHandler)
	r.Get("/stages/current", h.currentStageHandler)
	r.Get("/stages/:index", h.stageHandler)
	r.Get("/tiers", h.tiersHandler)
	r.Get("/accounts/:address", h.accountHandler)
	r.Get("/events", h.eventsHandler)
	r.Get("/quote", h.quoteHandler)

	if h.operator == nil {
		return nil
	}

	r.Post("/purchases/native", h.nativePurchaseHandler)
	r.Post("/purchases/stable", h.stablePurchaseHandler)
	r.Post("/claims", h.claimHandler)

	admin := r.Group("/admin")
	admin.Post("/finalize", h.finalizeHandler)
	admin.Post("/stages/:index/conclude", h.concludeStageHandler)
	admin.Post("/stages/:index/extend", h.extendStageHandler)
	admin.Put("/treasury", h.treasuryHandler)
	admin.Put("/tiers/:index", h.tierHandler)
	admin.Post("/withdrawals/native", h.withdrawNativeHandler)
	admin.Post("/withdrawals/stable", h.withdrawStableHandler)

	return nil
}

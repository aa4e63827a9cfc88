package chatRoutes

import (
	"github.com/gofiber/fiber/v2"

	chatControllers "tcb/controllers/chat"
	faqControllers "tcb/controllers/faq"
	chatValidators "tcb/validators/chat"
)

// SetupChatRoutes wires chat sessions and the FAQ cache, both scoped to a
// textbook.
func SetupChatRoutes(app *fiber.App) {
	app.Get("/textbooks/:id/chat_sessions", chatControllers.ListSessions)
	app.Post("/textbooks/:id/chat_sessions", chatValidators.CreateSession(), chatControllers.CreateSession)
	app.Delete("/chat_sessions/:id", chatValidators.RequireSessionID(), chatControllers.DeleteSession)

	app.Get("/textbooks/:id/faqs", faqControllers.ListFaqs)
	app.Post("/textbooks/:id/faqs/:faq_id/hit", faqControllers.RecordFaqHit)
}

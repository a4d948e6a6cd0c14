package telegram

const (
	MsgWelcome = "Welcome! Choose an option:"

	MsgPickPlan = "Pick a plan:"

	MsgSendProof = "📤 Send your payment screenshot now.\nSelected: %s"

	MsgNoActivePlan = "❌ No active subscription.\nUse Buy Subscription to get access."

	MsgNoPlanSelected = "❌ Please select a plan first using /start"

	MsgProofReceived = "✅ Screenshot received. Admin will review shortly."

	MsgSupportIntro = "📞 Please type your question/issue. I'll forward it to support."

	MsgTicketFiled = "✅ Sent to support. Ticket ID: #%d"

	MsgOffers = "🎁 Current offers:\nGrab the 1 Year plan — best value!\nLifetime access never expires."

	MsgAdminsOnly = "Admins only."

	MsgAlreadyDecided = "⚠️ This payment was already decided."

	MsgPaymentNotFound = "⚠️ Payment not found."

	MsgGenericError = "Error occurred, please try again."

	MsgBroadcastAsk = "✍️ Send the broadcast message (text)."
)

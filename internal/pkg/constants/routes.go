package constants

// Static route constants
const (
	PublicRoute    = "/"
	LoginRoute     = "/login"
	DashboardRoute = "/dashboard"
	ChatbotRoute   = "/chatbot"
)

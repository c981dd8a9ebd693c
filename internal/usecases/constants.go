package usecases

// Caller-visible messages for the fundi workflow
const (
	MsgApplicationSubmitted = "Application submitted successfully."
	MsgFundiAlreadyExists   = "Fundi profile already exists."
	MsgServiceNotFound      = "Selected service does not exist."
	MsgLocationNotFound     = "Selected location does not exist."
	MsgInvalidHourlyRate    = "Hourly rate must be greater than zero."
	MsgApplyFailed          = "Failed to submit fundi application."

	MsgFundiNotFound     = "Fundi profile not found."
	MsgInvalidDecision   = "Invalid verification status."
	MsgAlreadyReviewed   = "Fundi profile has already been reviewed."
	MsgFundiVerified     = "Fundi profile verified successfully."
	MsgFundiRejected     = "Fundi profile rejected successfully."
	MsgDecisionFailed    = "Failed to update fundi verification."
	MsgFetchFailed       = "Failed to fetch fundi applications."
	MsgNoApplication     = "No fundi application found."
	MsgStatusFetchFailed = "Failed to fetch fundi application status."
)

// Auth and catalog messages
const (
	MsgEmailTaken          = "Email already registered"
	MsgInvalidCredentials  = "Invalid email or password"
	MsgInvalidRefreshToken = "Invalid or expired refresh token"
	MsgPasswordTooShort    = "Password must be at least 8 characters"
	MsgServiceExists       = "Service already exists"
	MsgServiceMissing      = "Service not found"
	MsgLocationExists      = "Location already exists"
	MsgLocationMissing     = "Location not found"
	MsgNameRequired        = "Name is required"
)

// Application intake outcomes recorded in metrics
const (
	outcomeSubmitted = "submitted"
	outcomeDuplicate = "duplicate"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
)

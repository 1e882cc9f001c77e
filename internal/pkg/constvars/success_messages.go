package constvars

const (
	ResponseUnknown = "unknown"

	// Assessment
	FindInstrumentSuccessMessage          = "instrument fetched successfully"
	ScoreAssessmentSuccessMessage         = "assessment scored successfully"
	SaveAssessmentResultSuccessMessage    = "result saved successfully"
	FindAssessmentResultsSuccessMessage   = "assessment results fetched successfully"
	DeleteAssessmentResultSuccessMessage  = "assessment result deleted successfully"
	ExportAssessmentResultsSuccessMessage = "assessment results exported successfully"

	// Auth
	SignUpSuccessMessage               = "account created successfully"
	SignInSuccessMessage               = "signed in successfully"
	SignOutSuccessMessage              = "signed out successfully"
	RequestPasswordResetSuccessMessage = "a password reset email has been sent"
	ResetPasswordSuccessMessage        = "password reset successfully"

	// Diary
	CreateDiaryEntrySuccessMessage = "entry saved successfully, keep up your streak!"
	FindDiaryEntriesSuccessMessage = "diary entries fetched successfully"
	DeleteDiaryEntrySuccessMessage = "diary entry deleted successfully"

	// Preference
	FindThemeSuccessMessage   = "theme fetched successfully"
	UpdateThemeSuccessMessage = "theme updated successfully"

	// Testimonial
	FindTestimonialSuccessMessage = "testimonial fetched successfully"
)

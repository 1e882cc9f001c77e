package constvars

const (
	MailSubjectResultSavedFormat = "Your %s assessment result"
	MailBodyResultSavedFormat    = `Hi %s,

Your latest assessment scored %d / %d (%s).

%s

You can review your full history from your Sensus profile.`

	MailSubjectPasswordReset    = "Reset your Sensus password"
	MailBodyPasswordResetFormat = `Hi %s,

We received a request to reset your password. Open the link below to choose a new one:

%s?token=%s

The link expires in %d minutes. If you did not ask for this, you can ignore this email.`
)

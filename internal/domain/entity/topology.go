package entity

// Installation identifies one client installation visible for survey
// generation. Installations have no lifecycle of their own; they exist as
// long as at least one recipient association reports them.
type Installation struct {
	ClientKey       string `json:"client_key"`       // The client role the installation belongs to.
	InstallationKey string `json:"installation_key"` // The installation role within the client.
}

// Recipient is a person associated with an installation who may receive
// surveys and push notifications.
type Recipient struct {
	Email                    string `json:"email"`                      // Login identity; the recipient's address key.
	PushToken                string `json:"push_token"`                 // FCM device token; empty when not push-addressable.
	Active                   bool   `json:"active"`                     // Inactive recipients are excluded from generation.
	RequiresIndividualSurvey bool   `json:"requires_individual_survey"` // Per-installation flag requiring a personal survey copy.
}

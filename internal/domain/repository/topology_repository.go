package repository

import (
	"context"
	"errors"

	"pulse/internal/domain/entity"
)

// ErrRecipientNotFound is returned when no recipient matches a lookup.
var ErrRecipientNotFound = errors.New("recipient not found")

// TopologyRepository resolves the installation/recipient topology visible for
// survey generation.
type TopologyRepository interface {
	// ListInstallations retrieves the distinct (client, installation) pairs
	// with at least one visible recipient association.
	ListInstallations(ctx context.Context) ([]*entity.Installation, error)

	// ListIndividualRecipients retrieves the active recipients of an
	// installation flagged as requiring an individual survey.
	ListIndividualRecipients(ctx context.Context, clientKey, installationKey string) ([]*entity.Recipient, error)

	// ListPushRecipients retrieves the active recipients of an installation
	// holding a non-empty push token.
	ListPushRecipients(ctx context.Context, clientKey, installationKey string) ([]*entity.Recipient, error)

	// FindRecipientEmailByToken resolves a recipient address from a push token.
	// Returns ErrRecipientNotFound when no recipient holds the token.
	FindRecipientEmailByToken(ctx context.Context, pushToken string) (string, error)
}

package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// topologyRepository implements the repository.TopologyRepository interface
// over the recipients and installation_recipients tables.
type topologyRepository struct {
	db *gorm.DB
}

// NewTopologyRepository is the constructor for topologyRepository.
func NewTopologyRepository(db *gorm.DB) repository.TopologyRepository {
	return &topologyRepository{
		db: db,
	}
}

// ListInstallations retrieves the distinct (client, installation) pairs with
// at least one visible recipient association.
func (repo *topologyRepository) ListInstallations(ctx context.Context) ([]*entity.Installation, error) {
	var rows []struct {
		ClientKey       string
		InstallationKey string
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.InstallationRecipientModel{}).
		Distinct("client_key", "installation_key").
		Where("visible = ?", true).
		Order("client_key, installation_key").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list installations")
	}

	installations := make([]*entity.Installation, 0, len(rows))
	for _, row := range rows {
		installations = append(installations, &entity.Installation{
			ClientKey:       row.ClientKey,
			InstallationKey: row.InstallationKey,
		})
	}

	return installations, nil
}

// ListIndividualRecipients retrieves the active recipients of an installation
// flagged as requiring an individual survey.
func (repo *topologyRepository) ListIndividualRecipients(ctx context.Context, clientKey, installationKey string) ([]*entity.Recipient, error) {
	return repo.listRecipients(ctx, clientKey, installationKey, func(query *gorm.DB) *gorm.DB {
		return query.Where("installation_recipients.requires_individual_survey = ?", true)
	})
}

// ListPushRecipients retrieves the active recipients of an installation
// holding a non-empty push token.
func (repo *topologyRepository) ListPushRecipients(ctx context.Context, clientKey, installationKey string) ([]*entity.Recipient, error) {
	return repo.listRecipients(ctx, clientKey, installationKey, func(query *gorm.DB) *gorm.DB {
		return query.Where("recipients.push_token IS NOT NULL AND recipients.push_token <> ''")
	})
}

// listRecipients joins recipients with their installation association and
// applies the base eligibility filters shared by both listings.
func (repo *topologyRepository) listRecipients(
	ctx context.Context,
	clientKey, installationKey string,
	refine func(*gorm.DB) *gorm.DB,
) ([]*entity.Recipient, error) {
	var rows []struct {
		Email                    string
		PushToken                string
		Active                   bool
		RequiresIndividualSurvey bool
	}

	query := repo.db.WithContext(ctx).
		Model(&model.InstallationRecipientModel{}).
		Select("recipients.email, recipients.push_token, recipients.active, installation_recipients.requires_individual_survey").
		Joins("INNER JOIN recipients ON recipients.email = installation_recipients.email").
		Where("installation_recipients.client_key = ?", clientKey).
		Where("installation_recipients.installation_key = ?", installationKey).
		Where("installation_recipients.visible = ?", true).
		Where("recipients.active = ?", true)

	if err := refine(query).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipients")
	}

	recipients := make([]*entity.Recipient, 0, len(rows))
	for _, row := range rows {
		recipients = append(recipients, &entity.Recipient{
			Email:                    row.Email,
			PushToken:                row.PushToken,
			Active:                   row.Active,
			RequiresIndividualSurvey: row.RequiresIndividualSurvey,
		})
	}

	return recipients, nil
}

// FindRecipientEmailByToken resolves a recipient address from a push token.
func (repo *topologyRepository) FindRecipientEmailByToken(ctx context.Context, pushToken string) (string, error) {
	var recipientM model.RecipientModel

	if err := repo.db.WithContext(ctx).
		Where("push_token = ?", pushToken).
		First(&recipientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrRecipientNotFound
		}

		return "", errors.Wrap(err, "failed to find recipient by push token")
	}

	return recipientM.Email, nil
}

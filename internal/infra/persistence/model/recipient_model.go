package model

// RecipientModel is the GORM-specific struct for the 'recipients' table.
// Recipients are identified by their login email.
type RecipientModel struct {
	Email     string `gorm:"type:text;primary_key"`
	PushToken string `gorm:"type:text"`
	Active    bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (RecipientModel) TableName() string {
	return "recipients"
}

// InstallationRecipientModel is the GORM-specific struct for the
// 'installation_recipients' table. It associates a recipient with one
// installation of one client and carries the per-association survey flags.
type InstallationRecipientModel struct {
	Email                    string `gorm:"type:text;primary_key"`
	ClientKey                string `gorm:"type:text;primary_key"`
	InstallationKey          string `gorm:"type:text;primary_key"`
	Visible                  bool   `gorm:"not null;default:true"`
	RequiresIndividualSurvey bool   `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (InstallationRecipientModel) TableName() string {
	return "installation_recipients"
}

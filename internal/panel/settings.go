package panel

import (
	"context"
	"strings"

	"github.com/poscatcafe/pos-terminal/internal/api"
	"github.com/poscatcafe/pos-terminal/internal/models"
)

// SettingsPanel edits the single shop settings record.
type SettingsPanel struct {
	settings api.SettingsAPI
}

func NewSettingsPanel(settings api.SettingsAPI) *SettingsPanel {
	return &SettingsPanel{settings: settings}
}

func (p *SettingsPanel) Load(ctx context.Context) (*models.Settings, error) {
	return p.settings.GetSettings(ctx)
}

func (p *SettingsPanel) Save(ctx context.Context, form models.Settings) (*models.Settings, error) {

	form.ShopName = strings.TrimSpace(form.ShopName)
	form.Address = strings.TrimSpace(form.Address)
	form.Phone = strings.TrimSpace(form.Phone)
	form.TaxID = strings.TrimSpace(form.TaxID)
	form.PromptpayID = strings.TrimSpace(form.PromptpayID)

	return p.settings.UpdateSettings(ctx, form)
}

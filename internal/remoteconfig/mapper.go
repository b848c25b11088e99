package remoteconfig

import (
	"context"
	"strconv"
)

const (
	// TypeBoolean and TypeString are the only parameter types this
	// template uses.
	TypeBoolean = "BOOLEAN"
	TypeString  = "STRING"

	defaultVersionCode    = "1"
	defaultWhatsappNumber = "+254702716440"
)

// AppConfig is the flat, typed view of the app's feature-flag template.
type AppConfig struct {
	ChristmasEnabled  bool   `json:"christmas_enabled"`
	AdminHidden       bool   `json:"admin_hidden"`
	MaintenanceMode   bool   `json:"maintenance_mode"`
	BannerText        string `json:"banner_text"`
	AppLogoURL        string `json:"app_logo_url"`
	LatestVersionCode string `json:"latest_version_code"`
	UpdateURL         string `json:"update_url"`
	ForceUpdate       bool   `json:"force_update"`
	TawkLink          string `json:"tawk_link"`
	UseTawk           bool   `json:"use_tawk"`
	WhatsappNumber    string `json:"whatsapp_number"`
}

// TemplateAPI is the fetch/validate/publish cycle the mapper drives.
// *Client satisfies it.
type TemplateAPI interface {
	GetTemplate(ctx context.Context) (*Template, error)
	ValidateTemplate(ctx context.Context, tpl *Template) error
	PublishTemplate(ctx context.Context, tpl *Template) error
}

// Mapper reads and writes the eleven known parameters through the
// template API. Writes are fetch-modify-publish with no isolation: two
// concurrent writers race on the fetch and the second publish wins.
type Mapper struct {
	api TemplateAPI
}

func NewMapper(api TemplateAPI) *Mapper {
	return &Mapper{api: api}
}

// GetConfig fetches the live template and coerces the known parameters.
// Booleans are true iff the stored string equals "true"; missing strings
// fall back to their documented defaults.
func (m *Mapper) GetConfig(ctx context.Context) (*AppConfig, error) {
	tpl, err := m.api.GetTemplate(ctx)
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		ChristmasEnabled:  boolParam(tpl, "christmas_enabled"),
		AdminHidden:       boolParam(tpl, "admin_hidden"),
		MaintenanceMode:   boolParam(tpl, "maintenance_mode"),
		BannerText:        stringParam(tpl, "banner_text", ""),
		AppLogoURL:        stringParam(tpl, "app_logo_url", ""),
		LatestVersionCode: stringParam(tpl, "latest_version_code", defaultVersionCode),
		UpdateURL:         stringParam(tpl, "update_url", ""),
		ForceUpdate:       boolParam(tpl, "force_update"),
		TawkLink:          stringParam(tpl, "tawk_link", ""),
		UseTawk:           boolParam(tpl, "use_tawk"),
		WhatsappNumber:    stringParam(tpl, "whatsapp_number", defaultWhatsappNumber),
	}, nil
}

// SetConfig writes the eleven known parameters in place, preserving any
// unrelated template content, then validates and publishes. When the live
// template cannot be fetched the write starts from an empty one.
func (m *Mapper) SetConfig(ctx context.Context, cfg *AppConfig) error {
	tpl, err := m.api.GetTemplate(ctx)
	if err != nil {
		tpl = NewTemplate()
	}

	tpl.SetParameter("christmas_enabled", strconv.FormatBool(cfg.ChristmasEnabled), TypeBoolean)
	tpl.SetParameter("admin_hidden", strconv.FormatBool(cfg.AdminHidden), TypeBoolean)
	tpl.SetParameter("maintenance_mode", strconv.FormatBool(cfg.MaintenanceMode), TypeBoolean)
	tpl.SetParameter("banner_text", cfg.BannerText, TypeString)
	tpl.SetParameter("app_logo_url", cfg.AppLogoURL, TypeString)
	tpl.SetParameter("latest_version_code", valueOr(cfg.LatestVersionCode, defaultVersionCode), TypeString)
	tpl.SetParameter("update_url", cfg.UpdateURL, TypeString)
	tpl.SetParameter("force_update", strconv.FormatBool(cfg.ForceUpdate), TypeBoolean)
	tpl.SetParameter("tawk_link", cfg.TawkLink, TypeString)
	tpl.SetParameter("use_tawk", strconv.FormatBool(cfg.UseTawk), TypeBoolean)
	tpl.SetParameter("whatsapp_number", valueOr(cfg.WhatsappNumber, defaultWhatsappNumber), TypeString)

	if err := m.api.ValidateTemplate(ctx, tpl); err != nil {
		return err
	}

	return m.api.PublishTemplate(ctx, tpl)
}

func boolParam(tpl *Template, key string) bool {
	v, ok := tpl.ParameterValue(key)
	return ok && v == "true"
}

func stringParam(tpl *Template, key, fallback string) string {
	v, ok := tpl.ParameterValue(key)
	if !ok || v == "" {
		return fallback
	}
	return v
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

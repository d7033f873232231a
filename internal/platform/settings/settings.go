package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Setting names used by the publisher.
const (
	SettingShopSettings     = "settings"
	SettingOrderReferrer    = "order_referrer"
	SettingEtsyShops        = "etsy_shops"
	SettingDefaultCurrency  = "default_currency"
	SettingLegalInformation = "legal_information"
)

// Defaults applied when a setting is absent.
const (
	defaultLanguage = "de"
	defaultCurrency = "EUR"
)

//go:generate mockery --name Store --filename store.go

// Store reads raw setting values.
type Store interface {
	Setting(ctx context.Context, name string) (string, error)
}

// Snapshot is an immutable view of the marketplace settings taken once
// at the start of a publication and threaded through every step.
type Snapshot struct {
	MainLanguage     string
	ExportLanguages  []string
	ReferrerID       int64
	EtsyCurrency     string
	DefaultCurrency  string
	LegalInformation map[string]string
}

// Legal returns the legal boilerplate text for provided language.
func (s Snapshot) Legal(language string) string {
	return s.LegalInformation[language]
}

// Loader builds settings snapshots from a Store.
type Loader struct {
	store Store
}

// NewLoader returns new Loader reading from provided store.
func NewLoader(store Store) Loader {
	return Loader{
		store: store,
	}
}

// Load reads all settings the publication needs and returns them as one snapshot.
func (l Loader) Load(ctx context.Context) (Snapshot, error) {
	snapshot := Snapshot{
		MainLanguage:     defaultLanguage,
		EtsyCurrency:     defaultCurrency,
		DefaultCurrency:  defaultCurrency,
		LegalInformation: map[string]string{},
	}

	if err := l.loadShopSettings(ctx, &snapshot); err != nil {
		return Snapshot{}, err
	}

	if err := l.loadReferrer(ctx, &snapshot); err != nil {
		return Snapshot{}, err
	}

	if err := l.loadCurrencies(ctx, &snapshot); err != nil {
		return Snapshot{}, err
	}

	if err := l.loadLegalInformation(ctx, &snapshot); err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

func (l Loader) loadShopSettings(ctx context.Context, snapshot *Snapshot) error {
	raw, err := l.store.Setting(ctx, SettingShopSettings)
	if err != nil {
		return fmt.Errorf("can't load shop settings: %w", err)
	}

	shopSettings := struct {
		Shop struct {
			MainLanguage    string   `json:"mainLanguage"`
			ExportLanguages []string `json:"exportLanguages"`
		} `json:"shop"`
	}{}

	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &shopSettings); err != nil {
			return fmt.Errorf("can't decode shop settings: %w", err)
		}
	}

	if shopSettings.Shop.MainLanguage != "" {
		snapshot.MainLanguage = shopSettings.Shop.MainLanguage
	}

	snapshot.ExportLanguages = shopSettings.Shop.ExportLanguages
	if len(snapshot.ExportLanguages) == 0 {
		snapshot.ExportLanguages = []string{snapshot.MainLanguage}
	}

	return nil
}

func (l Loader) loadReferrer(ctx context.Context, snapshot *Snapshot) error {
	raw, err := l.store.Setting(ctx, SettingOrderReferrer)
	if err != nil {
		return fmt.Errorf("can't load order referrer: %w", err)
	}

	if raw == "" {
		return nil
	}

	referrerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("can't decode order referrer: %w", err)
	}
	snapshot.ReferrerID = referrerID

	return nil
}

func (l Loader) loadCurrencies(ctx context.Context, snapshot *Snapshot) error {
	raw, err := l.store.Setting(ctx, SettingEtsyShops)
	if err != nil {
		return fmt.Errorf("can't load etsy shops: %w", err)
	}

	if raw != "" {
		shops := []struct {
			ShopID       int64  `json:"shop_id"`
			CurrencyCode string `json:"currency_code"`
		}{}
		if err := json.Unmarshal([]byte(raw), &shops); err != nil {
			return fmt.Errorf("can't decode etsy shops: %w", err)
		}
		if len(shops) > 0 && shops[0].CurrencyCode != "" {
			snapshot.EtsyCurrency = shops[0].CurrencyCode
		}
	}

	raw, err = l.store.Setting(ctx, SettingDefaultCurrency)
	if err != nil {
		return fmt.Errorf("can't load default currency: %w", err)
	}
	if raw != "" {
		snapshot.DefaultCurrency = raw
	}

	return nil
}

func (l Loader) loadLegalInformation(ctx context.Context, snapshot *Snapshot) error {
	raw, err := l.store.Setting(ctx, SettingLegalInformation)
	if err != nil {
		return fmt.Errorf("can't load legal information: %w", err)
	}

	if raw == "" {
		return nil
	}

	if err := json.Unmarshal([]byte(raw), &snapshot.LegalInformation); err != nil {
		return fmt.Errorf("can't decode legal information: %w", err)
	}

	return nil
}

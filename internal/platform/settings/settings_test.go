package settings_test

import (
	"context"
	"testing"

	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/settings"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/settings/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitLoad(t *testing.T) {
	store := mocks.NewStore(t)
	mockSetting(store, settings.SettingShopSettings,
		`{"shop":{"mainLanguage":"en","exportLanguages":["en","fr","it"]}}`)
	mockSetting(store, settings.SettingOrderReferrer, "107")
	mockSetting(store, settings.SettingEtsyShops,
		`[{"shop_id":42,"currency_code":"USD"},{"shop_id":43,"currency_code":"GBP"}]`)
	mockSetting(store, settings.SettingDefaultCurrency, "EUR")
	mockSetting(store, settings.SettingLegalInformation, `{"en":"Imprint","fr":"Mentions"}`)

	snapshot, err := settings.NewLoader(store).Load(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, settings.Snapshot{
		MainLanguage:     "en",
		ExportLanguages:  []string{"en", "fr", "it"},
		ReferrerID:       107,
		EtsyCurrency:     "USD",
		DefaultCurrency:  "EUR",
		LegalInformation: map[string]string{"en": "Imprint", "fr": "Mentions"},
	}, snapshot, "should load all settings into snapshot")
	assert.Equal(t, "Mentions", snapshot.Legal("fr"), "should return legal text per language")
	assert.Empty(t, snapshot.Legal("it"), "missing legal text should be empty")
}

func TestUnitLoadDefaults(t *testing.T) {
	// every setting is absent
	store := mocks.NewStore(t)
	store.On("Setting", mock.Anything, mock.AnythingOfType("string")).Return("", nil)

	snapshot, err := settings.NewLoader(store).Load(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, "de", snapshot.MainLanguage, "should fall back to default language")
	assert.Equal(t, []string{"de"}, snapshot.ExportLanguages, "should export only the main language")
	assert.Zero(t, snapshot.ReferrerID, "referrer should stay unset")
	assert.Equal(t, "EUR", snapshot.EtsyCurrency, "should fall back to default currency")
	assert.Equal(t, "EUR", snapshot.DefaultCurrency, "should fall back to default currency")
	assert.Empty(t, snapshot.LegalInformation, "legal information should stay empty")
}

func TestUnitLoadErrors(t *testing.T) {
	tests := map[string]struct {
		failing    string
		invalid    map[string]string
		wantErrMsg string
	}{
		"store error": {
			failing:    settings.SettingShopSettings,
			wantErrMsg: "can't load shop settings",
		},
		"invalid shop settings": {
			invalid:    map[string]string{settings.SettingShopSettings: "not-json"},
			wantErrMsg: "can't decode shop settings",
		},
		"invalid referrer": {
			invalid:    map[string]string{settings.SettingOrderReferrer: "not-a-number"},
			wantErrMsg: "can't decode order referrer",
		},
		"invalid etsy shops": {
			invalid:    map[string]string{settings.SettingEtsyShops: "{"},
			wantErrMsg: "can't decode etsy shops",
		},
		"invalid legal information": {
			invalid:    map[string]string{settings.SettingLegalInformation: "["},
			wantErrMsg: "can't decode legal information",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := mocks.NewStore(t)
			if tt.failing != "" {
				mockSettingError(store, tt.failing)
			}
			for setting, value := range tt.invalid {
				mockSetting(store, setting, value)
			}
			store.On("Setting", mock.Anything, mock.AnythingOfType("string")).Return("", nil).Maybe()

			_, err := settings.NewLoader(store).Load(context.TODO())

			require.ErrorContains(t, err, tt.wantErrMsg, "should return correct error")
		})
	}
}

func mockSetting(store *mocks.Store, name, value string) {
	store.On("Setting", mock.Anything, name).Return(value, nil)
}

func mockSettingError(store *mocks.Store, name string) {
	store.On("Setting", mock.Anything, name).Return("", assert.AnError)
}

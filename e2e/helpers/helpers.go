package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/etsy"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/settings"
	pgmodels "github.com/MichalMitros/etsy-listing-publisher/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/storage/storagetesting"
	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
)

// WaitForRunToBeFinished is blocking helper function, returns latest run of the item after it is finished.
func WaitForRunToBeFinished(t *testing.T, queryable qrm.Queryable, itemID int64) *pgmodels.PublishRun {
	t.Helper()

	for {
		<-time.After(time.Millisecond * 250)
		runs := storagetesting.GetRuns(t, queryable, itemID)
		if len(runs) == 0 {
			continue
		}
		latestRun := runs[len(runs)-1]
		if latestRun.FinishedAt != nil {
			return &latestRun
		}
	}
}

// SeedSettings is helper function inserting the marketplace settings every publication loads.
func SeedSettings(t *testing.T, exc qrm.Executable) {
	t.Helper()

	storagetesting.InsertSettings(t, exc,
		pgmodels.Setting{
			Name:  settings.SettingShopSettings,
			Value: `{"shop":{"mainLanguage":"de","exportLanguages":["de","en"]}}`,
		},
		pgmodels.Setting{Name: settings.SettingOrderReferrer, Value: "107"},
		pgmodels.Setting{Name: settings.SettingEtsyShops, Value: `[{"shop_id":1,"currency_code":"USD"}]`},
		pgmodels.Setting{Name: settings.SettingDefaultCurrency, Value: "EUR"},
		pgmodels.Setting{
			Name:  settings.SettingLegalInformation,
			Value: `{"de":"<p>Impressum</p>","en":"<p>Imprint</p>"}`,
		},
	)
}

// PrepareMockedRatesServer is helper function for mocking the exchange rates endpoint.
func PrepareMockedRatesServer(t *testing.T, rates map[string]float64) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, "application/json")
		_ = json.NewEncoder(wrt).Encode(struct {
			Rates map[string]float64 `json:"rates"`
		}{Rates: rates})
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv
}

// RemoteListing is the state of one listing recorded by the mocked Etsy server.
type RemoteListing struct {
	ListingID    int64
	Language     string
	State        string
	Payload      etsy.CreateListingPayload
	Inventory    *etsy.InventoryUpdate
	ImageURLs    []string
	Translations map[string]etsy.TranslationPayload
	Deleted      bool
}

// EtsyRecorder records all listings created on the mocked Etsy server
// and controls its failure injection.
type EtsyRecorder struct {
	mu            sync.Mutex
	nextListingID int64
	nextImageID   int64
	listings      map[int64]*RemoteListing
	activationErr string
}

// Listing returns a copy of the recorded listing state.
func (r *EtsyRecorder) Listing(t *testing.T, listingID int64) RemoteListing {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[listingID]
	if !ok {
		require.FailNow(t, "listing was never created", listingID)
	}

	return *listing
}

// FailActivation makes all following update listing calls fail with provided api error message.
func (r *EtsyRecorder) FailActivation(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activationErr = message
}

// PrepareMockedEtsyServer is helper function for mocking the Etsy listings API.
// The returned recorder holds all remote listing state the server accumulated.
func PrepareMockedEtsyServer(t *testing.T) (*httptest.Server, *EtsyRecorder) {
	t.Helper()

	recorder := &EtsyRecorder{
		nextListingID: 9000,
		nextImageID:   5000,
		listings:      map[int64]*RemoteListing{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /listings", recorder.createListing)
	mux.HandleFunc("PUT /listings/{id}/inventory", recorder.updateInventory)
	mux.HandleFunc("POST /listings/{id}/images", recorder.uploadImage)
	mux.HandleFunc("PUT /listings/{id}/translations/{language}", recorder.createTranslation)
	mux.HandleFunc("PUT /listings/{id}", recorder.updateListing)
	mux.HandleFunc("DELETE /listings/{id}", recorder.deleteListing)

	srv := httptest.NewServer(mux)

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, recorder
}

func (r *EtsyRecorder) createListing(wrt http.ResponseWriter, req *http.Request) {
	var payload etsy.CreateListingPayload
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		writeError(wrt, "can't decode create listing payload")
		return
	}

	r.mu.Lock()
	listingID := r.nextListingID
	r.nextListingID++
	r.listings[listingID] = &RemoteListing{
		ListingID:    listingID,
		Language:     req.URL.Query().Get("language"),
		State:        payload.State,
		Payload:      payload,
		Translations: map[string]etsy.TranslationPayload{},
	}
	r.mu.Unlock()

	writeResults(wrt, []struct {
		ListingID int64 `json:"listing_id"`
	}{{ListingID: listingID}})
}

func (r *EtsyRecorder) updateInventory(wrt http.ResponseWriter, req *http.Request) {
	var update etsy.InventoryUpdate
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		writeError(wrt, "can't decode inventory update")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[pathListingID(req)]
	if !ok {
		writeError(wrt, "listing not found")
		return
	}
	listing.Inventory = &update

	writeResults(wrt, []struct{}{})
}

func (r *EtsyRecorder) uploadImage(wrt http.ResponseWriter, req *http.Request) {
	payload := struct {
		Image string `json:"image"`
		Rank  int    `json:"rank"`
	}{}
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		writeError(wrt, "can't decode image payload")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	listingID := pathListingID(req)
	listing, ok := r.listings[listingID]
	if !ok {
		writeError(wrt, "listing not found")
		return
	}
	listing.ImageURLs = append(listing.ImageURLs, payload.Image)

	imageID := r.nextImageID
	r.nextImageID++

	writeResults(wrt, []etsy.ListingImage{{ListingImageID: imageID, ListingID: listingID}})
}

func (r *EtsyRecorder) createTranslation(wrt http.ResponseWriter, req *http.Request) {
	var payload etsy.TranslationPayload
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		writeError(wrt, "can't decode translation payload")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[pathListingID(req)]
	if !ok {
		writeError(wrt, "listing not found")
		return
	}
	listing.Translations[req.PathValue("language")] = payload

	writeResults(wrt, []struct{}{})
}

func (r *EtsyRecorder) updateListing(wrt http.ResponseWriter, req *http.Request) {
	var payload etsy.UpdateListingPayload
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		writeError(wrt, "can't decode update listing payload")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.activationErr != "" {
		writeError(wrt, r.activationErr)
		return
	}

	listing, ok := r.listings[pathListingID(req)]
	if !ok {
		writeError(wrt, "listing not found")
		return
	}
	listing.State = payload.State

	writeResults(wrt, []struct{}{})
}

func (r *EtsyRecorder) deleteListing(wrt http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[pathListingID(req)]
	if !ok {
		writeError(wrt, "listing not found")
		return
	}
	listing.Deleted = true

	writeResults(wrt, []struct{}{})
}

func pathListingID(req *http.Request) int64 {
	listingID, _ := strconv.ParseInt(req.PathValue("id"), 10, 64)
	return listingID
}

func writeResults(wrt http.ResponseWriter, results any) {
	encoded, _ := json.Marshal(results)

	wrt.Header().Add(contentType, "application/json")
	_ = json.NewEncoder(wrt).Encode(struct {
		Count   int             `json:"count"`
		Results json.RawMessage `json:"results"`
	}{Count: 1, Results: encoded})
}

func writeError(wrt http.ResponseWriter, message string) {
	wrt.Header().Add(contentType, "application/json")
	wrt.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(wrt).Encode(struct {
		ErrorMsg string `json:"error_msg"`
	}{ErrorMsg: message})
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

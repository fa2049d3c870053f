// Package storesettings maps the stringly-typed settings rows onto a typed
// record. Parsing of the "true"/"false" flag encoding happens here, at the
// boundary, instead of per route.
package storesettings

import (
	"errors"
	"strconv"
	"sync"

	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/db/controller/setting"
)

// Setting keys used by the storefront.
const (
	KeyStripeEnabled      = "stripeEnabled"
	KeyStripePublicKey    = "stripePublicKey"
	KeyStripeSecretKey    = "stripeSecretKey"
	KeyPaypalEnabled      = "paypalEnabled"
	KeyPaypalClientID     = "paypalClientId"
	KeyPaypalClientSecret = "paypalClientSecret"
	KeyPaypalMode         = "paypalMode"
	KeyCurrency           = "currency"
)

// Settings is the typed view of the storefront settings rows. Missing rows
// read as zero values.
type Settings struct {
	StripeEnabled      bool
	StripePublicKey    string
	StripeSecretKey    string
	PaypalEnabled      bool
	PaypalClientID     string
	PaypalClientSecret string
	PaypalMode         string
	Currency           string
}

// Load reads the storefront settings from the database. The keys are
// fetched as independent, unordered parallel reads: a concurrent settings
// update can yield a mixed view. Callers accept that tolerance; none of the
// provider config responses require a snapshot.
func Load(db *gorm.DB) (*Settings, error) {
	if db == nil {
		return nil, setting.ErrDBNil
	}

	var (
		out      Settings
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	fetch := func(key string, assign func(string)) {
		wg.Add(1)

		go func() {
			defer wg.Done()

			value, err := fetchValue(db, key)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()

				return
			}

			assign(value)
		}()
	}

	fetch(KeyStripeEnabled, func(v string) { out.StripeEnabled = parseFlag(v) })
	fetch(KeyStripePublicKey, func(v string) { out.StripePublicKey = v })
	fetch(KeyStripeSecretKey, func(v string) { out.StripeSecretKey = v })
	fetch(KeyPaypalEnabled, func(v string) { out.PaypalEnabled = parseFlag(v) })
	fetch(KeyPaypalClientID, func(v string) { out.PaypalClientID = v })
	fetch(KeyPaypalClientSecret, func(v string) { out.PaypalClientSecret = v })
	fetch(KeyPaypalMode, func(v string) { out.PaypalMode = v })
	fetch(KeyCurrency, func(v string) { out.Currency = v })

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return &out, nil
}

// Save writes the settings back as string rows (upserting each key).
func (s *Settings) Save(db *gorm.DB) error {
	if db == nil {
		return setting.ErrDBNil
	}

	values := map[string]string{
		KeyStripeEnabled:      strconv.FormatBool(s.StripeEnabled),
		KeyStripePublicKey:    s.StripePublicKey,
		KeyStripeSecretKey:    s.StripeSecretKey,
		KeyPaypalEnabled:      strconv.FormatBool(s.PaypalEnabled),
		KeyPaypalClientID:     s.PaypalClientID,
		KeyPaypalClientSecret: s.PaypalClientSecret,
		KeyPaypalMode:         s.PaypalMode,
		KeyCurrency:           s.Currency,
	}

	for key, value := range values {
		if _, err := setting.Set(db, key, value); err != nil {
			return err
		}
	}

	return nil
}

// fetchValue reads one key, treating a missing row as an empty value.
func fetchValue(db *gorm.DB, key string) (string, error) {
	row, err := setting.Get(db, key)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return "", nil
		}

		return "", err
	}

	return row.Value, nil
}

// parseFlag interprets the storefront's flag encoding: only the literal
// string "true" enables a flag.
func parseFlag(value string) bool {
	return value == "true"
}

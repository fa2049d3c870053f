// Package variant validates and stores per-product color variants.
//
// Variants are persisted as a JSON list in the settings table under a
// per-product key. Stored JSON is never trusted: it passes through Sanitize
// on both the read and the write path.
package variant

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/db/controller/setting"
)

const (
	// DefaultSwatch is the color assigned when a variant's swatch is not a
	// valid hex color.
	DefaultSwatch = "#272c40"

	settingKeyPrefix = "productColorVariants:"
)

// swatchPattern matches 3- or 6-digit hex colors.
var swatchPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ColorVariant is a named, swatch-colored image group attached to a product.
type ColorVariant struct {
	Name   string   `json:"name"`
	Swatch string   `json:"swatch"`
	Images []string `json:"images"`
}

// SettingKey returns the settings-table key holding a product's variants.
func SettingKey(productID uint64) string {
	return settingKeyPrefix + strconv.FormatUint(productID, 10)
}

// Sanitize normalizes an arbitrary parsed JSON value into a variant list.
// Entries without a non-empty trimmed name or without at least one
// non-empty trimmed image string are dropped whole; there is no
// partial-entry repair. Invalid swatches normalize to DefaultSwatch.
func Sanitize(raw any) []ColorVariant {
	list, ok := raw.([]any)
	if !ok {
		return []ColorVariant{}
	}

	out := make([]ColorVariant, 0, len(list))

	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		name := trimmedString(entry["name"])
		if name == "" {
			continue
		}

		images := imageList(entry["images"])
		if len(images) == 0 {
			continue
		}

		swatch := trimmedString(entry["swatch"])
		if !swatchPattern.MatchString(swatch) {
			swatch = DefaultSwatch
		}

		out = append(out, ColorVariant{
			Name:   name,
			Swatch: swatch,
			Images: images,
		})
	}

	return out
}

// SanitizeJSON parses raw JSON and sanitizes the result.
func SanitizeJSON(data []byte) ([]ColorVariant, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return Sanitize(raw), nil
}

// LoadForProduct reads a product's variants from the settings table.
// A missing setting reads as an empty list.
func LoadForProduct(db *gorm.DB, productID uint64) ([]ColorVariant, error) {
	row, err := setting.Get(db, SettingKey(productID))
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return []ColorVariant{}, nil
		}

		return nil, err
	}

	return SanitizeJSON([]byte(row.Value))
}

// SaveForProduct sanitizes raw variant data and upserts it under the
// product's setting key.
func SaveForProduct(db *gorm.DB, productID uint64, raw any) error {
	variants := Sanitize(raw)

	data, err := json.Marshal(variants)
	if err != nil {
		return err
	}

	_, err = setting.Set(db, SettingKey(productID), string(data))

	return err
}

// trimmedString returns the trimmed value when v holds a string.
func trimmedString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}

	return strings.TrimSpace(s)
}

// imageList keeps the non-empty trimmed strings of an images value.
func imageList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(list))

	for _, item := range list {
		if s := trimmedString(item); s != "" {
			out = append(out, s)
		}
	}

	return out
}

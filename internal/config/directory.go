package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed stores.yaml
var embeddedStores []byte

// ACHVendor is the external bank destination of an ACH-paid store.
type ACHVendor struct {
	Store   string `yaml:"store"`
	Vendor  string `yaml:"vendor"`
	Account string `yaml:"account"`
	Routing string `yaml:"routing"`
}

// UberStore maps an UberEats store identifier to its Toast location, its
// journal location and its checking account label.
type UberStore struct {
	ID       string `yaml:"id"`
	Toast    string `yaml:"toast"`
	Location string `yaml:"location"`
	Checking string `yaml:"checking"`
}

type pxStore struct {
	Name     string `yaml:"name"`
	Entity   string `yaml:"entity"`
	Checking string `yaml:"checking"`
}

type specialStore struct {
	Store  string `yaml:"store"`
	Vendor string `yaml:"vendor"`
}

type document struct {
	Leadership struct {
		Entity   string `yaml:"entity"`
		Checking string `yaml:"checking"`
		Savings  string `yaml:"savings"`
	} `yaml:"leadership"`
	Paytronix struct {
		Stores      []pxStore         `yaml:"stores"`
		Accounts    map[string]string `yaml:"accounts"`
		Special     []specialStore    `yaml:"special"`
		ACHExternal []ACHVendor       `yaml:"ach_external"`
	} `yaml:"paytronix"`
	Uber struct {
		Stores           []UberStore `yaml:"stores"`
		SpecialLocations []string    `yaml:"special_locations"`
	} `yaml:"uber"`
}

// Directory holds the static store lookup tables. It is read-only once
// loaded; accessors never hand out the underlying maps.
type Directory struct {
	leadershipEntity   string
	leadershipChecking string
	leadershipSavings  string

	entities       map[string]string
	checking       map[string]string
	accountNumbers map[string]string

	special        []string
	specialVendors map[string]string
	achExternal    []ACHVendor

	uberStores       map[string]UberStore
	uberByLocation   map[string]UberStore
	specialLocations map[string]bool
}

// Default returns the directory built from the embedded tables.
func Default() *Directory {
	d, err := Parse(embeddedStores)
	if err != nil {
		panic(fmt.Sprintf("embedded store tables are invalid: %v", err))
	}
	return d
}

// Load reads the tables from path, or the embedded tables when path is empty.
func Load(path string) (*Directory, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store tables %s: %w", path, err)
	}
	d, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse store tables %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes YAML store tables.
func Parse(raw []byte) (*Directory, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if doc.Leadership.Entity == "" || doc.Leadership.Checking == "" || doc.Leadership.Savings == "" {
		return nil, fmt.Errorf("leadership entity, checking and savings are required")
	}

	d := &Directory{
		leadershipEntity:   doc.Leadership.Entity,
		leadershipChecking: doc.Leadership.Checking,
		leadershipSavings:  doc.Leadership.Savings,
		entities:           make(map[string]string),
		checking:           make(map[string]string),
		accountNumbers:     make(map[string]string),
		specialVendors:     make(map[string]string),
		uberStores:         make(map[string]UberStore),
		uberByLocation:     make(map[string]UberStore),
		specialLocations:   make(map[string]bool),
	}
	for _, s := range doc.Paytronix.Stores {
		d.entities[s.Name] = s.Entity
		d.checking[s.Name] = s.Checking
	}
	for label, number := range doc.Paytronix.Accounts {
		d.accountNumbers[label] = number
	}
	for _, s := range doc.Paytronix.Special {
		d.special = append(d.special, s.Store)
		d.specialVendors[s.Store] = s.Vendor
	}
	d.achExternal = append(d.achExternal, doc.Paytronix.ACHExternal...)
	for _, s := range doc.Uber.Stores {
		if s.ID == "" {
			return nil, fmt.Errorf("uber store without id")
		}
		d.uberStores[s.ID] = s
		d.uberByLocation[s.Location] = s
	}
	for _, loc := range doc.Uber.SpecialLocations {
		d.specialLocations[loc] = true
	}
	return d, nil
}

// LeadershipEntity is the legal entity that receives all gift-card funds.
func (d *Directory) LeadershipEntity() string {
	return d.leadershipEntity
}

// LeadershipChecking is the Leadership checking account label.
func (d *Directory) LeadershipChecking() string {
	return d.leadershipChecking
}

// LeadershipSavings is the Leadership savings account label.
func (d *Directory) LeadershipSavings() string {
	return d.leadershipSavings
}

// StoreEntity returns the legal entity used as detail location for a
// Paytronix store.
func (d *Directory) StoreEntity(store string) (string, bool) {
	e, ok := d.entities[store]
	return e, ok
}

// StoreChecking returns the checking account label of a Paytronix store.
func (d *Directory) StoreChecking(store string) (string, bool) {
	c, ok := d.checking[store]
	return c, ok
}

// AccountNumber resolves a checking label to its bank account number, which
// may be the ##N/A## sentinel.
func (d *Directory) AccountNumber(label string) (string, bool) {
	n, ok := d.accountNumbers[label]
	return n, ok
}

// IsSpecial reports whether store is billed by AP invoice.
func (d *Directory) IsSpecial(store string) bool {
	_, ok := d.specialVendors[store]
	return ok
}

// SpecialStores returns the AP-invoice stores in table order.
func (d *Directory) SpecialStores() []string {
	return append([]string(nil), d.special...)
}

// SpecialVendor returns the AP vendor billed for a special store.
func (d *Directory) SpecialVendor(store string) (string, bool) {
	v, ok := d.specialVendors[store]
	return v, ok
}

// ACHExternals returns the ACH-paid stores in table order.
func (d *Directory) ACHExternals() []ACHVendor {
	return append([]ACHVendor(nil), d.achExternal...)
}

// IsACHExternal reports whether store is funded by external ACH.
func (d *Directory) IsACHExternal(store string) bool {
	for _, v := range d.achExternal {
		if v.Store == store {
			return true
		}
	}
	return false
}

// UberStore looks up an UberEats store identifier. Surrounding whitespace and
// case are ignored.
func (d *Directory) UberStore(id string) (UberStore, bool) {
	if s, ok := d.uberStores[id]; ok {
		return s, true
	}
	for key, s := range d.uberStores {
		if strings.EqualFold(strings.TrimSpace(key), strings.TrimSpace(id)) {
			return s, true
		}
	}
	return UberStore{}, false
}

// UberCheckingForLocation returns the checking label of the UberEats store
// booked under the given journal location.
func (d *Directory) UberCheckingForLocation(location string) (string, bool) {
	s, ok := d.uberByLocation[location]
	if !ok {
		return "", false
	}
	return s.Checking, true
}

// IsSpecialLocation reports whether a Toast location books the full tax
// breakdown instead of the tax-on-promotion plug.
func (d *Directory) IsSpecialLocation(toast string) bool {
	return d.specialLocations[toast]
}

package entities

import "adaptive-mapper/internal/metadata"

// Account is a node of the chart of accounts.
type Account struct {
	metadata.Node

	Code            string
	Name            string
	AccountTypeCode string
	Description     string
	ShortName       string
}

// Equal compares scalar fields, identifier and overlays.
func (a *Account) Equal(other metadata.Entity) bool {
	o, ok := other.(*Account)
	if !ok || a == nil || o == nil {
		return ok && a == o
	}

	return a.Code == o.Code &&
		a.Name == o.Name &&
		a.AccountTypeCode == o.AccountTypeCode &&
		a.Description == o.Description &&
		a.ShortName == o.ShortName &&
		a.SameMeta(&o.Node)
}

// Accounts is the field mapping for Account.
var Accounts = &Codec[*Account]{
	Name:      "account",
	Item:      "account",
	Container: "accounts",
	Export:    "exportAccounts",
	Update:    "updateAccounts",
	New:       func() *Account { return &Account{} },
	Fields: []Field[*Account]{
		{"code", func(a *Account) string { return a.Code }, func(a *Account, v string) { a.Code = v }},
		{"name", func(a *Account) string { return a.Name }, func(a *Account, v string) { a.Name = v }},
		{"accountTypeCode", func(a *Account) string { return a.AccountTypeCode }, func(a *Account, v string) { a.AccountTypeCode = v }},
		{"description", func(a *Account) string { return a.Description }, func(a *Account, v string) { a.Description = v }},
		{"shortName", func(a *Account) string { return a.ShortName }, func(a *Account, v string) { a.ShortName = v }},
	},
}

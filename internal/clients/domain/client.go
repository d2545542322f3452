package domain

import (
	"strings"
	"time"
)

type Client struct {
	ID        int64
	Name      string
	CPF       string
	Income    float64
	BirthDate time.Time // always UTC
	Children  int
}

// ClientPatch describes a partial update. Nil fields are left untouched and
// the ID is never part of a patch.
type ClientPatch struct {
	Name      *string
	CPF       *string
	Income    *float64
	BirthDate *time.Time
	Children  *int
}

// IsEmpty reports whether the patch would change nothing.
func (p ClientPatch) IsEmpty() bool {
	return p.Name == nil && p.CPF == nil && p.Income == nil && p.BirthDate == nil && p.Children == nil
}

// Apply returns a copy of c with every non-nil field of the patch applied.
func (p ClientPatch) Apply(c Client) Client {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.CPF != nil {
		c.CPF = *p.CPF
	}
	if p.Income != nil {
		c.Income = *p.Income
	}
	if p.BirthDate != nil {
		c.BirthDate = p.BirthDate.UTC()
	}
	if p.Children != nil {
		c.Children = *p.Children
	}
	return c
}

// ClientFilter narrows a client search. The zero value matches everything;
// set criteria are combined with AND.
type ClientFilter struct {
	IncomeEquals      *float64
	IncomeGreaterThan *float64
	CPFContains       string // literal substring, no wildcards
}

// Matches reports whether c satisfies every criterion of the filter.
func (f ClientFilter) Matches(c Client) bool {
	if f.IncomeEquals != nil && c.Income != *f.IncomeEquals {
		return false
	}
	if f.IncomeGreaterThan != nil && !(c.Income > *f.IncomeGreaterThan) {
		return false
	}
	if f.CPFContains != "" && !strings.Contains(c.CPF, f.CPFContains) {
		return false
	}
	return true
}

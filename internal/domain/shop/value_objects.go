package shop

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidDomain   = errors.New("invalid shop domain")
	ErrInvalidPassword = errors.New("password must be at least 8 characters")
)

var domainRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*(\.[a-z0-9][a-z0-9-]*)+$`)

// Domain is the tenant key: the shop's normalized hostname. Every admin
// operation and storefront query is scoped by it.
type Domain string

func NewDomain(raw string) (Domain, error) {
	d := strings.ToLower(strings.TrimSpace(raw))
	if !domainRegex.MatchString(d) {
		return "", ErrInvalidDomain
	}
	return Domain(d), nil
}

func (d Domain) String() string {
	return string(d)
}

type Password string

func NewPassword(raw string) (Password, error) {
	if len(raw) < 8 {
		return "", ErrInvalidPassword
	}
	return Password(raw), nil
}

func (p Password) Value() string {
	return string(p)
}

// Credentials carries a login attempt for the admin surface.
type Credentials struct {
	domain   Domain
	password Password
}

func NewCredentials(rawDomain, rawPassword string) (Credentials, error) {
	d, err := NewDomain(rawDomain)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(rawPassword)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{domain: d, password: p}, nil
}

func (c Credentials) Domain() Domain     { return c.domain }
func (c Credentials) Password() Password { return c.password }

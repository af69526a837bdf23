package models

import (
	"fmt"
	"strconv"
	"strings"
)

// CoverageAmount is a sum insured in rupees.
type CoverageAmount int

const (
	Coverage3Lakh  CoverageAmount = 300000
	Coverage5Lakh  CoverageAmount = 500000
	Coverage10Lakh CoverageAmount = 1000000
	Coverage15Lakh CoverageAmount = 1500000
	Coverage25Lakh CoverageAmount = 2500000
	Coverage50Lakh CoverageAmount = 5000000
	Coverage1Crore CoverageAmount = 10000000
)

// CoverageAmounts lists the supported sums insured in ascending order.
var CoverageAmounts = []CoverageAmount{
	Coverage3Lakh,
	Coverage5Lakh,
	Coverage10Lakh,
	Coverage15Lakh,
	Coverage25Lakh,
	Coverage50Lakh,
	Coverage1Crore,
}

// Valid returns true if the amount is one of the supported sums insured.
func (c CoverageAmount) Valid() bool {
	for _, amount := range CoverageAmounts {
		if c == amount {
			return true
		}
	}
	return false
}

// String returns the amount in lakh/crore notation, e.g. "₹5 Lakh".
func (c CoverageAmount) String() string {
	switch {
	case c >= 10000000 && c%10000000 == 0:
		return fmt.Sprintf("₹%d Crore", c/10000000)
	case c >= 100000 && c%100000 == 0:
		return fmt.Sprintf("₹%d Lakh", c/100000)
	default:
		return fmt.Sprintf("₹%d", int(c))
	}
}

// ParseCoverageAmount parses a sum insured given as plain rupees ("500000").
func ParseCoverageAmount(s string) (CoverageAmount, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid coverage amount %q: %w", s, err)
	}
	c := CoverageAmount(n)
	if !c.Valid() {
		return 0, fmt.Errorf("unsupported coverage amount: %d", n)
	}
	return c, nil
}

// Zone is the city zone used for the metro surcharge.
type Zone string

const (
	Zone1 Zone = "Zone1" // metro
	Zone2 Zone = "Zone2"
)

// DefaultZone is used when a Zone value is empty.
const DefaultZone = Zone1

// Valid returns true if the zone is a known value.
func (z Zone) Valid() bool {
	return z == Zone1 || z == Zone2
}

// OrDefault returns DefaultZone for an empty zone and z otherwise. Unknown
// zones are kept so callers can reject or price them explicitly.
func (z Zone) OrDefault() Zone {
	if z == "" {
		return DefaultZone
	}
	return z
}

func (z Zone) String() string {
	switch z {
	case Zone1:
		return "Zone 1 (Metro)"
	case Zone2:
		return "Zone 2"
	default:
		return "Unknown"
	}
}

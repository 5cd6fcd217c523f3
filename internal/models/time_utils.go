package models

import (
	"strconv"
	"time"
)

// DateStampLayout is the layout of dated file-set names
const DateStampLayout = "20060102"

// DateStamp formats t as a UTC YYYYMMDD stamp
func DateStamp(t time.Time) string {
	return t.UTC().Format(DateStampLayout)
}

// ParseDateStamp returns the integer value of an 8-digit stamp
func ParseDateStamp(stamp string) (int, bool) {
	if len(stamp) != len(DateStampLayout) {
		return 0, false
	}
	for _, r := range stamp {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	value, err := strconv.Atoi(stamp)
	if err != nil {
		return 0, false
	}
	return value, true
}

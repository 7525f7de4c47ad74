package services

import (
	"strings"
	"time"

	"github.com/agro-riego/api/utils"
)

// nonBlank trims a mandatory text field. Presence is checked at binding;
// this rejects values made only of whitespace.
func nonBlank(field, v string) (string, error) {
	text := strings.TrimSpace(v)
	if text == "" {
		return "", blank(field)
	}
	return text, nil
}

// utcTime normalises a coerced timestamp to UTC so stored values compare consistently
func utcTime(v utils.FlexTime) time.Time {
	return v.Time().UTC()
}

func now() time.Time {
	return time.Now().UTC()
}

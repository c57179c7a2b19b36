package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTags(t *testing.T) {
	tags := map[string][]string{
		"Lazer":       {"t3"},
		"Alimentação": {"t1", "t2"},
	}

	assert.Equal(t, "Alimentação: t1, t2; Lazer: t3", FormatTags(tags, nil))

	upper := func(id string) string { return strings.ToUpper(id) }
	assert.Equal(t, "Alimentação: T1, T2; Lazer: T3", FormatTags(tags, upper))

	assert.Equal(t, "-", FormatTags(nil, nil))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "2023-10-17", DisplayDate("2023-10-17T00:00:00.000Z"))
	assert.Equal(t, "garbage", DisplayDate("garbage"))
}

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		posix string
		want  Locale
	}{
		{"", English},
		{"C", English},
		{"en_US.UTF-8", English},
		{"zh_CN.UTF-8", Chinese},
		{"fr_FR.UTF-8", English},
	}
	for _, tc := range tests {
		t.Run(tc.posix, func(t *testing.T) {
			assert.Equal(t, tc.want, Detect(tc.posix))
		})
	}
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "URL Reader", English.T("app.title"))
	assert.Equal(t, "网页阅读器", Chinese.T("app.title"))
	assert.Equal(t, "Parse failed: boom", English.T("parse.error", "boom"))
	assert.Equal(t, "missing.key", Chinese.T("missing.key"))
	assert.Equal(t, "URL Reader", Locale("fr").T("app.title"))
}

func TestTablesHaveTheSameKeys(t *testing.T) {
	for key := range tables[English] {
		_, ok := tables[Chinese][key]
		assert.True(t, ok, "missing zh translation for %s", key)
	}
	assert.Len(t, tables[Chinese], len(tables[English]))
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Chinese, English.Toggle())
	assert.Equal(t, English, Chinese.Toggle())
	assert.False(t, Locale("fr").Valid())
}

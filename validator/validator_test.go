/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acronis/go-callkit/validator"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) bool
		valid   []string
		invalid []string
	}{
		{
			name:    "NotEmpty",
			fn:      validator.NotEmpty,
			valid:   []string{"a", " "},
			invalid: []string{""},
		},
		{
			name:    "Number",
			fn:      validator.Number,
			valid:   []string{"1", " 12.5 ", "-3", "1e3"},
			invalid: []string{"", "   ", "abc", "1.2.3", "NaN"},
		},
		{
			name:    "Phone",
			fn:      validator.Phone,
			valid:   []string{"13337217033", "18912345678", "17000000000"},
			invalid: []string{"", "12337217033", "1|337217033", "1333721703", "133372170331"},
		},
		{
			name:    "QQ",
			fn:      validator.QQ,
			valid:   []string{"10000", "3464769311", "12345678901"},
			invalid: []string{"", "01234", "1234", "123456789012"},
		},
		{
			name:    "Wechat",
			fn:      validator.Wechat,
			valid:   []string{"caibaojian_com", "a12345", "a-b_c-d_e-f_g-h_i-j_"},
			invalid: []string{"", "1abcdef", "abcde", "a12345678901234567890"},
		},
		{
			name:    "Tel",
			fn:      validator.Tel,
			valid:   []string{"12345678", "010-12345678", "(0755)1234567"},
			invalid: []string{"", "123456", "010-123", "(01)12345678"},
		},
		{
			name:    "Username",
			fn:      validator.Username,
			valid:   []string{"baidu", "user_01", "a-b-"},
			invalid: []string{"", "abc", "with space", "abcdefghijklmnopq"},
		},
		{
			name:    "URL",
			fn:      validator.URL,
			valid:   []string{"http://www.baidu.com", "https://example.com/path?q=1#top", "ftp://files.example.org"},
			invalid: []string{"", "www.baidu.com", "http://localhost", "mailto:someone@example.com"},
		},
		{
			name:    "IP",
			fn:      validator.IP,
			valid:   []string{"192.168.0.197", "0.0.0.0", "255.255.255.255", "010.1.1.1"},
			invalid: []string{"", "256.1.1.1", "1.1.1", "1.1.1.1.1", "a.b.c.d", "99999999999999999999.1.1.1"},
		},
		{
			name:    "Email",
			fn:      validator.Email,
			valid:   []string{"3565789876@qq.com", "first-last@mail.example.org"},
			invalid: []string{"", "@qq.com", "user@", "user.name@example.com"},
		},
		{
			name:    "Date",
			fn:      validator.Date,
			valid:   []string{"2019-09-09", "2019-9-9", "2000-02-29", "2024-2-29", "1800-01-01"},
			invalid: []string{"", "1900-02-29", "2019-02-29", "2019-13-01", "2019-04-31", "1799-12-31", "2019/09/09"},
		},
		{
			name:    "PositiveNumber",
			fn:      validator.PositiveNumber,
			valid:   []string{"0", "12", "0.5", ".5"},
			invalid: []string{"", "-1", "1.", "+1"},
		},
		{
			name:    "NegativeNumber",
			fn:      validator.NegativeNumber,
			valid:   []string{"-1", "-0.5", "-.5"},
			invalid: []string{"", "1", "--1"},
		},
		{
			name:    "Numeric",
			fn:      validator.Numeric,
			valid:   []string{"1", "-1", "3.14", "-.5"},
			invalid: []string{"", "1.", "1e3", "abc"},
		},
		{
			name:    "Money",
			fn:      validator.Money,
			valid:   []string{"6.88", "100", " 12.5 ", "0.01", ".5"},
			invalid: []string{"", "6.888", "-1", "abc", "0.001"},
		},
		{
			name:    "Chinese",
			fn:      validator.Chinese,
			valid:   []string{"", "王", "中文"},
			invalid: []string{"a", "王a", "中 文"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.valid {
				assert.True(t, tt.fn(s), "%q must be valid", s)
			}
			for _, s := range tt.invalid {
				assert.False(t, tt.fn(s), "%q must be invalid", s)
			}
		})
	}
}

func TestIDCard(t *testing.T) {
	for _, s := range []string{"11010519491231002X", "11010519491231002x", "440308199901011234", "320106200002290043"} {
		assert.True(t, validator.IDCard(s), "%q must be valid", s)
	}
	for _, s := range []string{
		"",
		"1101051949123100",   // too short
		"110105194912310021", // wrong check digit
		"990105194912310021", // unknown region
		"320106200102290043", // non-existing birth date
		"11010519491231002Y",
	} {
		assert.False(t, validator.IDCard(s), "%q must be invalid", s)
	}
}

func TestIDCardRegion(t *testing.T) {
	region, ok := validator.IDCardRegion("11010519491231002X")
	require.True(t, ok)
	require.Equal(t, "北京", region)

	_, ok = validator.IDCardRegion("9")
	require.False(t, ok)
}

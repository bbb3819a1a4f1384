/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package validator contains string predicates for common user input: phone numbers, e-mails,
// mainland China resident ID numbers, URLs, IPv4 addresses, dates, money amounts and so on.
// Every predicate returns false for the empty string unless stated otherwise.
package validator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	phoneRegexp    = regexp.MustCompile(`^1[34578][0-9]{9}$`)
	qqRegexp       = regexp.MustCompile(`^[1-9][0-9]{4,10}$`)
	wechatRegexp   = regexp.MustCompile(`^[a-zA-Z][-_a-zA-Z0-9]{5,19}$`)
	telRegexp      = regexp.MustCompile(`^(\(\d{3,4}\)|\d{3,4}-)?\d{7,8}$`)
	idCardRegexp   = regexp.MustCompile(`^\d{17}[\dxX]$`)
	usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_-]{4,16}$`)
	urlRegexp      = regexp.MustCompile(`(http|ftp|https)://[\w\-_]+(\.[\w\-_]+)+([\w\-.,@?^=%&:/~+#]*[\w\-@?^=%&/~+#])?`)
	ipRegexp       = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)\.(\d+)$`)
	emailRegexp    = regexp.MustCompile(`^([a-zA-Z0-9_-])+@([a-zA-Z0-9_-])+(.[a-zA-Z0-9_-])+`)
	posNumRegexp   = regexp.MustCompile(`^\d*\.?\d+$`)
	negNumRegexp   = regexp.MustCompile(`^-\d*\.?\d+$`)
	numericRegexp  = regexp.MustCompile(`^-?\d*\.?\d+$`)
	moneyRegexp    = regexp.MustCompile(`^[0-9]*\.?[0-9]{0,2}$`)
	chineseRegexp  = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}]*$`)
	dateRegexp     = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

// NotEmpty reports whether s is not empty.
func NotEmpty(s string) bool {
	return s != ""
}

// Number reports whether s, with surrounding spaces trimmed, is a number.
func Number(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(f)
}

// Phone reports whether s is a mainland China mobile phone number (11 digits, 13x/14x/15x/17x/18x).
func Phone(s string) bool {
	return phoneRegexp.MatchString(s)
}

// QQ reports whether s is a QQ number: 5 to 11 digits not starting with zero.
func QQ(s string) bool {
	return qqRegexp.MatchString(s)
}

// Wechat reports whether s is a WeChat account name: 6 to 20 letters, digits, '-' or '_', starting with a letter.
func Wechat(s string) bool {
	return wechatRegexp.MatchString(s)
}

// Tel reports whether s is a landline number with an optional area code, e.g. "010-12345678" or "(0755)1234567".
func Tel(s string) bool {
	return telRegexp.MatchString(s)
}

// Username reports whether s consists of 4 to 16 letters, digits, '_' or '-'.
func Username(s string) bool {
	return usernameRegexp.MatchString(s)
}

// URL reports whether s contains an http, https or ftp URL.
func URL(s string) bool {
	return urlRegexp.MatchString(s)
}

// IP reports whether s is an IPv4 address in dotted decimal notation.
func IP(s string) bool {
	m := ipRegexp.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	for _, part := range m[1:] {
		n, err := strconv.Atoi(part)
		if err != nil || n > 255 {
			return false
		}
	}
	return true
}

// Email reports whether s starts with an e-mail address.
func Email(s string) bool {
	return emailRegexp.MatchString(s)
}

// Date reports whether s is an existing calendar date in the YYYY-MM-DD format (leading zeros optional)
// with a year not before 1800.
func Date(s string) bool {
	m := dateRegexp.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return year >= 1800 && validDate(year, month, day)
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// PositiveNumber reports whether s is a non-negative decimal number without a sign, e.g. "12", "0.5" or ".5".
func PositiveNumber(s string) bool {
	return posNumRegexp.MatchString(s)
}

// NegativeNumber reports whether s is a decimal number with a leading minus.
func NegativeNumber(s string) bool {
	return negNumRegexp.MatchString(s)
}

// Numeric reports whether s is a decimal number with an optional leading minus.
func Numeric(s string) bool {
	return numericRegexp.MatchString(s)
}

// Money reports whether s is a non-negative amount with at most two fractional digits.
// Surrounding spaces are ignored.
func Money(s string) bool {
	s = strings.TrimSpace(s)
	if !Number(s) {
		return false
	}
	if len(s) > 3 && s[0] == '0' && len(s[3:]) > 2 {
		return false
	}
	return moneyRegexp.MatchString(s)
}

// Chinese reports whether s consists of CJK unified ideographs only. The empty string is accepted.
func Chinese(s string) bool {
	return chineseRegexp.MatchString(s)
}

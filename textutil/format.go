/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package textutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// DefaultTimePattern is used by FormatTime when the pattern is empty.
const DefaultTimePattern = "{y}-{m}-{d} {h}:{i}:{s}"

var (
	timePlaceholderRegexp = regexp.MustCompile(`\{(?:y|m|d|h|i|s|a)*([ymdhisa])\}`)
	weekdayNames          = [...]string{"日", "一", "二", "三", "四", "五", "六"}
)

// FormatTime formats t by the pattern with placeholders:
// {y} year, {m} month, {d} day, {h} hour, {i} minute, {s} second (zero-padded to two digits)
// and {a} weekday name ("一" for Monday ... "日" for Sunday).
// A placeholder with repeated letters, e.g. {yy}, works like the one with its last letter.
func FormatTime(t time.Time, pattern string) string {
	if pattern == "" {
		pattern = DefaultTimePattern
	}
	return timePlaceholderRegexp.ReplaceAllStringFunc(pattern, func(placeholder string) string {
		key := placeholder[len(placeholder)-2]
		var value int
		switch key {
		case 'y':
			value = t.Year()
		case 'm':
			value = int(t.Month())
		case 'd':
			value = t.Day()
		case 'h':
			value = t.Hour()
		case 'i':
			value = t.Minute()
		case 's':
			value = t.Second()
		case 'a':
			return weekdayNames[t.Weekday()]
		}
		if value < 10 {
			return "0" + strconv.Itoa(value)
		}
		return strconv.Itoa(value)
	})
}

// FromTimestamp converts a Unix timestamp to time. A 10-digit value is treated as seconds,
// any other value as milliseconds.
func FromTimestamp(ts int64) time.Time {
	if len(strconv.FormatInt(ts, 10)) == 10 {
		return time.Unix(ts, 0)
	}
	return time.UnixMilli(ts)
}

// FormatRelative describes how long ago t was relative to now:
// "刚刚" (just now) under 30 seconds, "N分钟前" under an hour, "N小时前" under a day, "1天前" under two days.
// Older times are formatted by the pattern or, if it is empty, as "M月D日H时I分".
func FormatRelative(t, now time.Time, pattern string) string {
	diff := now.Sub(t).Seconds()
	switch {
	case diff < 30:
		return "刚刚"
	case diff < 3600:
		return fmt.Sprintf("%d分钟前", int(math.Ceil(diff/60)))
	case diff < 3600*24:
		return fmt.Sprintf("%d小时前", int(math.Ceil(diff/3600)))
	case diff < 3600*24*2:
		return "1天前"
	}
	if pattern != "" {
		return FormatTime(t, pattern)
	}
	return fmt.Sprintf("%d月%d日%d时%d分", int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package validator

import (
	"strconv"
	"strings"
)

// idCardRegions maps the first two digits of a resident ID number to a province-level region.
var idCardRegions = map[int]string{
	11: "北京", 12: "天津", 13: "河北", 14: "山西", 15: "内蒙古",
	21: "辽宁", 22: "吉林", 23: "黑龙江",
	31: "上海", 32: "江苏", 33: "浙江", 34: "安徽", 35: "福建", 36: "江西", 37: "山东",
	41: "河南", 42: "湖北", 43: "湖南", 44: "广东", 45: "广西", 46: "海南",
	50: "重庆", 51: "四川", 52: "贵州", 53: "云南", 54: "西藏",
	61: "陕西", 62: "甘肃", 63: "青海", 64: "宁夏", 65: "新疆",
	71: "台湾", 81: "香港", 82: "澳门", 91: "国外",
}

// IDCard reports whether s is a valid 18-digit mainland China resident ID number:
// known region code, existing birth date and a correct ISO 7064 MOD 11-2 check character.
func IDCard(s string) bool {
	if !idCardRegexp.MatchString(s) {
		return false
	}
	region, _ := strconv.Atoi(s[:2])
	if _, ok := idCardRegions[region]; !ok {
		return false
	}
	year, _ := strconv.Atoi(s[6:10])
	month, _ := strconv.Atoi(s[10:12])
	day, _ := strconv.Atoi(s[12:14])
	if !validDate(year, month, day) {
		return false
	}

	sum := 0
	weight := 1 // 2^i mod 11, starting from the check character
	for i := 17; i >= 0; i-- {
		c := s[i]
		digit := 10
		if !strings.EqualFold(string(c), "x") {
			digit = int(c - '0')
		}
		sum += weight * digit
		weight = weight * 2 % 11
	}
	return sum%11 == 1
}

// IDCardRegion returns the region encoded in a resident ID number.
func IDCardRegion(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	code, err := strconv.Atoi(s[:2])
	if err != nil {
		return "", false
	}
	region, ok := idCardRegions[code]
	return region, ok
}

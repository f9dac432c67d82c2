package catalog

import (
	"math"
	"strconv"
	"strings"
)

// ParseDuration normalizes a heterogeneous duration value to whole
// seconds. Accepted shapes:
//
//	number        floored to an integer (must be finite)
//	"125"         plain seconds
//	"3:53"        minutes:seconds
//	"1:02:03"     hours:minutes:seconds
//
// Anything else reports ok=false and the value must be treated as
// unknown, never as zero.
func ParseDuration(v any) (seconds int, ok bool) {
	switch d := v.(type) {
	case nil:
		return 0, false
	case int:
		return d, true
	case int32:
		return int(d), true
	case int64:
		return int(d), true
	case float32:
		return floorFinite(float64(d))
	case float64:
		return floorFinite(d)
	case string:
		return parseDurationString(d)
	default:
		return 0, false
	}
}

func floorFinite(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Floor(f)), true
}

func parseDurationString(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(s); err == nil && !strings.ContainsAny(s, "+-") {
		return n, true
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, false
		}
		nums[i] = n
	}
	if len(nums) == 2 {
		return nums[0]*60 + nums[1], true
	}
	return nums[0]*3600 + nums[1]*60 + nums[2], true
}

package procpool

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// One coercion table applied uniformly to every option value, regardless of
// which field it was supplied for:
//
//	truthy: nil, false, numeric zero, NaN, "" and nil-valued references
//	        coerce to false; everything else coerces to true (including
//	        empty but non-nil maps and slices).
//	number: Go numeric kinds convert directly; bool converts to 1/0;
//	        time.Duration converts to milliseconds; strings parse with
//	        strconv.ParseFloat after trimming; nil and every other type
//	        yield the NaN sentinel.

func truthy(v any) bool {
	switch vv := v.(type) {
	case nil:
		return false
	case bool:
		return vv
	case string:
		return vv != ""
	case int:
		return vv != 0
	case int8:
		return vv != 0
	case int16:
		return vv != 0
	case int32:
		return vv != 0
	case int64:
		return vv != 0
	case uint:
		return vv != 0
	case uint8:
		return vv != 0
	case uint16:
		return vv != 0
	case uint32:
		return vv != 0
	case uint64:
		return vv != 0
	case float32:
		return vv != 0 && !math.IsNaN(float64(vv))
	case float64:
		return vv != 0 && !math.IsNaN(vv)
	case time.Duration:
		return vv != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

func number(v any) float64 {
	switch vv := v.(type) {
	case bool:
		if vv {
			return 1
		}
		return 0
	case int:
		return float64(vv)
	case int8:
		return float64(vv)
	case int16:
		return float64(vv)
	case int32:
		return float64(vv)
	case int64:
		return float64(vv)
	case uint:
		return float64(vv)
	case uint8:
		return float64(vv)
	case uint16:
		return float64(vv)
	case uint32:
		return float64(vv)
	case uint64:
		return float64(vv)
	case float32:
		return float64(vv)
	case float64:
		return vv
	case time.Duration:
		return float64(vv) / float64(time.Millisecond)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(vv), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}
